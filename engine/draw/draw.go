// Package draw defines the deferred drawing commands queued by the
// session and executed by the render loop. Commands are plain data:
// each variant captures its shape parameters and the color that was
// current when it was built, and knows how to apply itself to a Canvas.
package draw

import (
	"fmt"
	"image/color"
)

// Canvas is the surface commands draw against. The production
// implementation rasterizes onto a pixmap; tests substitute a recorder.
type Canvas interface {
	Clear(col color.Color) error
	Circle(x, y, r, stroke float64, col color.Color) error
	Rect(x, y, w, h, stroke, angle float64, pivot Pivot, col color.Color) error
	Line(x1, y1, x2, y2, stroke float64, col color.Color) error
	Polygon(pts []Point, stroke float64, col color.Color) error
	Ellipse(x, y, w, h, stroke float64, col color.Color) error
	Arc(x, y, w, h, start, end, stroke float64, col color.Color) error
	Text(x, y float64, s string, size float64, col color.Color) error
}

// Command is a single deferred drawing action.
type Command interface {
	Draw(c Canvas) error
}

// Batch is the composite command enqueued by a flush: the draw items
// snapshotted from the pending list, plus whether the background must
// be cleared and replayed first.
type Batch struct {
	Refresh bool
	Items   []Command
}

// Point is a polygon vertex.
type Point struct {
	X, Y float64
}

// PivotMode names the point a rectangle is rotated about.
type PivotMode int

const (
	Center PivotMode = iota
	BottomLeft
	BottomRight
	TopRight
	TopLeft
	ExplicitPoint
)

// Pivot selects a rotation point for Rect commands: one of the five
// named corners/center, or an explicit point via At.
type Pivot struct {
	Mode PivotMode
	X, Y float64 // only for ExplicitPoint
}

// At returns a pivot rotating about the absolute point (x, y).
func At(x, y float64) Pivot {
	return Pivot{Mode: ExplicitPoint, X: x, Y: y}
}

// Offset returns the pivot's displacement from the center of an
// unrotated w×h rectangle whose top-left corner is at (x, y).
func (p Pivot) Offset(x, y, w, h float64) (dx, dy float64) {
	switch p.Mode {
	case BottomLeft:
		return -w / 2, h / 2
	case BottomRight:
		return w / 2, h / 2
	case TopRight:
		return w / 2, -h / 2
	case TopLeft:
		return -w / 2, -h / 2
	case ExplicitPoint:
		return p.X - x - w/2, p.Y - y - h/2
	default: // Center
		return 0, 0
	}
}

// Circle draws a circle centered at (X, Y). Stroke 0 fills it.
type Circle struct {
	X, Y, R float64
	Stroke  float64
	Color   color.Color
}

func (c Circle) Draw(dst Canvas) error {
	return dst.Circle(c.X, c.Y, c.R, c.Stroke, c.Color)
}

// Rect draws a rectangle with optional rotation about a pivot.
// (X, Y) is the top-left of the unrotated rectangle; Angle is in
// degrees, counter-clockwise.
type Rect struct {
	X, Y, W, H float64
	Stroke     float64
	Angle      float64
	Pivot      Pivot
	Color      color.Color
}

func (r Rect) Draw(dst Canvas) error {
	return dst.Rect(r.X, r.Y, r.W, r.H, r.Stroke, r.Angle, r.Pivot, r.Color)
}

// Line draws a segment between two endpoints.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         float64
	Color          color.Color
}

func (l Line) Draw(dst Canvas) error {
	return dst.Line(l.X1, l.Y1, l.X2, l.Y2, l.Stroke, l.Color)
}

// Polygon draws a closed polygon through Points. Stroke 0 fills it.
type Polygon struct {
	Points []Point
	Stroke float64
	Color  color.Color
}

func (p Polygon) Draw(dst Canvas) error {
	return dst.Polygon(p.Points, p.Stroke, p.Color)
}

// Ellipse draws an ellipse inscribed in the rectangle at (X, Y).
type Ellipse struct {
	X, Y, W, H float64
	Stroke     float64
	Color      color.Color
}

func (e Ellipse) Draw(dst Canvas) error {
	return dst.Ellipse(e.X, e.Y, e.W, e.H, e.Stroke, e.Color)
}

// Arc draws the part of an inscribed ellipse between Start and End,
// both in degrees on the unit circle.
type Arc struct {
	X, Y, W, H float64
	Start, End float64
	Stroke     float64
	Color      color.Color
}

func (a Arc) Draw(dst Canvas) error {
	return dst.Arc(a.X, a.Y, a.W, a.H, a.Start, a.End, a.Stroke, a.Color)
}

// Text draws a string with its top-left at (X, Y).
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Color   color.Color
}

func (t Text) Draw(dst Canvas) error {
	return dst.Text(t.X, t.Y, t.Content, t.Size, t.Color)
}

// Run executes items in order against c. A failing item is passed to
// report and skipped; the remaining items still run. A panicking item
// is recovered and reported the same way, so a bad shape call can never
// take down the render loop.
func Run(c Canvas, items []Command, report func(Command, error)) {
	for _, item := range items {
		if err := runOne(c, item); err != nil && report != nil {
			report(item, err)
		}
	}
}

func runOne(c Canvas, item Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return item.Draw(c)
}
