package easel

import (
	"math"

	"github.com/easelgo/easel/engine/draw"
)

// Every builder records a deferred command; nothing appears on screen
// until Draw or Redraw flushes the pending shapes. The current color
// is captured when the shape is created, not when it is drawn.
//
// For shapes with an outline/fill choice, stroke 0 fills the shape and
// any positive value is the outline width in pixels.

// Circle records a circle centered at (x, y).
func (s *Session) Circle(x, y, r, stroke float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Circle")
	s.add(draw.Circle{X: x, Y: y, R: r, Stroke: stroke, Color: s.color})
}

// Rect records an axis-aligned rectangle with its top-left corner at
// (x, y).
func (s *Session) Rect(x, y, w, h, stroke float64) {
	s.RectRotated(x, y, w, h, stroke, 0, Center)
}

// RectRotated records a rectangle rotated by angle degrees
// (counter-clockwise) about the given pivot: Center, one of the four
// corner pivots, or an explicit point from PivotAt. (x, y) is the
// top-left corner of the unrotated rectangle.
func (s *Session) RectRotated(x, y, w, h, stroke, angle float64, pivot Pivot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Rect")
	s.add(draw.Rect{X: x, Y: y, W: w, H: h, Stroke: stroke, Angle: angle, Pivot: pivot, Color: s.color})
}

// Line records a segment between (x1, y1) and (x2, y2). Stroke is the
// line width; values below 1 draw a hairline.
func (s *Session) Line(x1, y1, x2, y2, stroke float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Line")
	s.add(draw.Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke, Color: s.color})
}

// Vector records a segment starting at (x, y) with the given length
// and heading. The heading is in degrees on the unit circle: 0 points
// right, 90 points up on screen.
func (s *Session) Vector(x, y, length, angle, stroke float64) {
	// Negate the heading so unit-circle angles work on a y-down screen.
	rad := -angle * math.Pi / 180
	endX := x + length*math.Cos(rad)
	endY := y + length*math.Sin(rad)
	s.Line(x, y, endX, endY, stroke)
}

// PolygonBegin starts a new polygon, discarding any points from an
// unfinished one. Add vertices with AddPolyPoint and record the shape
// with PolygonEnd.
func (s *Session) PolygonBegin(stroke float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("PolygonBegin")
	s.polyStroke = stroke
	s.polyPoints = s.polyPoints[:0]
}

// AddPolyPoint appends a vertex to the polygon under construction.
func (s *Session) AddPolyPoint(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("AddPolyPoint")
	s.polyPoints = append(s.polyPoints, draw.Point{X: x, Y: y})
}

// PolygonEnd records the polygon built since PolygonBegin.
func (s *Session) PolygonEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("PolygonEnd")
	pts := make([]draw.Point, len(s.polyPoints))
	copy(pts, s.polyPoints)
	s.add(draw.Polygon{Points: pts, Stroke: s.polyStroke, Color: s.color})
}

// Ellipse records an ellipse inscribed in the rectangle with top-left
// corner (x, y) and the given size.
func (s *Session) Ellipse(x, y, w, h, stroke float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Ellipse")
	s.add(draw.Ellipse{X: x, Y: y, W: w, H: h, Stroke: stroke, Color: s.color})
}

// Arc records the part of an inscribed ellipse between the start and
// end angles, in degrees on the unit circle.
func (s *Session) Arc(x, y, w, h, start, end, stroke float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Arc")
	s.add(draw.Arc{X: x, Y: y, W: w, H: h, Start: start, End: end, Stroke: stroke, Color: s.color})
}

// Text records a string drawn with the top-left of its line box at
// (x, y), at the given point size.
func (s *Session) Text(x, y float64, content string, size float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("Text")
	s.add(draw.Text{X: x, Y: y, Content: content, Size: size, Color: s.color})
}
