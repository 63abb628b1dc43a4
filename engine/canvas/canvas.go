// Package canvas rasterizes draw commands onto a CPU pixmap using the
// gg software renderer. The resulting RGBA image is what the render
// loop uploads to the window each flush.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/easelgo/easel/engine/draw"
)

// Canvas implements draw.Canvas over a gg.Context.
type Canvas struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face // face cache per point size
}

// New creates a w×h canvas with the embedded default font loaded.
func New(w, h int) (*Canvas, error) {
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	return &Canvas{
		dc:    gg.NewContext(w, h),
		font:  font,
		faces: make(map[float64]text.Face),
	}, nil
}

// Image returns the current pixels. The render loop uploads this to
// the window texture after each executed batch.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) error {
	c.dc.ClearWithColor(gg.FromColor(col))
	return nil
}

// Circle draws a circle centered at (x, y). Stroke 0 fills it,
// otherwise stroke is the outline width.
func (c *Canvas) Circle(x, y, r, stroke float64, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	return c.paint(stroke)
}

// Rect draws a w×h rectangle whose unrotated top-left corner is at
// (x, y), rotated angle degrees counter-clockwise about the pivot.
func (c *Canvas) Rect(x, y, w, h, stroke, angle float64, pivot draw.Pivot, col color.Color) error {
	dx, dy := pivot.Offset(x, y, w, h)
	px := x + w/2 + dx
	py := y + h/2 + dy

	c.dc.Push()
	defer c.dc.Pop()
	if angle != 0 {
		// Screen space is y-down, so a positive (counter-clockwise)
		// angle maps to a negative rotation.
		c.dc.RotateAbout(-radians(angle), px, py)
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	return c.paint(stroke)
}

// Line draws a segment from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2, stroke float64, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.SetLineWidth(math.Max(stroke, 1))
	return c.dc.Stroke()
}

// Polygon draws a closed polygon through pts. Stroke 0 fills it.
func (c *Canvas) Polygon(pts []draw.Point, stroke float64, col color.Color) error {
	if len(pts) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d", len(pts))
	}
	c.dc.SetColor(col)
	for i, p := range pts {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
		} else {
			c.dc.LineTo(p.X, p.Y)
		}
	}
	c.dc.ClosePath()
	return c.paint(stroke)
}

// Ellipse draws an ellipse inscribed in the rectangle at (x, y).
func (c *Canvas) Ellipse(x, y, w, h, stroke float64, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	return c.paint(stroke)
}

// Arc draws the section of an inscribed ellipse between start and end
// degrees, measured on the unit circle (0 = east, counter-clockwise).
func (c *Canvas) Arc(x, y, w, h, start, end, stroke float64, col color.Color) error {
	c.dc.SetColor(col)
	// Negate for y-down screen space; swap so the sweep stays
	// start -> end in unit-circle orientation.
	c.dc.DrawEllipticalArc(x+w/2, y+h/2, w/2, h/2, -radians(end), -radians(start))
	c.dc.SetLineWidth(math.Max(stroke, 1))
	return c.dc.Stroke()
}

// Text draws s with the top-left of its line box at (x, y), using the
// embedded font at the given point size.
func (c *Canvas) Text(x, y float64, s string, size float64, col color.Color) error {
	if size <= 0 {
		return fmt.Errorf("text size must be positive, got %g", size)
	}
	face, ok := c.faces[size]
	if !ok {
		face = c.font.Face(size)
		c.faces[size] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	// DrawString takes a baseline position.
	c.dc.DrawString(s, x, y+face.Metrics().Ascent)
	return nil
}

// paint fills the current path when stroke is 0, otherwise strokes it
// with the given width.
func (c *Canvas) paint(stroke float64) error {
	if stroke <= 0 {
		return c.dc.Fill()
	}
	c.dc.SetLineWidth(stroke)
	return c.dc.Stroke()
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
