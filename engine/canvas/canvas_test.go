package canvas

import (
	"image"
	"testing"

	"github.com/easelgo/easel/engine/colors"
	"github.com/easelgo/easel/engine/draw"
)

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(200, 200)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Clear(colors.White); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	return c
}

// bbox returns the bounding box of all non-white pixels.
func bbox(t *testing.T, img image.Image) image.Rectangle {
	t.Helper()
	var box image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0xffff && g == 0xffff && bl == 0xffff {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if box.Empty() {
				box = px
			} else {
				box = box.Union(px)
			}
		}
	}
	if box.Empty() {
		t.Fatal("nothing was drawn")
	}
	return box
}

func TestFullTurnAboutCenterMatchesUnrotated(t *testing.T) {
	plain := newTestCanvas(t)
	if err := plain.Rect(60, 80, 50, 30, 0, 0, draw.Pivot{Mode: draw.Center}, colors.Red); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	rotated := newTestCanvas(t)
	// A full turn exercises the rotation path and must land where the
	// unrotated rectangle does.
	if err := rotated.Rect(60, 80, 50, 30, 0, 360, draw.Pivot{Mode: draw.Center}, colors.Red); err != nil {
		t.Fatalf("Rect: %v", err)
	}

	got, want := bbox(t, rotated.Image()), bbox(t, plain.Image())
	slack := image.Rect(want.Min.X-1, want.Min.Y-1, want.Max.X+1, want.Max.Y+1)
	if !got.In(slack) || got.Dx() < want.Dx()-2 || got.Dy() < want.Dy()-2 {
		t.Fatalf("bounding box %v, want about %v", got, want)
	}
}

func TestHalfTurnAboutBottomLeftMovesRect(t *testing.T) {
	c := newTestCanvas(t)
	// 180 degrees about the bottom-left corner reflects the rectangle
	// through that corner: new top-left is (x-w, y+h).
	if err := c.Rect(100, 100, 40, 20, 0, 180, draw.Pivot{Mode: draw.BottomLeft}, colors.Red); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	box := bbox(t, c.Image())
	want := image.Rect(60, 120, 100, 140)
	if box.Min.X < want.Min.X-1 || box.Min.Y < want.Min.Y-1 ||
		box.Max.X > want.Max.X+1 || box.Max.Y > want.Max.Y+1 {
		t.Fatalf("bounding box %v, want about %v", box, want)
	}
}

func TestRectBoundingBox(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Rect(60, 80, 50, 30, 0, 0, draw.Pivot{Mode: draw.Center}, colors.Blue); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	box := bbox(t, c.Image())
	want := image.Rect(60, 80, 110, 110)
	// Allow one pixel of antialiasing slack on each edge.
	if box.Min.X < want.Min.X-1 || box.Min.Y < want.Min.Y-1 ||
		box.Max.X > want.Max.X+1 || box.Max.Y > want.Max.Y+1 {
		t.Fatalf("bounding box %v, want about %v", box, want)
	}
}

func TestCircleCoversCenter(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Circle(100, 100, 20, 0, colors.Black); err != nil {
		t.Fatalf("Circle: %v", err)
	}
	r, g, b, _ := c.Image().At(100, 100).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("center pixel = (%d, %d, %d), want black", r, g, b)
	}
}

func TestStrokedCircleLeavesCenterUntouched(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Circle(100, 100, 40, 2, colors.Black); err != nil {
		t.Fatalf("Circle: %v", err)
	}
	r, g, b, _ := c.Image().At(100, 100).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Fatal("stroked circle filled its interior")
	}
}

func TestPolygonRequiresThreePoints(t *testing.T) {
	c := newTestCanvas(t)
	err := c.Polygon([]draw.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, 0, colors.Red)
	if err == nil {
		t.Fatal("expected error for a 2-point polygon")
	}
}

func TestTextRejectsNonPositiveSize(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Text(10, 10, "hi", 0, colors.Black); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestLineDrawsBetweenEndpoints(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Line(20, 100, 180, 100, 3, colors.Green); err != nil {
		t.Fatalf("Line: %v", err)
	}
	// Green on white: the red and blue channels drop where the line is.
	r, _, b, _ := c.Image().At(100, 100).RGBA()
	if r == 0xffff && b == 0xffff {
		t.Fatal("line midpoint not drawn")
	}
}
