package draw

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
)

// recorder implements Canvas and logs one entry per call.
type recorder struct {
	calls []string
	fail  map[string]error // op name -> error to return
}

func (r *recorder) record(op string) error {
	r.calls = append(r.calls, op)
	if r.fail != nil {
		return r.fail[op]
	}
	return nil
}

func (r *recorder) Clear(color.Color) error { return r.record("clear") }
func (r *recorder) Circle(x, y, rad, stroke float64, col color.Color) error {
	return r.record(fmt.Sprintf("circle(%g,%g,%g)", x, y, rad))
}
func (r *recorder) Rect(x, y, w, h, stroke, angle float64, p Pivot, col color.Color) error {
	return r.record("rect")
}
func (r *recorder) Line(x1, y1, x2, y2, stroke float64, col color.Color) error {
	return r.record("line")
}
func (r *recorder) Polygon(pts []Point, stroke float64, col color.Color) error {
	return r.record(fmt.Sprintf("polygon(%d)", len(pts)))
}
func (r *recorder) Ellipse(x, y, w, h, stroke float64, col color.Color) error {
	return r.record("ellipse")
}
func (r *recorder) Arc(x, y, w, h, start, end, stroke float64, col color.Color) error {
	return r.record("arc")
}
func (r *recorder) Text(x, y float64, s string, size float64, col color.Color) error {
	return r.record("text:" + s)
}

// panicky panics on Circle and delegates everything else.
type panicky struct{ recorder }

func (p *panicky) Circle(x, y, r, stroke float64, col color.Color) error {
	panic("bad circle")
}

func TestPivotOffset(t *testing.T) {
	const x, y, w, h = 100.0, 200.0, 40.0, 20.0
	tests := []struct {
		name   string
		pivot  Pivot
		dx, dy float64
	}{
		{"center", Pivot{Mode: Center}, 0, 0},
		{"bottom left", Pivot{Mode: BottomLeft}, -20, 10},
		{"bottom right", Pivot{Mode: BottomRight}, 20, 10},
		{"top right", Pivot{Mode: TopRight}, 20, -10},
		{"top left", Pivot{Mode: TopLeft}, -20, -10},
		{"explicit point", At(100, 200), -20, -10},
		{"explicit center", At(120, 210), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.pivot.Offset(x, y, w, h)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Offset = (%g, %g), want (%g, %g)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestRunExecutesInOrderExactlyOnce(t *testing.T) {
	rec := &recorder{}
	items := []Command{
		Circle{X: 1, Y: 2, R: 3},
		Line{X1: 0, Y1: 0, X2: 1, Y2: 1},
		Text{Content: "hi"},
	}
	Run(rec, items, func(Command, error) { t.Error("unexpected report") })

	want := []string{"circle(1,2,3)", "line", "text:hi"}
	if strings.Join(rec.calls, ";") != strings.Join(want, ";") {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestRunIsolatesFailingItem(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{fail: map[string]error{"line": boom}}
	var reported []error
	Run(rec, []Command{
		Circle{R: 1},
		Line{},
		Ellipse{},
	}, func(_ Command, err error) { reported = append(reported, err) })

	if len(rec.calls) != 3 {
		t.Fatalf("sibling items did not all run: %v", rec.calls)
	}
	if len(reported) != 1 || !errors.Is(reported[0], boom) {
		t.Fatalf("reported = %v, want exactly [boom]", reported)
	}
}

func TestRunRecoversPanickingItem(t *testing.T) {
	rec := &panicky{}
	var reported []error
	Run(rec, []Command{
		Circle{R: 1}, // panics
		Ellipse{},
	}, func(_ Command, err error) { reported = append(reported, err) })

	if len(reported) != 1 || !strings.Contains(reported[0].Error(), "bad circle") {
		t.Fatalf("reported = %v, want one recovered panic", reported)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "ellipse" {
		t.Fatalf("calls after panic = %v, want [ellipse]", rec.calls)
	}
}

func TestRunNilReport(t *testing.T) {
	rec := &recorder{fail: map[string]error{"rect": errors.New("x")}}
	// Must not panic with a nil report callback.
	Run(rec, []Command{Rect{}}, nil)
}
