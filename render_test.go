package easel

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easelgo/easel/engine/draw"
)

// recordingCanvas logs the order of operations applied to it.
type recordingCanvas struct {
	ops  []string
	fail bool // make every shape call fail
}

func (r *recordingCanvas) op(name string) error {
	r.ops = append(r.ops, name)
	if r.fail && name != "clear" {
		return errors.New("shape failed")
	}
	return nil
}

func (r *recordingCanvas) Clear(color.Color) error { return r.op("clear") }
func (r *recordingCanvas) Circle(x, y, rad, stroke float64, col color.Color) error {
	return r.op("circle")
}
func (r *recordingCanvas) Rect(x, y, w, h, stroke, angle float64, p draw.Pivot, col color.Color) error {
	return r.op("rect")
}
func (r *recordingCanvas) Line(x1, y1, x2, y2, stroke float64, col color.Color) error {
	return r.op("line")
}
func (r *recordingCanvas) Polygon(pts []draw.Point, stroke float64, col color.Color) error {
	return r.op("polygon")
}
func (r *recordingCanvas) Ellipse(x, y, w, h, stroke float64, col color.Color) error {
	return r.op("ellipse")
}
func (r *recordingCanvas) Arc(x, y, w, h, start, end, stroke float64, col color.Color) error {
	return r.op("arc")
}
func (r *recordingCanvas) Text(x, y float64, s string, size float64, col color.Color) error {
	return r.op("text")
}

func TestRenderBatchPlainDrawLeavesScreenAlone(t *testing.T) {
	rec := &recordingCanvas{}
	batch := draw.Batch{Items: []draw.Command{draw.Circle{}, draw.Line{}}}
	background := []draw.Command{draw.Rect{}}

	renderBatch(rec, batch, background, color.White, nil)

	// No clear, no background replay: new shapes stack on top.
	assert.Equal(t, []string{"circle", "line"}, rec.ops)
}

func TestRenderBatchRefreshReplaysBackgroundFirst(t *testing.T) {
	rec := &recordingCanvas{}
	batch := draw.Batch{Refresh: true, Items: []draw.Command{draw.Circle{}}}
	background := []draw.Command{draw.Line{}, draw.Ellipse{}}

	renderBatch(rec, batch, background, color.White, nil)

	assert.Equal(t, []string{"clear", "line", "ellipse", "circle"}, rec.ops)
}

func TestRenderBatchRefreshWithEmptyItems(t *testing.T) {
	// Redraw with nothing pending still clears and replays exactly the
	// background, in insertion order.
	rec := &recordingCanvas{}
	background := []draw.Command{draw.Line{}, draw.Text{}}

	renderBatch(rec, draw.Batch{Refresh: true}, background, color.White, nil)

	assert.Equal(t, []string{"clear", "line", "text"}, rec.ops)
}

func TestRenderBatchReportsAndContinuesOnFailure(t *testing.T) {
	rec := &recordingCanvas{fail: true}
	batch := draw.Batch{Items: []draw.Command{draw.Circle{}, draw.Arc{}}}

	var failed int
	renderBatch(rec, batch, nil, color.White, func(draw.Command, error) { failed++ })

	// Both items ran and both failures were reported.
	assert.Equal(t, []string{"circle", "arc"}, rec.ops)
	assert.Equal(t, 2, failed)
}
