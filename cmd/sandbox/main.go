// Sandbox draws a small animated scene: fixed axes in the background,
// a bouncing ball and a rotating rectangle redrawn over them.
package main

import (
	"log/slog"
	"os"

	"github.com/easelgo/easel"
	"github.com/easelgo/easel/engine/colors"
)

func main() {
	easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	s, err := easel.Start("Easel Sandbox", 800, 600, colors.White)
	if err != nil {
		slog.Error("start failed", "err", err)
		os.Exit(1)
	}
	s.SetSpeed(9)

	// Axes and a title, replayed on every Redraw.
	s.BackgroundBegin()
	s.SetColor(colors.Gray)
	s.Line(400, 0, 400, 600, 1)
	s.Line(0, 300, 800, 300, 1)
	s.SetColor(colors.Black)
	s.Text(10, 10, "easel sandbox", 18)
	s.BackgroundEnd()
	s.Redraw()

	// A static composition drawn once on top.
	s.SetColor(colors.Purple)
	s.PolygonBegin(0)
	s.AddPolyPoint(650, 500)
	s.AddPolyPoint(750, 500)
	s.AddPolyPoint(700, 420)
	s.PolygonEnd()
	s.SetColor(colors.Orange)
	s.Arc(50, 450, 120, 120, 0, 180, 3)
	s.Draw()

	// Animate: each Redraw clears back to the axes.
	for i := 0; i < 120; i++ {
		t := float64(i)

		s.SetColor(colors.Red)
		s.Circle(100+t*5, 300, 30, 0)

		s.SetColor(colors.Blue)
		s.RectRotated(360, 260, 80, 80, 2, t*3, easel.Center)

		s.SetColor(colors.Green)
		s.Vector(400, 300, 150, t*6, 2)

		s.Redraw()
	}

	if err := s.Done(); err != nil {
		slog.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
}
