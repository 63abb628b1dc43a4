// Package easel is a beginner-oriented procedural drawing toolkit.
//
// A session opens a window and keeps it alive on a dedicated render
// goroutine; the caller draws with plain function calls and never
// touches a render loop:
//
//	s, err := easel.Start("My Drawing", 800, 600, colors.White)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.SetSpeed(8)
//
//	s.SetColor(colors.Red)
//	s.Circle(400, 300, 80, 0)
//	s.Draw()
//
//	s.Done() // keep the window until the user closes it
//
// # Deferred drawing
//
// Shape calls (Circle, Rect, Line, Vector, Polygon..., Ellipse, Arc,
// Text) do not draw immediately: they record commands that the next
// Draw or Redraw flushes to the window. Draw paints the new shapes on
// top of the current picture; Redraw first clears the window to the
// background color and replays the shapes captured between
// BackgroundBegin and BackgroundEnd. Flushes appear at most once per
// cooldown interval, controlled by SetSpeed, so drawings animate at a
// watchable pace.
//
// # Lifecycle
//
// Start blocks until the window is visible. Done signals that the
// program is finished and blocks until the user closes the window;
// close requests before Done are ignored so the picture stays up.
// A shape call that fails to render is reported to the package logger
// (see SetLogger) and skipped; one bad shape never takes the window
// down.
package easel
