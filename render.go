package easel

import (
	"fmt"
	"image/color"
	"runtime"
	"time"

	"github.com/easelgo/easel/engine/canvas"
	"github.com/easelgo/easel/engine/draw"
	glbackend "github.com/easelgo/easel/engine/gfx/gl"
	"github.com/easelgo/easel/engine/platform"
)

// renderLoop is the render goroutine. It owns the window, the GL
// objects and the canvas for the whole session: GLFW and GL calls are
// only valid from the OS thread this goroutine is locked to.
//
// It signals setup exactly once (nil after the window is visible, or
// the creation error) and closes s.finished on exit.
func (s *Session) renderLoop(title string, width, height int, setup chan<- error) {
	runtime.LockOSThread()
	defer close(s.finished)

	win, err := platform.NewWindow(title, width, height)
	if err != nil {
		setup <- err
		return
	}
	defer win.Destroy()

	blit, err := glbackend.NewBlitter(width, height)
	if err != nil {
		setup <- err
		return
	}
	defer blit.Shutdown()

	cv, err := canvas.New(width, height)
	if err != nil {
		setup <- err
		return
	}

	// A close request is honored only once Done has been called; until
	// then the window stays up no matter how often it is clicked away.
	win.OnCloseRequest(func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.shutdown
	})

	// First frame: plain background.
	fw, fh := win.FramebufferSize()
	blit.Viewport(fw, fh)
	if err := cv.Clear(s.bgColor); err != nil {
		Logger().Error("background fill failed", "err", err)
	}
	s.present(cv, blit, win)

	// Wait for an event so the window is mapped and in front before
	// the starter is released. The lock is not held here.
	win.WaitForFirstEvent(250 * time.Millisecond)
	setup <- nil

	for s.isRunning() {
		s.mu.Lock()
		if batch, ok := s.batches.Pop(); ok {
			s.execute(batch, cv, blit, win)
		}
		s.mu.Unlock()

		win.PollEvents()
		if win.ShouldClose() {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			break
		}
		// The queue gate is wall-clock based; polling once a
		// millisecond is far finer than the fastest cadence (33ms)
		// without pinning a core.
		time.Sleep(time.Millisecond)
	}
}

func (s *Session) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// execute runs one composite command and presents the result. Called
// from the render goroutine with s.mu held.
func (s *Session) execute(b draw.Batch, cv *canvas.Canvas, blit *glbackend.Blitter, win *platform.Window) {
	renderBatch(cv, b, s.background, s.bgColor, reportRenderError)
	s.present(cv, blit, win)
}

// renderBatch applies a composite command to a canvas: on a refresh
// the canvas is cleared and the background shapes are replayed first,
// then the batch items run in order. Item failures are reported and
// skipped; they never abort the rest of the batch.
func renderBatch(c draw.Canvas, b draw.Batch, background []draw.Command, bg color.Color, report func(draw.Command, error)) {
	if b.Refresh {
		if err := c.Clear(bg); err != nil && report != nil {
			report(nil, err)
		}
		draw.Run(c, background, report)
	}
	draw.Run(c, b.Items, report)
}

// present uploads the canvas pixels and flips the window buffer.
func (s *Session) present(cv *canvas.Canvas, blit *glbackend.Blitter, win *platform.Window) {
	if err := blit.Upload(cv.Image()); err != nil {
		Logger().Error("canvas upload failed", "err", err)
		return
	}
	blit.Present()
	win.SwapBuffers()
}

func reportRenderError(cmd draw.Command, err error) {
	Logger().Error("draw command failed", "command", fmt.Sprintf("%T", cmd), "err", err)
}
