// Package platform wraps the GLFW window used by the render loop.
// Every function here must be called from the goroutine that created
// the window, and that goroutine must be locked to its OS thread.
package platform

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its GL context.
type Window struct {
	w          *glfw.Window
	allowClose func() bool
}

// NewWindow initializes GLFW, creates a visible fixed-size window and
// makes its GL context current.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	// GL 3.3 core profile (Mac requires the forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// The canvas has a fixed size; resizing would stretch it.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	g := &Window{w: win}
	win.SetCloseCallback(func(*glfw.Window) {
		if g.allowClose != nil && !g.allowClose() {
			win.SetShouldClose(false)
		}
	})
	win.Focus()
	return g, nil
}

// OnCloseRequest installs the close policy: the callback is invoked on
// every close request and returns whether the close is honored. A
// vetoed request leaves the window open.
func (g *Window) OnCloseRequest(allow func() bool) { g.allowClose = allow }

// WaitForFirstEvent blocks until an input event arrives or the timeout
// expires. Used once at startup so the window is mapped and in front
// before the starter is released.
func (g *Window) WaitForFirstEvent(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// PollEvents drains pending events, firing callbacks.
func (g *Window) PollEvents() { glfw.PollEvents() }

// ShouldClose reports whether an honored close request is pending.
func (g *Window) ShouldClose() bool { return g.w.ShouldClose() }

// SwapBuffers presents the back buffer.
func (g *Window) SwapBuffers() { g.w.SwapBuffers() }

// FramebufferSize returns the drawable size in pixels, which can
// differ from the requested size on high-DPI displays.
func (g *Window) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }

// SetTitle updates the window title.
func (g *Window) SetTitle(t string) { g.w.SetTitle(t) }

// Destroy tears down the window and the GLFW subsystem.
func (g *Window) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
