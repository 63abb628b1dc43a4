package easel

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/easelgo/easel/engine/colors"
	"github.com/easelgo/easel/engine/draw"
	"github.com/easelgo/easel/engine/queue"
)

// Defaults used by StartDefault and when Start receives zero values.
const (
	DefaultTitle  = "Welcome to Easel"
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// initialCooldown is the flush cadence before the first SetSpeed call.
const initialCooldown = time.Second

// ErrNotStarted is returned by Done on a Session that was not created
// by Start.
var ErrNotStarted = errors.New("easel: session not started")

// Pivot selects the point a rectangle is rotated about; see RectRotated.
type Pivot = draw.Pivot

// Named rotation pivots. PivotAt gives an explicit point instead.
var (
	Center      = draw.Pivot{Mode: draw.Center}
	BottomLeft  = draw.Pivot{Mode: draw.BottomLeft}
	BottomRight = draw.Pivot{Mode: draw.BottomRight}
	TopRight    = draw.Pivot{Mode: draw.TopRight}
	TopLeft     = draw.Pivot{Mode: draw.TopLeft}
)

// PivotAt returns a pivot rotating about the absolute point (x, y).
func PivotAt(x, y float64) Pivot { return draw.At(x, y) }

// Session is one open drawing window. It is created by Start and torn
// down by Done. All methods are safe to call from the starter
// goroutine while the render loop runs; a single lock guards every
// piece of shared state.
type Session struct {
	mu sync.Mutex

	pending    []draw.Command
	background []draw.Command
	batches    *queue.Timed[draw.Batch]

	color    color.Color
	bgColor  color.Color
	capture  bool
	running  bool
	shutdown bool

	polyPoints []draw.Point
	polyStroke float64

	finished chan struct{} // closed when the render goroutine exits
}

func newSession(background color.Color) *Session {
	return &Session{
		batches:  queue.NewTimed[draw.Batch](initialCooldown, nil),
		color:    colors.Black,
		bgColor:  background,
		finished: make(chan struct{}),
	}
}

// Start opens the window and returns once it is visible. An empty
// title or non-positive dimensions fall back to the defaults. A nil
// background means white.
//
// Exactly one render goroutine serves the session until Done is called
// and the user closes the window.
func Start(title string, width, height int, background color.Color) (*Session, error) {
	if title == "" {
		title = DefaultTitle
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	if background == nil {
		background = colors.White
	}

	s := newSession(background)
	s.running = true

	setup := make(chan error, 1)
	go s.renderLoop(title, width, height, setup)

	// Setup barrier: the render goroutine signals exactly once, after
	// the window exists and is in front, or with the creation error.
	if err := <-setup; err != nil {
		s.running = false
		return nil, fmt.Errorf("easel: start: %w", err)
	}
	Logger().Debug("session started", "title", title, "width", width, "height", height)
	return s, nil
}

// StartDefault opens a white 1280x720 window with the default title.
func StartDefault() (*Session, error) {
	return Start(DefaultTitle, DefaultWidth, DefaultHeight, colors.White)
}

// Done signals that the program has finished drawing and blocks until
// the user closes the window. Before Done is called, close requests
// are ignored, so the drawing stays on screen; after it, the first
// close request ends the render loop and Done returns.
//
// Done is idempotent; extra calls return immediately.
func (s *Session) Done() error {
	if s.finished == nil {
		return ErrNotStarted
	}
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	<-s.finished
	Logger().Debug("session finished")
	return nil
}

// SetSpeed sets the drawing rate. Levels run 1 (slow, roughly one
// flush every 1.8 seconds) to 10 (roughly 30 per second); values
// outside that range are clamped.
func (s *Session) SetSpeed(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("SetSpeed")
	s.batches.SetCooldown(cooldownForLevel(level))
}

// cooldownForLevel maps a (clamped) speed level to the minimum
// interval between executed flushes: level 10 is 33ms, level 1 1790ms.
func cooldownForLevel(level int) time.Duration {
	if level < 1 {
		level = 1
	} else if level > 10 {
		level = 10
	}
	ms := 33 + 197*(10-level)
	return time.Duration(ms) * time.Millisecond
}

// SetColor sets the color captured by subsequent shape calls. Shapes
// keep the color that was current when they were created.
func (s *Session) SetColor(c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("SetColor")
	if c != nil {
		s.color = c
	}
}

// Draw flushes every shape created since the last flush. The shapes
// are drawn on top of whatever is already on screen, one batch per
// cooldown interval.
func (s *Session) Draw() {
	s.flush(false)
}

// Redraw flushes like Draw, but the window is first cleared to the
// background color and the captured background shapes are replayed.
func (s *Session) Redraw() {
	s.flush(true)
}

func (s *Session) flush(refresh bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if refresh {
		s.mustBeRunning("Redraw")
	} else {
		s.mustBeRunning("Draw")
	}
	items := make([]draw.Command, len(s.pending))
	copy(items, s.pending)
	s.batches.Push(draw.Batch{Refresh: refresh, Items: items})
	s.pending = s.pending[:0]
}

// BackgroundBegin starts background capture: shapes created until
// BackgroundEnd are also recorded as the background, which Redraw
// replays after clearing the window.
func (s *Session) BackgroundBegin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("BackgroundBegin")
	s.capture = true
}

// BackgroundEnd stops background capture.
func (s *Session) BackgroundEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeRunning("BackgroundEnd")
	s.capture = false
}

// add records a command in the pending list, and in the background
// list while capture is on. Callers hold s.mu.
func (s *Session) add(cmd draw.Command) {
	if s.capture {
		s.background = append(s.background, cmd)
	}
	s.pending = append(s.pending, cmd)
}

// mustBeRunning panics when the session is not serving a window.
// Drawing before Start or after Done is a programming error; failing
// fast beats a silent no-op or a deadlock. Callers hold s.mu.
func (s *Session) mustBeRunning(op string) {
	if !s.running {
		panic("easel: " + op + " called on a session that is not running (use the Session returned by Start, before Done)")
	}
}
