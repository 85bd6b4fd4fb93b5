package indicator

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gookit/color"

	"github.com/portal-vm/portal/internal/term"
)

// frames is the repeating glyph cycle painted in front of the status text.
var frames = [...]string{"▖", "▞", "▟", "█", "▙", "▚", "▗"}

// DefaultInterval is the delay between repaints.
const DefaultInterval = 500 * time.Millisecond

var gold = color.HEX("FFD700")

// Indicator repaints a fixed terminal region from a dedicated goroutine
// while a blocking operation is in flight on the caller's goroutine. The
// caller only flips it off via Stop; Stop joins the goroutine before the
// final terminal reset, so no trailing frame can land after Stop returns.
type Indicator struct {
	ctrl     term.Control
	interval time.Duration

	running atomic.Bool

	mu   sync.Mutex
	done chan struct{}
	wg   sync.WaitGroup
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithInterval overrides the repaint interval. Values <= 0 keep the default.
func WithInterval(d time.Duration) Option {
	return func(i *Indicator) {
		if d > 0 {
			i.interval = d
		}
	}
}

// New creates an Indicator painting through ctrl.
func New(ctrl term.Control, opts ...Option) *Indicator {
	ind := &Indicator{ctrl: ctrl, interval: DefaultInterval}
	for _, opt := range opts {
		opt(ind)
	}
	return ind
}

// Running reports whether the animation goroutine is active.
func (i *Indicator) Running() bool {
	return i.running.Load()
}

// Start begins the animation with the given status text. Starting an
// already-running indicator is a no-op; at most one loop is active.
func (i *Indicator) Start(status string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.running.CompareAndSwap(false, true) {
		return
	}

	i.ctrl.SaveCursor()
	i.done = make(chan struct{})
	i.wg.Add(1)
	go i.loop(status, i.done)
}

// loop repaints the saved region once per interval until done is closed.
// The cancellation check happens once per iteration, before painting.
func (i *Indicator) loop(status string, done <-chan struct{}) {
	defer i.wg.Done()

	frame := 0
	for {
		select {
		case <-done:
			return
		default:
		}

		i.ctrl.RestoreCursor()
		i.ctrl.ClearToEnd()
		fmt.Fprint(i.ctrl.Writer(), gold.Sprintf("%s %s", frames[frame], status))

		frame++
		if frame >= len(frames) {
			frame = 0
		}

		select {
		case <-done:
			return
		case <-time.After(i.interval):
		}
	}
}

// Stop ends the animation, waits for the goroutine to exit, and clears the
// painted region so the cursor lands cleanly. Stopping a non-running
// indicator performs only the cosmetic terminal reset.
func (i *Indicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.running.CompareAndSwap(true, false) {
		close(i.done)
		i.wg.Wait()
	}

	i.ctrl.RestoreCursor()
	i.ctrl.SaveCursor()
	i.ctrl.ClearToEnd()
}

// FrameCount returns the length of the glyph cycle.
func FrameCount() int {
	return len(frames)
}

// Frame returns the glyph painted on iteration n of the loop.
func Frame(n int) string {
	return frames[n%len(frames)]
}
