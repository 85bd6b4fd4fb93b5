package term

import (
	"io"
	"os"
)

// Control abstracts the cursor-positioning escape sequences used by the
// progress indicator, so a non-ANSI target (or a test harness) can swap in
// a no-op implementation.
type Control interface {
	// SaveCursor records the current cursor position on the terminal.
	SaveCursor()
	// RestoreCursor moves the cursor back to the last saved position.
	RestoreCursor()
	// ClearToEnd erases everything from the cursor to the end of the screen.
	ClearToEnd()
	// Writer returns the underlying output stream for regular text.
	Writer() io.Writer
}

// ANSI control sequences (VT100).
const (
	saveCursor    = "\x1b[s"
	restoreCursor = "\x1b[u"
	clearToEnd    = "\x1b[0J"
)

// ansiControl emits raw VT100 escape sequences.
type ansiControl struct {
	w io.Writer
}

// NewANSI returns a Control that drives an ANSI-capable terminal attached
// to w.
func NewANSI(w io.Writer) Control {
	return &ansiControl{w: w}
}

func (c *ansiControl) SaveCursor()       { io.WriteString(c.w, saveCursor) }
func (c *ansiControl) RestoreCursor()    { io.WriteString(c.w, restoreCursor) }
func (c *ansiControl) ClearToEnd()       { io.WriteString(c.w, clearToEnd) }
func (c *ansiControl) Writer() io.Writer { return c.w }

// plainControl ignores all cursor operations. Regular text still goes
// through, so callers degrade to plain line output.
type plainControl struct {
	w io.Writer
}

// NewPlain returns a Control whose cursor operations are no-ops.
func NewPlain(w io.Writer) Control {
	return &plainControl{w: w}
}

func (c *plainControl) SaveCursor()       {}
func (c *plainControl) RestoreCursor()    {}
func (c *plainControl) ClearToEnd()       {}
func (c *plainControl) Writer() io.Writer { return c.w }

// Detect picks an ANSI Control unless the environment declares a terminal
// that cannot interpret escape sequences.
func Detect(w io.Writer) Control {
	switch os.Getenv("TERM") {
	case "", "dumb":
		return NewPlain(w)
	}
	return NewANSI(w)
}
