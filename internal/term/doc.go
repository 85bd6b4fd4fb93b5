// Package term provides a minimal terminal-control abstraction over the
// VT100 cursor escape sequences. The indicator repaints a fixed screen
// region through this interface; targets without ANSI support get a no-op
// implementation and fall back to plain line output.
package term
