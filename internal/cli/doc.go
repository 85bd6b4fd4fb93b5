// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into an immutable option set consumed by the
// dispatcher, and exposes the declared option table for help rendering.
package cli
