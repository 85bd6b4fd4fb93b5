// Package app wires the application together: it builds the logger,
// command registry, catalog source, and progress indicator, and owns the
// dispatch loop that maps a parsed option set onto a command handler. All
// recoverable failures funnel through *cli.ExitError back to the entry
// point, which translates them into the process exit code.
package app
