// Package command defines the command registry: an ordered, startup-built
// mapping from subcommand names to their handlers. The dispatcher resolves
// names against it and the help handler enumerates it in registration
// order. After startup the registry is never mutated.
package command
