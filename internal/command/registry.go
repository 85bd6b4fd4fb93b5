package command

import (
	"context"
	"fmt"
	"log/slog"
)

// Command is a named, zero-argument operation exposed to the end user,
// paired with a short description for help text.
type Command struct {
	Name        string
	Description string
	Run         func(ctx context.Context) error
}

// NotFoundError reports a command name that has no registration.
type NotFoundError struct {
	Name string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Registry maps command names to commands, preserving registration order
// for help rendering. It is populated during startup and read-only after.
type Registry struct {
	byName map[string]*Command
	order  []string
}

// New creates and initializes an empty Registry instance.
func New() *Registry {
	return &Registry{byName: make(map[string]*Command)}
}

// Register adds a command. It panics if the name is already registered;
// only startup code calls it, so a duplicate is a programmer error.
func (r *Registry) Register(name, description string, run func(ctx context.Context) error) {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("command %q already registered", name))
	}
	slog.Debug("Registering command.", "name", name)
	r.byName[name] = &Command{Name: name, Description: description, Run: run}
	r.order = append(r.order, name)
}

// Resolve looks up a command by exact name. A miss returns *NotFoundError.
func (r *Registry) Resolve(name string) (*Command, error) {
	cmd, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return cmd, nil
}

// All returns the registered commands in registration order.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.byName[name])
	}
	return cmds
}
