package app

import (
	"io"
	"log/slog"

	"github.com/portal-vm/portal/internal/catalog"
	"github.com/portal-vm/portal/internal/command"
	"github.com/portal-vm/portal/internal/config"
	"github.com/portal-vm/portal/internal/indicator"
	"github.com/portal-vm/portal/internal/term"
)

// Params carries the collaborators an App is built from. OutW and Config
// are required; nil Source and Control select the production defaults
// (Adoptium client, auto-detected terminal).
type Params struct {
	OutW    io.Writer
	ErrW    io.Writer
	Config  *config.Config
	Source  catalog.Source
	Control term.Control
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle. There is no global instance; the entry point constructs one
// App and passes it down.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger

	registry *command.Registry
	source   catalog.Source
	spin     *indicator.Indicator

	ownedSource io.Closer
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a populated
// command registry.
func New(p Params) *App {
	if p.ErrW == nil {
		p.ErrW = p.OutW
	}
	logger := newLogger(p.Config, p.ErrW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   p.OutW,
		errW:   p.ErrW,
		logger: logger,
		source: p.Source,
	}

	if a.source == nil {
		adoptium := catalog.NewAdoptium(p.Config.APIURL)
		a.source = adoptium
		a.ownedSource = adoptium
	}

	ctrl := p.Control
	if ctrl == nil {
		ctrl = term.Detect(p.OutW)
	}
	a.spin = indicator.New(ctrl, indicator.WithInterval(p.Config.SpinnerInterval))

	a.registry = command.New()
	a.registerCommands()
	logger.Debug("Command registry populated.", "count", len(a.registry.All()))

	return a
}

// Registry returns the application's command registry. This is primarily
// for testing.
func (a *App) Registry() *command.Registry {
	return a.registry
}

// Indicator returns the application's progress indicator. This is
// primarily for testing.
func (a *App) Indicator() *indicator.Indicator {
	return a.spin
}

// Close releases resources owned by the App, such as the default catalog
// client. Injected collaborators are left to their owners.
func (a *App) Close() error {
	if a.ownedSource != nil {
		return a.ownedSource.Close()
	}
	return nil
}
