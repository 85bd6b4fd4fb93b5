package app

import (
	"context"

	"github.com/portal-vm/portal/internal/ctxlog"
)

// registerCommands populates the registry during startup. Registration
// order is the order commands appear in help output.
func (a *App) registerCommands() {
	a.registry.Register("help", "Print help message", a.runHelp)
	a.registry.Register("list", "List all installed JVMs", a.runList)
	a.registry.Register("installable", "List available versions of JVM online", a.runInstallable)
	a.registry.Register("ani-debug", "use to debug animation", a.runAniDebug)
}

// runList is a stub until installed-JVM discovery lands.
func (a *App) runList(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("Installed JVM listing is not implemented yet.")
	return nil
}

// runAniDebug exercises the indicator until the process is interrupted.
func (a *App) runAniDebug(ctx context.Context) error {
	a.spin.Start("Debugging animation...")
	<-ctx.Done()
	a.spin.Stop()
	return nil
}
