package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/portal-vm/portal/internal/cli"
	"github.com/portal-vm/portal/internal/ctxlog"
)

// runInstallable shows the indicator while the catalog fetch blocks this
// goroutine, then replaces the animation with the result. One attempt, no
// retry. The fetch failure is reported here (after the indicator has been
// stopped and joined, so the message cannot be overwritten by a frame) and
// propagated as a silent non-zero exit.
func (a *App) runInstallable(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	a.spin.Start("fetching...")
	versions, err := a.source.AvailableVersions(ctx)
	a.spin.Stop()

	if err != nil {
		logger.Debug("Catalog fetch failed.", "error", err)
		fmt.Fprintln(a.errW, color.Red.Sprint(err.Error()))
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprint(a.outW, color.Bold.Sprint("Available versions:\n\n"))
	fmt.Fprintf(a.outW, " * %s\n", strings.Join(versions, "\n * "))
	fmt.Fprintf(a.outW, "\nUse %s to install a JVM\n", color.Bold.Sprint("portal add <version>"))
	return nil
}
