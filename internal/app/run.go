package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/portal-vm/portal/internal/cli"
	"github.com/portal-vm/portal/internal/command"
	"github.com/portal-vm/portal/internal/ctxlog"
	"github.com/portal-vm/portal/internal/version"
)

// Run dispatches one invocation according to the parsed options. All
// recoverable failures come back as *cli.ExitError so the entry point owns
// the single error-to-exit funnel.
func (a *App) Run(ctx context.Context, opts *cli.Options) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// --version short-circuits every other flag and the command.
	if opts.Version {
		fmt.Fprintln(a.outW, version.Version)
		return nil
	}

	if opts.HelloWorld {
		fmt.Fprintln(a.outW, "Hello World!")
	}

	if opts.LevelSet {
		fmt.Fprintf(a.outW, "Level is set to %d\n", opts.Level)
	}

	if opts.Command == "" {
		return &cli.ExitError{
			Code:    1,
			Message: `No command to run, use "portal help" to get usage info`,
		}
	}

	cmd, err := a.registry.Resolve(opts.Command)
	if err != nil {
		var notFound *command.NotFoundError
		if errors.As(err, &notFound) {
			return &cli.ExitError{
				Code:    1,
				Message: fmt.Sprintf(`Unknown command %q, use "portal help" to get usage info`, opts.Command),
			}
		}
		return err
	}

	a.logger.Debug("Dispatching command.", "name", cmd.Name)
	if err := cmd.Run(ctx); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// The handler already reported the failure itself.
			return exitErr
		}
		return &cli.ExitError{
			Code:    1,
			Message: fmt.Sprintf("Command %q failed: %v", opts.Command, err),
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
