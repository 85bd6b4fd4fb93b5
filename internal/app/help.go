package app

import (
	"context"
	"fmt"

	"github.com/gookit/color"

	"github.com/portal-vm/portal/internal/cli"
	"github.com/portal-vm/portal/internal/version"
)

// columnWidth aligns command and option names in help output.
const columnWidth = 20

var violet = color.HEX("8A2BE2")

// banner is the ASCII-art logo shown at the top of help output.
var banner = []string{
	` ____            _        _`,
	`|  _ \ ___  _ __| |_ __ _| |`,
	`| |_) / _ \| '__| __/ _` + "`" + ` | |`,
	`|  __| (_) | |  | || (_| | |`,
	`|_|   \___/|_|   \__\__,_|_|`,
}

// runHelp prints the banner, every registered command in registration
// order, and the declared options minus internal plumbing entries. Pure
// formatting, no concurrency.
func (a *App) runHelp(ctx context.Context) error {
	for _, line := range banner {
		fmt.Fprintln(a.outW, violet.Sprint(line))
	}
	fmt.Fprintln(a.outW, violet.Sprintf("%35s", "A version manager for Java"))
	fmt.Fprintln(a.outW, violet.Sprintf("%35s", "v"+version.Version))
	fmt.Fprintln(a.outW)

	fmt.Fprint(a.outW, "Usage: portal [command] <option>...\n\n")
	fmt.Fprintln(a.outW, "Commands:")

	for _, cmd := range a.registry.All() {
		fmt.Fprintf(a.outW, "    %-*s := %s\n", columnWidth, cmd.Name, cmd.Description)
	}

	fmt.Fprint(a.outW, "\nOptions:\n")

	for _, spec := range cli.OptionSpecs() {
		name := "--" + spec.Name
		if spec.Param != "" {
			name = fmt.Sprintf("%s [%s]", name, spec.Param)
		}
		fmt.Fprintf(a.outW, "    %-*s := %s\n", columnWidth, name, spec.Description)
	}

	fmt.Fprintln(a.outW)
	return nil
}
