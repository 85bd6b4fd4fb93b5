package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed option set for one invocation. It is constructed
// once by Parse and never mutated afterwards.
type Options struct {
	Version    bool
	HelloWorld bool
	Level      int
	LevelSet   bool
	Command    string

	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// OptionSpec describes one declared flag for help rendering.
type OptionSpec struct {
	Name        string
	Param       string
	Description string
}

// optionSpecs drives both flag declaration and help output. The "command"
// entry is internal plumbing for the positional argument and is hidden
// from help by HelpIgnored.
var optionSpecs = []OptionSpec{
	{"version", "", "Print the version number"},
	{"hello-world", "", "Print hello world message to the screen"},
	{"level", "int", "Level of an integer where use to testing only"},
	{"config", "path", "Path to an HCL config file (default ~/.portal.hcl)"},
	{"log-level", "string", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."},
	{"log-format", "string", "Log output format. Options: 'text' or 'json'."},
	{"command", "string", "Commands"},
}

// helpIgnored lists option names excluded from help output.
var helpIgnored = map[string]bool{"command": true}

// OptionSpecs returns the declared options in declaration order, skipping
// internal plumbing entries.
func OptionSpecs() []OptionSpec {
	specs := make([]OptionSpec, 0, len(optionSpecs))
	for _, spec := range optionSpecs {
		if helpIgnored[spec.Name] {
			continue
		}
		specs = append(specs, spec)
	}
	return specs
}

// describe finds the declared description for a flag name.
func describe(name string) string {
	for _, spec := range optionSpecs {
		if spec.Name == name {
			return spec.Description
		}
	}
	return ""
}

// Parse processes command-line arguments. It returns the populated
// Options, a boolean indicating if the program should exit cleanly, or an
// ExitError for malformed input.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("portal", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `portal - A version manager for Java.

Usage:
  portal [command] <option>...

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}
	flagSet.BoolVar(&opts.Version, "version", false, describe("version"))
	flagSet.BoolVar(&opts.HelloWorld, "hello-world", false, describe("hello-world"))
	flagSet.IntVar(&opts.Level, "level", 0, describe("level"))
	flagSet.StringVar(&opts.ConfigPath, "config", "", describe("config"))
	flagSet.StringVar(&opts.LogLevel, "log-level", "", describe("log-level"))
	flagSet.StringVar(&opts.LogFormat, "log-format", "", describe("log-format"))

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "level" {
			opts.LevelSet = true
		}
	})

	if flagSet.NArg() > 0 {
		opts.Command = flagSet.Arg(0)
	}

	if opts.LogLevel != "" {
		switch strings.ToLower(opts.LogLevel) {
		case "debug", "info", "warn", "error":
			opts.LogLevel = strings.ToLower(opts.LogLevel)
		default:
			return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
		}
	}

	if opts.LogFormat != "" {
		switch strings.ToLower(opts.LogFormat) {
		case "text", "json":
			opts.LogFormat = strings.ToLower(opts.LogFormat)
		default:
			return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
		}
	}

	slog.Debug("CLI parser finished successfully.", "command", opts.Command)
	return opts, false, nil
}
