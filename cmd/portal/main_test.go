package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portal-vm/portal/internal/cli"
)

// isolateHome keeps the test away from any real ~/.portal.hcl.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestRun_HelpFlag(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when the parser requests a clean exit")
	require.Contains(t, out.String(), "Usage:", "expected usage text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_VersionFlag(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"--version", "--hello-world"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "0.0.1\n", out.String(), "--version must short-circuit all other flags")
}

func TestRun_UnknownCommand(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"bogus"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.NotZero(t, exitErr.Code)
	require.Equal(t, `Unknown command "bogus", use "portal help" to get usage info`, exitErr.Message)
}

func TestRun_MalformedConfigFile(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = `), 0600))
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"--config", path, "help"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_HelpCommand(t *testing.T) {
	isolateHome(t)

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errW, []string{"help"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "A version manager for Java")
	require.Contains(t, out.String(), "installable")
}
