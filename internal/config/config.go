package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/portal-vm/portal/internal/ctxlog"
	"github.com/portal-vm/portal/internal/indicator"
)

// DefaultFileName is the config file looked up in the user's home
// directory when no --config flag is given.
const DefaultFileName = ".portal.hcl"

// Config holds the settings read from the optional HCL config file. Every
// field has a working default; the file only overrides.
type Config struct {
	APIURL          string
	LogLevel        string
	LogFormat       string
	SpinnerInterval time.Duration
}

// fileRoot is the gohcl decode target for the config file.
type fileRoot struct {
	APIURL            string `hcl:"api_url,optional"`
	LogLevel          string `hcl:"log_level,optional"`
	LogFormat         string `hcl:"log_format,optional"`
	SpinnerIntervalMS int    `hcl:"spinner_interval_ms,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		APIURL:          "",
		LogLevel:        "info",
		LogFormat:       "text",
		SpinnerInterval: indicator.DefaultInterval,
	}
}

// Load reads the config file at path. An empty path selects
// ~/.portal.hcl; a missing file at either location yields the defaults. A
// file that exists but fails to parse is an error.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Debug("No home directory, skipping config file.", "error", err)
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		logger.Debug("Config file not found, using defaults.", "path", path)
		return Default(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	cfg := Default()
	if root.APIURL != "" {
		cfg.APIURL = root.APIURL
	}
	if root.LogLevel != "" {
		cfg.LogLevel = root.LogLevel
	}
	if root.LogFormat != "" {
		cfg.LogFormat = root.LogFormat
	}
	if root.SpinnerIntervalMS > 0 {
		cfg.SpinnerInterval = time.Duration(root.SpinnerIntervalMS) * time.Millisecond
	}

	logger.Debug("Config file loaded.", "path", path)
	return cfg, nil
}

// evalContext exposes the process environment to the config file as
// env.<NAME>, so values like api_url can be interpolated.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
