// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package config loads the optional per-repository configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hpe/copycheck/internal/style"
)

// FileName is the optional configuration file looked up at the scan root.
const FileName = ".copycheck.yml"

// Config extends the built-in behavior for one repository.
type Config struct {
	// Extensions maps additional file extensions to a comment opening
	// token ("#", "//", "--", ";", "%", "<!--" or "/*"). Entries here
	// override the built-in table.
	Extensions map[string]string `yaml:"extensions"`

	// Ignore lists extra gitignore-style patterns, applied after the
	// patterns from the ignore files.
	Ignore []string `yaml:"ignore"`
}

// Load reads the config file at root. A missing file yields an empty
// config; a present but invalid file is an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Styles merges the configured extension overrides into the default style
// table.
func (c *Config) Styles() (style.Table, error) {
	t := style.Default()
	for ext, token := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return nil, fmt.Errorf("extension %q must start with a dot", ext)
		}
		st, ok := style.FromToken(token)
		if !ok {
			return nil, fmt.Errorf("unknown comment token %q for extension %s", token, ext)
		}
		t[ext] = st
	}
	return t, nil
}
