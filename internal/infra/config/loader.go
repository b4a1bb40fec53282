// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shav/taskgrid/internal/domain"
)

// Loader loads the grid configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given config file path. An empty path
// means no file; defaults are used.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configuration: defaults overlaid with the file contents.
// A missing file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", l.path, err)
			}
		}
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.Tenant == "" {
		cfg.Tenant = "UTC"
	}
	if cfg.Client == "" {
		cfg.Client = cfg.Tenant
	}
	return cfg, nil
}
