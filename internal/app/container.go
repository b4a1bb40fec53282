// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/shav/taskgrid/internal/domain"
	"github.com/shav/taskgrid/internal/filter"
	"github.com/shav/taskgrid/internal/infra/config"
	"github.com/shav/taskgrid/internal/infra/dates"
	"github.com/shav/taskgrid/internal/infra/labels"
	"github.com/shav/taskgrid/internal/infra/logging"
	"github.com/shav/taskgrid/internal/infra/parsing"
	"github.com/shav/taskgrid/internal/sorting"
	"github.com/shav/taskgrid/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use
// cases. Everything in it is read-only after New returns.
type Container struct {
	// Ports (interfaces bound to implementations)
	Parser domain.ValueParser
	Dates  domain.DateConversion
	Labels domain.LabelResolver
	Clock  domain.Clock

	// Pointer fields
	Logger *slog.Logger
	Config *domain.Config

	// Read-only engine configuration
	Mapping domain.ColumnMapping
	Locale  language.Tag

	closeLog func() error
}

// New creates a Container from the given config file path. An empty path
// uses the default configuration.
func New(configPath string) (*Container, error) {
	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Container from an already-loaded configuration.
func NewWithConfig(cfg *domain.Config) (*Container, error) {
	clock := domain.RealClock{}

	level := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New(os.Stderr, level)
	closeLog := func() error { return nil }
	if cfg.Log.Path != "" {
		fileLogger, closeFn, err := logging.NewFile(cfg.Log.Path, level)
		if err != nil {
			return nil, err
		}
		logger = fileLogger
		closeLog = closeFn
	}

	converter, err := dates.New(clock, cfg.Tenant, cfg.Client)
	if err != nil {
		return nil, err
	}

	resolver := labels.New(cfg.Locale)
	return &Container{
		Parser:   parsing.New(),
		Dates:    converter,
		Labels:   resolver,
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
		Mapping:  domain.NewColumnMapping(cfg.Columns),
		Locale:   resolver.Tag(),
		closeLog: closeLog,
	}, nil
}

// NewQueryNodes creates the grid query use case.
func (c *Container) NewQueryNodes() *usecase.QueryNodes {
	factory := filter.NewFactory(c.Parser, c.Dates, c.Mapping)
	sorter := sorting.NewSorter(c.Labels, c.Locale, c.Config.SortKeys, c.Logger)
	return usecase.NewQueryNodes(factory, sorter, c.Logger)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	return c.closeLog()
}
