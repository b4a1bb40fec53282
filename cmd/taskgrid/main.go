// Package main is the entry point for the taskgrid CLI.
package main

import (
	"fmt"
	"os"

	"github.com/shav/taskgrid/internal/app"
	"github.com/shav/taskgrid/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// configEnv names the environment variable pointing at the config file.
const configEnv = "TASKGRID_CONFIG"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New(os.Getenv(configEnv))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
