// Package cli provides the command-line interface for taskgrid.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shav/taskgrid/internal/app"
)

// NewRootCommand creates the root command for taskgrid.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskgrid",
		Short: "Workflow task grid filtering and sorting",
		Long: `taskgrid filters and orders a collection of workflow task and
assignment rows by column criteria and multi-column sort specs, the way a
task-family grid displays them.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(newQueryCommand(c))
	root.AddCommand(newColumnsCommand(c))

	return root
}
