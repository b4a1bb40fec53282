package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shav/taskgrid/internal/app"
	"github.com/shav/taskgrid/internal/domain"
)

func newColumnsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the grid columns available for filtering and sorting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			names := c.Mapping.Columns()
			sort.Strings(names)
			for _, name := range names {
				prop, err := c.Mapping.Property(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-14s %-12s -> %s\n", name, prop.Type, prop.Name)
			}

			// Columns resolved outside the single-property mapping.
			fmt.Fprintf(out, "%-14s %-12s -> %s\n", domain.ColumnSubject, "composite", "subject + importance")
			fmt.Fprintf(out, "%-14s %-12s -> %s\n", domain.ColumnRowID, "sort-only", "isAssignment, id, startID")
			return nil
		},
	}
}
