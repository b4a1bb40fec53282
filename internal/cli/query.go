package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shav/taskgrid/internal/app"
	"github.com/shav/taskgrid/internal/domain"
	"github.com/shav/taskgrid/internal/infra/nodestore"
	"github.com/shav/taskgrid/internal/usecase"
)

// criteriaFile is the criteria request file structure.
type criteriaFile struct {
	Criteria []domain.Criterion `json:"criteria"`
}

func newQueryCommand(c *app.Container) *cobra.Command {
	var nodesPath string
	var criteriaPath string
	var sortSpecs []string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter and sort a node file, print the resulting grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodes, err := nodestore.New(nodesPath).Load()
			if err != nil {
				return err
			}

			criteria, err := loadCriteria(criteriaPath)
			if err != nil {
				return err
			}

			sorts, err := parseSortSpecs(sortSpecs)
			if err != nil {
				return err
			}

			out, err := c.NewQueryNodes().Execute(usecase.QueryNodesInput{
				Nodes:    nodes,
				Criteria: criteria,
				Sort:     sorts,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderGrid(out, c.Labels))
			return nil
		},
	}

	cmd.Flags().StringVar(&nodesPath, "nodes", "", "Node file (JSON or YAML)")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "Criteria request file (JSON)")
	cmd.Flags().StringArrayVar(&sortSpecs, "sort", nil, "Sort spec column[:asc|desc], repeatable")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}

// loadCriteria reads the criteria request file. An empty path means no
// filtering.
func loadCriteria(path string) ([]domain.Criterion, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria %s: %w", path, err)
	}
	var file criteriaFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode criteria %s: %w", path, err)
	}
	return file.Criteria, nil
}

// parseSortSpecs turns column[:asc|desc] specs into sort criteria.
func parseSortSpecs(specs []string) ([]domain.SortCriterion, error) {
	out := make([]domain.SortCriterion, 0, len(specs))
	for _, spec := range specs {
		name, dir, found := strings.Cut(spec, ":")
		criterion := domain.SortCriterion{Name: name, Direction: domain.SortAscending}
		if found {
			switch dir {
			case "asc":
			case "desc":
				criterion.Direction = domain.SortDescending
			default:
				return nil, fmt.Errorf("invalid sort direction %q in %q", dir, spec)
			}
		}
		out = append(out, criterion)
	}
	return out, nil
}
