// Package usecase contains the application use cases built on the filter
// and sort engines.
package usecase

import (
	"fmt"
	"log/slog"

	"github.com/shav/taskgrid/internal/domain"
	"github.com/shav/taskgrid/internal/filter"
	"github.com/shav/taskgrid/internal/sorting"
)

// QueryNodesInput contains the parameters for one grid request.
type QueryNodesInput struct {
	Nodes    []domain.Node
	Criteria []domain.Criterion
	Sort     []domain.SortCriterion
}

// QueryNodes is the use case for filtering and ordering the workflow grid.
// A single instance may serve concurrent requests; per-request filter state
// is allocated inside Execute.
type QueryNodes struct {
	factory *filter.Factory
	sorter  *sorting.Sorter
	logger  *slog.Logger
}

// NewQueryNodes creates a new QueryNodes use case.
func NewQueryNodes(factory *filter.Factory, sorter *sorting.Sorter, logger *slog.Logger) *QueryNodes {
	return &QueryNodes{factory: factory, sorter: sorter, logger: logger}
}

// Execute filters the nodes by the criteria, then orders the result by the
// sort criteria. Empty criteria and sort lists leave the input unchanged.
func (uc *QueryNodes) Execute(in QueryNodesInput) ([]domain.Node, error) {
	nodes, err := uc.Filter(in.Nodes, in.Criteria)
	if err != nil {
		return nil, err
	}
	return uc.Sort(nodes, in.Sort), nil
}

// Filter narrows the node sequence by the given criteria. With zero
// criteria the input is returned unchanged.
func (uc *QueryNodes) Filter(nodes []domain.Node, criteria []domain.Criterion) ([]domain.Node, error) {
	if len(criteria) == 0 {
		return nodes, nil
	}
	composite, err := uc.factory.BuildAll(criteria)
	if err != nil {
		return nil, fmt.Errorf("build filters: %w", err)
	}
	out := composite.Apply(nodes)
	if uc.logger != nil {
		uc.logger.Debug("filtered nodes", "criteria", len(criteria), "in", len(nodes), "out", len(out))
	}
	return out, nil
}

// Sort orders the node sequence by the given sort criteria. With zero
// criteria the input is returned unchanged.
func (uc *QueryNodes) Sort(nodes []domain.Node, criteria []domain.SortCriterion) []domain.Node {
	return uc.sorter.Sort(nodes, criteria)
}
