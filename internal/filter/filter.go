// Package filter implements the per-column node filters of the workflow
// grid and the factory that builds them from filter criteria.
//
// Filters are stateless per-request objects: a criterion's payload is
// parsed once at construction time, and the resulting predicate is applied
// to the in-memory node sequence. The input slice is never mutated.
package filter

import (
	"github.com/shav/taskgrid/internal/domain"
)

// NodeFilter narrows a node sequence to the rows passing one criterion.
type NodeFilter interface {
	Apply(nodes []domain.Node) []domain.Node
}

// Composite applies an ordered list of sub-filters as a conjunction: each
// sub-filter narrows the current sequence before the next runs. With zero
// sub-filters it is the identity.
type Composite struct {
	filters []NodeFilter
}

// NewComposite creates a composite filter. A nil filter list is an
// invalid-argument failure; an empty one is a valid identity filter.
func NewComposite(filters []NodeFilter) (*Composite, error) {
	if filters == nil {
		return nil, domain.ErrNilFilterList
	}
	return &Composite{filters: filters}, nil
}

// Apply runs every sub-filter in order over the node sequence.
func (c *Composite) Apply(nodes []domain.Node) []domain.Node {
	for _, f := range c.filters {
		nodes = f.Apply(nodes)
	}
	return nodes
}

// identity passes every node through unchanged.
type identity struct{}

func (identity) Apply(nodes []domain.Node) []domain.Node {
	return nodes
}
