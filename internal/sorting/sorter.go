// Package sorting implements the stable multi-key ordering of workflow
// grid nodes. Each logical sort column expands into one or more underlying
// keys, and every key is applied as a successive tie-break against the
// already-established order.
package sorting

import (
	"log/slog"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shav/taskgrid/internal/domain"
)

// Sorter orders node sequences by user-specified sort criteria. The key
// expansion table is built once and read-only afterwards; concurrent
// requests may share a Sorter.
type Sorter struct {
	labels domain.LabelResolver
	logger *slog.Logger
	keys   map[string][]string
	tag    language.Tag
}

// NewSorter creates a sorter. Overrides replace the default key expansion
// for individual columns; an empty key list removes the column.
func NewSorter(labels domain.LabelResolver, tag language.Tag, overrides map[string][]string, logger *slog.Logger) *Sorter {
	keys := make(map[string][]string, len(defaultSortKeys)+len(overrides))
	for col, props := range defaultSortKeys {
		keys[col] = props
	}
	for col, props := range overrides {
		if len(props) == 0 {
			delete(keys, col)
			continue
		}
		keys[col] = props
	}
	return &Sorter{labels: labels, tag: tag, keys: keys, logger: logger}
}

// Sort returns the nodes ordered by the criteria, first criterion as the
// primary key. Unknown columns are skipped. Empty inputs, and criteria
// lists that expand to no usable key, return the input unchanged.
func (s *Sorter) Sort(nodes []domain.Node, criteria []domain.SortCriterion) []domain.Node {
	if len(nodes) == 0 || len(criteria) == 0 {
		return nodes
	}

	cl := collate.New(s.tag, collate.IgnoreCase)
	var chain []keyFunc
	for _, c := range criteria {
		props, ok := s.keys[c.Name]
		if !ok {
			// A caller may sort by a column with no backing property.
			s.debug("skip unmapped sort column", "column", c.Name)
			continue
		}
		for _, prop := range props {
			key, ok := s.keyCompare(prop, cl, c.Descending())
			if !ok {
				s.debug("skip unknown sort key", "column", c.Name, "property", prop)
				continue
			}
			chain = append(chain, key)
		}
	}
	if len(chain) == 0 {
		return nodes
	}

	out := slices.Clone(nodes)
	slices.SortStableFunc(out, func(a, b domain.Node) int {
		for _, key := range chain {
			if c := key(&a, &b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

// Columns returns the sortable column names in unspecified order.
func (s *Sorter) Columns() []string {
	out := make([]string, 0, len(s.keys))
	for col := range s.keys {
		out = append(out, col)
	}
	return out
}

func (s *Sorter) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
