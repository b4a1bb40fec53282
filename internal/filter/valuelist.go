package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/shav/taskgrid/internal/domain"
)

// valueList implements the shared matching rule for properties filtered
// against a static candidate set: a node matches if its property value is
// empty while an empty-match condition is active, or if it satisfies the
// type-specific candidate test. The exclude flag inverts the final result.
// Fields are ordered to minimize memory padding.
type valueList struct {
	matches    func(n *domain.Node) bool
	isEmpty    func(n *domain.Node) bool
	matchEmpty bool
	exclude    bool
}

// Apply filters the node sequence. The input slice is not mutated.
func (f *valueList) Apply(nodes []domain.Node) []domain.Node {
	out := make([]domain.Node, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		match := (f.isEmpty(n) && f.matchEmpty) || f.matches(n)
		if match != f.exclude {
			out = append(out, *n)
		}
	}
	return out
}

// emptyMatch reports whether the parsed values request empty-property
// matching: the Null sentinel, or NotNull while the criterion excludes.
// NotNull without the exclude flag is not a realistic request; it is
// ignored and the concrete candidates still apply.
func emptyMatch(values []domain.ParsedValue, exclude bool) bool {
	return domain.HasNull(values) || (domain.HasNotNull(values) && exclude)
}

// NewNavigation builds a filter matching an identifier property against a
// parsed candidate identifier set.
func NewNavigation(accessor func(*domain.Node) uuid.UUID, parser domain.ValueParser, criterion *domain.Criterion) (NodeFilter, error) {
	if accessor == nil {
		return nil, domain.ErrNilAccessor
	}
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}
	if criterion.Operation == domain.OpMatchAll {
		return identity{}, nil
	}
	values, err := parser.Parse(domain.PropertyNavigation, criterion)
	if err != nil {
		return nil, fmt.Errorf("parse %q criterion: %w", criterion.Name, err)
	}
	candidates := domain.IDValues(values)
	return &valueList{
		matchEmpty: emptyMatch(values, criterion.IsExclude()),
		exclude:    criterion.IsExclude(),
		isEmpty:    func(n *domain.Node) bool { return accessor(n) == uuid.Nil },
		matches: func(n *domain.Node) bool {
			id := accessor(n)
			return id != uuid.Nil && slices.Contains(candidates, id)
		},
	}, nil
}

// NewEnum builds a filter matching an enumeration code property against a
// parsed candidate code set. A null or blank code counts as empty.
func NewEnum(accessor func(*domain.Node) string, parser domain.ValueParser, criterion *domain.Criterion) (NodeFilter, error) {
	if accessor == nil {
		return nil, domain.ErrNilAccessor
	}
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}
	if criterion.Operation == domain.OpMatchAll {
		return identity{}, nil
	}
	values, err := parser.Parse(domain.PropertyEnum, criterion)
	if err != nil {
		return nil, fmt.Errorf("parse %q criterion: %w", criterion.Name, err)
	}
	candidates := domain.StringValues(values)
	return &valueList{
		matchEmpty: emptyMatch(values, criterion.IsExclude()),
		exclude:    criterion.IsExclude(),
		isEmpty:    func(n *domain.Node) bool { return strings.TrimSpace(accessor(n)) == "" },
		matches:    func(n *domain.Node) bool { return slices.Contains(candidates, accessor(n)) },
	}, nil
}

// NewText builds a filter matching a text property by locale-insensitive
// substring containment. A null or blank value counts as empty.
func NewText(accessor func(*domain.Node) string, parser domain.ValueParser, criterion *domain.Criterion) (NodeFilter, error) {
	if accessor == nil {
		return nil, domain.ErrNilAccessor
	}
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}
	if criterion.Operation == domain.OpMatchAll {
		return identity{}, nil
	}
	values, err := parser.Parse(domain.PropertyText, criterion)
	if err != nil {
		return nil, fmt.Errorf("parse %q criterion: %w", criterion.Name, err)
	}
	folder := cases.Fold()
	raw := domain.StringValues(values)
	candidates := make([]string, 0, len(raw))
	for _, v := range raw {
		candidates = append(candidates, folder.String(v))
	}
	return &valueList{
		matchEmpty: emptyMatch(values, criterion.IsExclude()),
		exclude:    criterion.IsExclude(),
		isEmpty:    func(n *domain.Node) bool { return strings.TrimSpace(accessor(n)) == "" },
		matches: func(n *domain.Node) bool {
			folded := folder.String(accessor(n))
			for _, candidate := range candidates {
				if candidate != "" && strings.Contains(folded, candidate) {
					return true
				}
			}
			return false
		},
	}, nil
}
