package filter

import (
	"fmt"
	"time"

	"github.com/shav/taskgrid/internal/domain"
)

// dateFilter matches a nullable timestamp property against one resolved
// comparison input: an exact date or a half-open range, evaluated after
// shifting the stored UTC instant by the tenant and client offsets. With no
// concrete predicate and no empty-match condition it is a no-op.
// Fields are ordered to minimize memory padding.
type dateFilter struct {
	accessor   func(*domain.Node) *time.Time
	pred       func(time.Time) bool // nil when no concrete value resolved
	matchEmpty bool
	exclude    bool
}

// Apply filters the node sequence. The input slice is not mutated.
func (f *dateFilter) Apply(nodes []domain.Node) []domain.Node {
	if f.pred == nil && !f.matchEmpty {
		return nodes
	}
	out := make([]domain.Node, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if f.keep(f.accessor(n)) {
			out = append(out, *n)
		}
	}
	return out
}

// keep decides inclusion of one property value. The predicate already
// carries the equality/inequality (or within/outside) direction, so the
// exclude flag only steers empty-value handling here.
func (f *dateFilter) keep(v *time.Time) bool {
	if f.exclude {
		if v == nil {
			return !f.matchEmpty
		}
		return f.pred == nil || f.pred(*v)
	}
	if v == nil {
		return f.matchEmpty
	}
	return f.pred != nil && f.pred(*v)
}

// NewDate builds a filter on one of the node's timestamp properties.
// The criterion name must resolve to a date property; failing to resolve is
// a configuration error, not a user error.
func NewDate(mapping domain.ColumnMapping, conv domain.DateConversion, parser domain.ValueParser, criterion *domain.Criterion) (NodeFilter, error) {
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}
	prop, err := mapping.Property(criterion.Name)
	if err != nil {
		return nil, err
	}
	if prop.Type != domain.PropertyDate || prop.Date == nil {
		return nil, fmt.Errorf("column %q: property %q is not a date property", criterion.Name, prop.Name)
	}

	values, err := parser.Parse(domain.PropertyDate, criterion)
	if err != nil {
		return nil, fmt.Errorf("parse %q criterion: %w", criterion.Name, err)
	}

	exclude := criterion.IsExclude() || criterion.Operation == domain.OpNotEquals
	f := &dateFilter{
		accessor:   prop.Date,
		matchEmpty: emptyMatch(values, exclude),
		exclude:    exclude,
	}

	pred, err := buildPredicate(conv, criterion, values, exclude)
	if err != nil {
		return nil, err
	}
	f.pred = pred
	return f, nil
}

// buildPredicate resolves the criterion into one concrete predicate, or nil
// when the parsed values carry no exact value, range or relative descriptor.
func buildPredicate(conv domain.DateConversion, criterion *domain.Criterion, values []domain.ParsedValue, exclude bool) (func(time.Time) bool, error) {
	if !hasConcreteDate(values) && !criterion.Operation.IsRelativeDate() {
		return nil, nil
	}

	if criterion.Operation.IsExactDate() {
		instant, tenantOff, clientOff, err := conv.ToExactDateTime(criterion.Operation, values)
		if err != nil {
			return nil, fmt.Errorf("resolve exact date for %q: %w", criterion.Name, err)
		}
		shift := tenantOff + clientOff
		return func(t time.Time) bool {
			eq := sameDate(t.Add(shift), instant)
			return eq != exclude
		}, nil
	}

	r, tenantOff, clientOff, err := conv.ToDateRange(criterion.Operation, values)
	if err != nil {
		return nil, fmt.Errorf("resolve date range for %q: %w", criterion.Name, err)
	}
	shift := tenantOff + clientOff
	return func(t time.Time) bool {
		return r.Contains(t.Add(shift)) != exclude
	}, nil
}

func hasConcreteDate(values []domain.ParsedValue) bool {
	for _, v := range values {
		switch v.Kind {
		case domain.KindTime, domain.KindDateRange, domain.KindRelative:
			return true
		}
	}
	return false
}

// sameDate compares the calendar date of two instants, both taken as
// already-shifted wall-clock values.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
