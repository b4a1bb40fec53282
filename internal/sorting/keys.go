package sorting

import (
	"cmp"
	"time"

	"golang.org/x/text/collate"

	"github.com/shav/taskgrid/internal/domain"
)

// keyFunc compares two nodes for one underlying sort key, with the
// requested direction already applied.
type keyFunc func(a, b *domain.Node) int

// defaultSortKeys maps a logical sort column to the ordered node property
// keys it expands into. The rowId expansion gives a deterministic tie-break
// even though the user specified a single logical key.
var defaultSortKeys = map[string][]string{
	domain.ColumnRowID:       {domain.PropIsAssignment, domain.PropID, domain.PropStartID},
	domain.ColumnSubject:     {domain.PropSubject},
	domain.ColumnSubjectText: {domain.PropSubject},
	domain.ColumnAssignee:    {domain.PropAssignee},
	domain.ColumnImportance:  {domain.PropImportance},
	domain.ColumnStatus:      {domain.PropStatus},
	domain.ColumnResult:      {domain.PropResult},
	domain.ColumnDeadline:    {domain.PropDeadline},
	domain.ColumnSent:        {domain.PropSent},
	domain.ColumnCompleted:   {domain.PropCompleted},
}

// keyCompare builds the comparison for one property key, or false for a
// property with no backing sort rule.
func (s *Sorter) keyCompare(prop string, cl *collate.Collator, desc bool) (keyFunc, bool) {
	switch prop {
	case domain.PropIsAssignment:
		// Assignment rows order before other workflow-step rows.
		return direct(func(a, b *domain.Node) int {
			return boolCompare(b.IsAssignment, a.IsAssignment)
		}, desc), true
	case domain.PropID:
		return direct(func(a, b *domain.Node) int {
			return cmp.Compare(a.ID, b.ID)
		}, desc), true
	case domain.PropStartID:
		return direct(func(a, b *domain.Node) int {
			return cmp.Compare(a.StartID, b.StartID)
		}, desc), true
	case domain.PropSubject:
		return s.textKey(cl, func(n *domain.Node) string { return n.Subject }, desc), true
	case domain.PropAssignee:
		return s.textKey(cl, func(n *domain.Node) string { return n.Assignee }, desc), true
	case domain.PropImportance:
		return s.labelKey(cl, prop, func(n *domain.Node) string { return string(n.Importance) }, desc), true
	case domain.PropStatus:
		return s.labelKey(cl, prop, func(n *domain.Node) string { return string(n.Status) }, desc), true
	case domain.PropResult:
		return s.labelKey(cl, prop, func(n *domain.Node) string { return string(n.Result) }, desc), true
	case domain.PropDeadline:
		return dateKey(func(n *domain.Node) *time.Time { return n.Deadline }, desc), true
	case domain.PropCompleted:
		return dateKey(func(n *domain.Node) *time.Time { return n.Completed }, desc), true
	case domain.PropSent:
		return sentKey(desc), true
	default:
		return nil, false
	}
}

// textKey orders by a text property using locale-insensitive collation.
func (s *Sorter) textKey(cl *collate.Collator, get func(*domain.Node) string, desc bool) keyFunc {
	return direct(func(a, b *domain.Node) int {
		return cl.CompareString(get(a), get(b))
	}, desc)
}

// labelKey orders an enum property by its localized display label. An
// unset code resolves to an empty label.
func (s *Sorter) labelKey(cl *collate.Collator, prop string, get func(*domain.Node) string, desc bool) keyFunc {
	return direct(func(a, b *domain.Node) int {
		return cl.CompareString(s.labels.Label(prop, get(a)), s.labels.Label(prop, get(b)))
	}, desc)
}

// dateKey orders by a nullable timestamp; unset values sort first ascending.
func dateKey(get func(*domain.Node) *time.Time, desc bool) keyFunc {
	return direct(func(a, b *domain.Node) int {
		return timeValue(get(a)).Compare(timeValue(get(b)))
	}, desc)
}

// sentKey orders by the effective sent instant (sent, else completed).
// Draft rows sort after everything else regardless of direction.
func sentKey(desc bool) keyFunc {
	value := func(a, b *domain.Node) int {
		return a.SentOrCompleted().Compare(b.SentOrCompleted())
	}
	return func(a, b *domain.Node) int {
		if a.IsDraft() != b.IsDraft() {
			return boolCompare(a.IsDraft(), b.IsDraft())
		}
		c := value(a, b)
		if desc {
			return -c
		}
		return c
	}
}

// direct applies the direction to a natural comparison.
func direct(f keyFunc, desc bool) keyFunc {
	if !desc {
		return f
	}
	return func(a, b *domain.Node) int {
		return -f(a, b)
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
