package domain

import "encoding/json"

// Operation identifies how a criterion's values are matched against a
// node property. Operations are type-specific: value lists use oneOf/except,
// text uses contains, dates use equals/range or one of the relative codes.
type Operation string

const (
	OpOneOf    Operation = "oneOf"    // property equals one of the candidate values
	OpExcept   Operation = "except"   // shorthand for oneOf with the exclude flag set
	OpContains Operation = "contains" // substring containment (text)
	OpMatchAll Operation = "matchAll" // no-op, every node passes

	OpEquals    Operation = "equals"    // exact date match
	OpNotEquals Operation = "notEquals" // exact date mismatch
	OpRange     Operation = "range"     // explicit half-open date range

	OpToday     Operation = "today"
	OpYesterday Operation = "yesterday"
	OpThisWeek  Operation = "thisWeek"
	OpLastWeek  Operation = "lastWeek"
	OpThisMonth Operation = "thisMonth"
	OpLastDays  Operation = "lastDays" // value is the day count N
)

// IsRelativeDate returns true for operations resolved against "now".
func (o Operation) IsRelativeDate() bool {
	switch o {
	case OpToday, OpYesterday, OpThisWeek, OpLastWeek, OpThisMonth, OpLastDays:
		return true
	default:
		return false
	}
}

// IsExactDate returns true for operations matching one concrete date.
func (o Operation) IsExactDate() bool {
	return o == OpEquals || o == OpNotEquals
}

// Criterion is a single column's filter request. The raw value payload is
// kept undecoded until the value parser interprets it against the declared
// property type. Criteria are immutable once built.
// Fields are ordered to minimize memory padding.
type Criterion struct {
	Value     json.RawMessage `json:"value,omitempty"` // Raw payload: scalar, list, object or absent
	Name      string          `json:"name"`            // Logical grid column name
	Operation Operation       `json:"operation"`
	Exclude   bool            `json:"exclude,omitempty"` // Keep nodes that do NOT match
}

// IsExclude reports whether the criterion inverts its match result. The
// except operation is an alias for the exclude flag.
func (c *Criterion) IsExclude() bool {
	return c.Exclude || c.Operation == OpExcept
}

// SortDirection indicates ascending or descending order.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortCriterion is one entry of a multi-column sort request. The first
// criterion in a request is the primary key; every following one is applied
// as a successive tie-break.
type SortCriterion struct {
	Name      string        `json:"name"` // Logical grid column name
	Direction SortDirection `json:"direction,omitempty"`
}

// Descending reports whether the criterion orders in reverse.
func (s SortCriterion) Descending() bool {
	return s.Direction == SortDescending
}
