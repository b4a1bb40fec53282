package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType tags the semantic kind of a node property. It selects both
// the comparison rule a filter applies and the payload shape the value
// parser expects.
type PropertyType string

const (
	PropertyNavigation PropertyType = "navigation" // identifier equality
	PropertyEnum       PropertyType = "enum"       // code equality
	PropertyText       PropertyType = "text"       // substring containment
	PropertyDate       PropertyType = "date"       // timezone-aware date match
)

// Logical grid column names.
const (
	ColumnRowID       = "rowId"
	ColumnSubject     = "subject"     // subject text + importance flag composite
	ColumnSubjectText = "subjectText" // plain text filter on the subject
	ColumnAssignee    = "assignee"
	ColumnImportance  = "importance"
	ColumnStatus      = "status"
	ColumnResult      = "result"
	ColumnDeadline    = "deadline"
	ColumnSent        = "sent"
	ColumnCompleted   = "completed"
)

// Node property names.
const (
	PropID           = "id"
	PropStartID      = "startID"
	PropIsAssignment = "isAssignment"
	PropAssigneeID   = "assigneeID"
	PropAssignee     = "assignee"
	PropSubject      = "subject"
	PropImportance   = "importance"
	PropStatus       = "status"
	PropResult       = "result"
	PropDeadline     = "deadline"
	PropSent         = "sent"
	PropCompleted    = "completed"
)

// Property describes one node property: its name, semantic type, and the
// accessor matching that type. Exactly one accessor is set per property.
// Fields are ordered to minimize memory padding.
type Property struct {
	Text func(*Node) string     // text properties
	Enum func(*Node) string     // enum properties (raw code)
	ID   func(*Node) uuid.UUID  // navigation properties
	Date func(*Node) *time.Time // date properties
	Name string
	Type PropertyType
}

// properties is the static registry of filterable node properties.
// Read-only after init, safe for concurrent reads.
var properties = map[string]Property{
	PropAssigneeID: {Name: PropAssigneeID, Type: PropertyNavigation, ID: func(n *Node) uuid.UUID { return n.AssigneeID }},
	PropAssignee:   {Name: PropAssignee, Type: PropertyText, Text: func(n *Node) string { return n.Assignee }},
	PropSubject:    {Name: PropSubject, Type: PropertyText, Text: func(n *Node) string { return n.Subject }},
	PropImportance: {Name: PropImportance, Type: PropertyEnum, Enum: func(n *Node) string { return string(n.Importance) }},
	PropStatus:     {Name: PropStatus, Type: PropertyEnum, Enum: func(n *Node) string { return string(n.Status) }},
	PropResult:     {Name: PropResult, Type: PropertyEnum, Enum: func(n *Node) string { return string(n.Result) }},
	PropDeadline:   {Name: PropDeadline, Type: PropertyDate, Date: func(n *Node) *time.Time { return n.Deadline }},
	PropSent:       {Name: PropSent, Type: PropertyDate, Date: func(n *Node) *time.Time { return n.Sent }},
	PropCompleted:  {Name: PropCompleted, Type: PropertyDate, Date: func(n *Node) *time.Time { return n.Completed }},
}

// PropertyByName looks up a filterable property by name.
func PropertyByName(name string) (Property, bool) {
	p, ok := properties[name]
	return p, ok
}

// defaultColumnProperties maps logical grid columns to the node property a
// single-property filter operates on. Composite columns (ColumnSubject) and
// sort-only columns (ColumnRowID) are resolved by the filter factory and the
// sorter instead and do not appear here.
var defaultColumnProperties = map[string]string{
	ColumnSubjectText: PropSubject,
	ColumnAssignee:    PropAssigneeID,
	ColumnImportance:  PropImportance,
	ColumnStatus:      PropStatus,
	ColumnResult:      PropResult,
	ColumnDeadline:    PropDeadline,
	ColumnSent:        PropSent,
	ColumnCompleted:   PropCompleted,
}

// ColumnMapping is the read-only table from logical grid-column name to node
// property, built once from configuration before any request executes.
type ColumnMapping struct {
	columns map[string]string
}

// NewColumnMapping builds a mapping from the defaults plus per-column
// overrides. Overriding with an empty property name removes the column.
func NewColumnMapping(overrides map[string]string) ColumnMapping {
	columns := make(map[string]string, len(defaultColumnProperties)+len(overrides))
	for col, prop := range defaultColumnProperties {
		columns[col] = prop
	}
	for col, prop := range overrides {
		if prop == "" {
			delete(columns, col)
			continue
		}
		columns[col] = prop
	}
	return ColumnMapping{columns: columns}
}

// Property resolves the node property backing a grid column. An unmapped
// column or a mapping to an unknown property is a configuration error.
func (m ColumnMapping) Property(column string) (Property, error) {
	name, ok := m.columns[column]
	if !ok {
		return Property{}, &UnknownColumnError{Column: column}
	}
	prop, ok := PropertyByName(name)
	if !ok {
		return Property{}, &UnknownPropertyError{Column: column, Property: name}
	}
	return prop, nil
}

// Columns returns the mapped column names in unspecified order.
func (m ColumnMapping) Columns() []string {
	out := make([]string, 0, len(m.columns))
	for col := range m.columns {
		out = append(out, col)
	}
	return out
}
