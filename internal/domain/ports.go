package domain

import "time"

// ValueParser turns a criterion's raw payload into the typed value sequence
// the filters evaluate. Parsing happens exactly once per criterion, before
// any node is tested.
type ValueParser interface {
	// Parse interprets the criterion payload against the declared property
	// type. The result may contain sentinels, scalars, lists and (for dates)
	// range or relative-date descriptors.
	Parse(propertyType PropertyType, criterion *Criterion) ([]ParsedValue, error)
}

// DateConversion resolves date criterion values into concrete comparison
// inputs: one instant or one half-open range, plus the tenant and client
// UTC offsets in effect.
type DateConversion interface {
	// ToExactDateTime resolves an exact-date operation into one instant.
	ToExactDateTime(op Operation, values []ParsedValue) (instant time.Time, tenantOffset, clientOffset time.Duration, err error)

	// ToDateRange resolves a range-style or relative operation into a
	// half-open range.
	ToDateRange(op Operation, values []ParsedValue) (r DateRange, tenantOffset, clientOffset time.Duration, err error)
}

// LabelResolver resolves the localized display label for an enumeration
// code. An empty code resolves to an empty label.
type LabelResolver interface {
	Label(property string, code string) string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NodeSource loads the node collection the grid operates on.
type NodeSource interface {
	// Load reads all nodes. The returned slice is owned by the caller.
	Load() ([]Node, error)
}
