package domain

import (
	"time"

	"github.com/google/uuid"
)

// ValueKind tags one entry of a parsed criterion payload.
type ValueKind int

const (
	// Sentinel comparands. These are markers for presence/absence of a
	// property value and are never compared by equality to real values.
	KindNull    ValueKind = iota // property is empty
	KindNotNull                  // property is not empty

	// Concrete values.
	KindString
	KindStringList
	KindID
	KindIDList
	KindTime
	KindDateRange
	KindRelative
)

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains returns true if t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// IsZero returns true if neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// ParsedValue is one entry of the typed sequence a criterion payload parses
// into: a sentinel, a scalar, a list, an instant, an explicit date range or
// a relative-date day count. Only the fields of the tagged kind are set.
// Fields are ordered to minimize memory padding.
type ParsedValue struct {
	Time  time.Time
	Range DateRange
	Str   string
	Strs  []string
	IDs   []uuid.UUID
	ID    uuid.UUID
	Days  int // day count for relative-date payloads
	Kind  ValueKind
}

// HasNull returns true if the parsed sequence contains the Null sentinel.
func HasNull(values []ParsedValue) bool {
	return hasKind(values, KindNull)
}

// HasNotNull returns true if the parsed sequence contains the NotNull sentinel.
func HasNotNull(values []ParsedValue) bool {
	return hasKind(values, KindNotNull)
}

func hasKind(values []ParsedValue, kind ValueKind) bool {
	for _, v := range values {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// StringValues flattens scalar and list string entries into one sequence.
// Sentinels and entries of other kinds are skipped.
func StringValues(values []ParsedValue) []string {
	var out []string
	for _, v := range values {
		switch v.Kind {
		case KindString:
			out = append(out, v.Str)
		case KindStringList:
			out = append(out, v.Strs...)
		}
	}
	return out
}

// IDValues flattens scalar and list identifier entries into one sequence.
func IDValues(values []ParsedValue) []uuid.UUID {
	var out []uuid.UUID
	for _, v := range values {
		switch v.Kind {
		case KindID:
			out = append(out, v.ID)
		case KindIDList:
			out = append(out, v.IDs...)
		}
	}
	return out
}
