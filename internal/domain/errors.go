package domain

import (
	"errors"
	"fmt"
)

// Domain errors. These indicate configuration or programming bugs; the
// engines are deterministic and never fail transiently.
var (
	ErrNilCriterion     = errors.New("criterion must not be nil")
	ErrNilAccessor      = errors.New("property accessor must not be nil")
	ErrNilFilterList    = errors.New("filter list must not be nil")
	ErrInvalidPayload   = errors.New("invalid criterion payload")
	ErrUnknownOperation = errors.New("unknown filter operation")
)

// UnknownColumnError is returned when a criterion names a grid column with
// no configured mapping.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown grid column %q", e.Column)
}

// UnknownPropertyError is returned when a column mapping points at a node
// property the registry does not know.
type UnknownPropertyError struct {
	Column   string
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("column %q is mapped to unknown property %q", e.Column, e.Property)
}
