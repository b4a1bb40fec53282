// Package domain contains core business entities and interfaces.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Node represents one row of the workflow-state tree: a task or an
// assignment belonging to a task family. Nodes are read-only inputs to the
// filtering and sorting engines and are never mutated by them.
// Fields are ordered to minimize memory padding.
type Node struct {
	Deadline     *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`   // Due timestamp (UTC, nil = unset)
	Sent         *time.Time `json:"sent,omitempty" yaml:"sent,omitempty"`           // When the row was sent (UTC, nil = draft)
	Completed    *time.Time `json:"completed,omitempty" yaml:"completed,omitempty"` // When the row was completed (UTC, nil = open)
	Assignee     string     `json:"assignee,omitempty" yaml:"assignee,omitempty"`   // Assignee display name
	Subject      string     `json:"subject" yaml:"subject"`                         // Free-text subject
	Importance   Importance `json:"importance,omitempty" yaml:"importance,omitempty"`
	Status       Status     `json:"status,omitempty" yaml:"status,omitempty"`
	Result       Result     `json:"result,omitempty" yaml:"result,omitempty"`
	AssigneeID   uuid.UUID  `json:"assigneeID,omitempty" yaml:"assigneeID,omitempty"` // uuid.Nil = unset
	ID           int64      `json:"id" yaml:"id"`                                     // Numeric row identifier
	StartID      int64      `json:"startID" yaml:"startID"`                           // Groups rows of the same started process
	IsAssignment bool       `json:"isAssignment" yaml:"isAssignment"`                 // Assignment row vs other workflow-step row
}

// HasAssignee returns true if the node has a concrete assignee.
func (n *Node) HasAssignee() bool {
	return n.AssigneeID != uuid.Nil
}

// IsDraft returns true if the node was neither sent nor completed.
func (n *Node) IsDraft() bool {
	return n.Sent == nil && n.Completed == nil
}

// SentOrCompleted returns the effective "sent" instant used for ordering:
// the sent time if set, otherwise the completion time, otherwise the
// maximum representable time so drafts sort after everything else.
func (n *Node) SentOrCompleted() time.Time {
	if n.Sent != nil {
		return *n.Sent
	}
	if n.Completed != nil {
		return *n.Completed
	}
	return MaxTime
}

// MaxTime is the largest timestamp the grid works with. Draft rows take it
// as their effective sent time.
var MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
