package domain

// Importance represents the declared importance of a task or assignment.
type Importance string

const (
	ImportanceLow    Importance = "Low"
	ImportanceNormal Importance = "Normal"
	ImportanceHigh   Importance = "High"
)

// AllImportances returns all valid importance codes.
func AllImportances() []Importance {
	return []Importance{ImportanceLow, ImportanceNormal, ImportanceHigh}
}

// IsValid returns true if the importance is a known code.
func (i Importance) IsValid() bool {
	switch i {
	case ImportanceLow, ImportanceNormal, ImportanceHigh:
		return true
	default:
		return false
	}
}

// Status represents the lifecycle state of a workflow row.
type Status string

const (
	StatusInProcess Status = "InProcess"
	StatusSuspended Status = "Suspended"
	StatusAborted   Status = "Aborted"
	StatusCompleted Status = "Completed"
)

// AllStatuses returns all valid status codes.
func AllStatuses() []Status {
	return []Status{StatusInProcess, StatusSuspended, StatusAborted, StatusCompleted}
}

// IsValid returns true if the status is a known code.
func (s Status) IsValid() bool {
	switch s {
	case StatusInProcess, StatusSuspended, StatusAborted, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusAborted || s == StatusCompleted
}

// Result represents the outcome recorded on a completed assignment.
type Result string

const (
	ResultApproved Result = "Approved"
	ResultDeclined Result = "Declined"
	ResultInformed Result = "Informed"
)

// AllResults returns all valid result codes.
func AllResults() []Result {
	return []Result{ResultApproved, ResultDeclined, ResultInformed}
}

// IsValid returns true if the result is a known code.
func (r Result) IsValid() bool {
	switch r {
	case ResultApproved, ResultDeclined, ResultInformed:
		return true
	default:
		return false
	}
}
