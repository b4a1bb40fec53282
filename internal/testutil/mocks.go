// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/shav/taskgrid/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// CodeLabels is a test double for domain.LabelResolver that echoes raw
// codes, keeping label-dependent assertions independent of locale tables.
type CodeLabels struct{}

// Label returns the code itself; empty codes yield empty labels.
func (CodeLabels) Label(_ string, code string) string {
	return code
}

// Time returns a pointer to a UTC timestamp, for node fixtures.
func Time(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &t
}

// ID returns a deterministic UUID derived from n, for node fixtures.
func ID(n byte) uuid.UUID {
	var b [16]byte
	b[15] = n
	b[6] = 0x40 // version 4
	b[8] = 0x80 // RFC 4122 variant
	return uuid.UUID(b)
}

// Subjects extracts the subject of every node, in order.
func Subjects(nodes []domain.Node) []string {
	out := make([]string, 0, len(nodes))
	for i := range nodes {
		out = append(out, nodes[i].Subject)
	}
	return out
}

// NodeIDs extracts the numeric identifier of every node, in order.
func NodeIDs(nodes []domain.Node) []int64 {
	out := make([]int64, 0, len(nodes))
	for i := range nodes {
		out = append(out, nodes[i].ID)
	}
	return out
}
