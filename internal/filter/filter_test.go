package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shav/taskgrid/internal/domain"
	"github.com/shav/taskgrid/internal/infra/parsing"
	"github.com/shav/taskgrid/internal/testutil"
)

func TestNewComposite_NilListIsError(t *testing.T) {
	_, err := NewComposite(nil)
	assert.ErrorIs(t, err, domain.ErrNilFilterList)
}

func TestComposite_EmptyIsIdentity(t *testing.T) {
	nodes := []domain.Node{{ID: 1}, {ID: 2}}

	c, err := NewComposite([]NodeFilter{})
	require.NoError(t, err)

	assert.Equal(t, nodes, c.Apply(nodes))
}

func TestComposite_AppliesConjunction(t *testing.T) {
	nodes := []domain.Node{
		{ID: 1, Subject: "Quarterly report", Status: domain.StatusCompleted},
		{ID: 2, Subject: "Quarterly report", Status: domain.StatusInProcess},
		{ID: 3, Subject: "Invoice", Status: domain.StatusCompleted},
	}

	text, err := NewText(subjectAccessor, parsing.New(), &domain.Criterion{
		Name:      domain.ColumnSubjectText,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`"report"`),
	})
	require.NoError(t, err)
	enum, err := NewEnum(statusAccessor, parsing.New(), &domain.Criterion{
		Name:      domain.ColumnStatus,
		Operation: domain.OpOneOf,
		Value:     json.RawMessage(`["Completed"]`),
	})
	require.NoError(t, err)

	c, err := NewComposite([]NodeFilter{text, enum})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, testutil.NodeIDs(c.Apply(nodes)))
}
