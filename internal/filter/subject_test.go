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

func subjectNodes() []domain.Node {
	return []domain.Node{
		{ID: 1, Subject: "Q1 budget", Importance: domain.ImportanceHigh},
		{ID: 2, Subject: "Q1 budget", Importance: domain.ImportanceNormal},
		{ID: 3, Subject: "Q2 budget", Importance: domain.ImportanceHigh},
		{ID: 4, Subject: "Headcount", Importance: domain.ImportanceLow},
	}
}

func TestNewSubjectImportance_SubjectAndFlag(t *testing.T) {
	criterion := &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{"subject": "Q1", "important": true}`),
	}

	f, err := NewSubjectImportance(parsing.New(), criterion)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, testutil.NodeIDs(f.Apply(subjectNodes())))
}

// The composite must behave exactly like independently AND-ing a text
// filter on the subject and a one-of-High enum filter on importance.
func TestNewSubjectImportance_EquivalentToManualConjunction(t *testing.T) {
	nodes := subjectNodes()

	composite, err := NewSubjectImportance(parsing.New(), &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{"subject": "Q1", "important": true}`),
	})
	require.NoError(t, err)

	text, err := NewText(subjectAccessor, parsing.New(), &domain.Criterion{
		Name:      domain.ColumnSubjectText,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`"Q1"`),
	})
	require.NoError(t, err)
	enum, err := NewEnum(func(n *domain.Node) string { return string(n.Importance) }, parsing.New(), &domain.Criterion{
		Name:      domain.ColumnImportance,
		Operation: domain.OpOneOf,
		Value:     json.RawMessage(`["High"]`),
	})
	require.NoError(t, err)
	manual, err := NewComposite([]NodeFilter{text, enum})
	require.NoError(t, err)

	assert.Equal(t, manual.Apply(nodes), composite.Apply(nodes))
}

func TestNewSubjectImportance_SubjectOnly(t *testing.T) {
	criterion := &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{"subject": "budget"}`),
	}

	f, err := NewSubjectImportance(parsing.New(), criterion)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, testutil.NodeIDs(f.Apply(subjectNodes())))
}

func TestNewSubjectImportance_ImportantExclude(t *testing.T) {
	// Exclude turns the importance sub-criterion into an except filter.
	criterion := &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{"important": true}`),
		Exclude:   true,
	}

	f, err := NewSubjectImportance(parsing.New(), criterion)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 4}, testutil.NodeIDs(f.Apply(subjectNodes())))
}

func TestNewSubjectImportance_EmptyPayloadPassesAll(t *testing.T) {
	nodes := subjectNodes()

	f, err := NewSubjectImportance(parsing.New(), &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	assert.Equal(t, nodes, f.Apply(nodes))
}

func TestNewSubjectImportance_ImportantFalseDegeneratesToAll(t *testing.T) {
	nodes := subjectNodes()

	f, err := NewSubjectImportance(parsing.New(), &domain.Criterion{
		Name:      domain.ColumnSubject,
		Operation: domain.OpContains,
		Value:     json.RawMessage(`{"important": false}`),
	})
	require.NoError(t, err)

	assert.Equal(t, nodes, f.Apply(nodes))
}
