package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/shav/taskgrid/internal/domain"
	"github.com/shav/taskgrid/internal/filter"
	"github.com/shav/taskgrid/internal/infra/dates"
	"github.com/shav/taskgrid/internal/infra/parsing"
	"github.com/shav/taskgrid/internal/sorting"
	"github.com/shav/taskgrid/internal/testutil"
)

func newQueryNodes(t *testing.T) *QueryNodes {
	t.Helper()
	clock := &testutil.MockClock{NowTime: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	converter, err := dates.New(clock, "UTC", "UTC")
	require.NoError(t, err)

	factory := filter.NewFactory(parsing.New(), converter, domain.NewColumnMapping(nil))
	sorter := sorting.NewSorter(testutil.CodeLabels{}, language.English, nil, nil)
	return NewQueryNodes(factory, sorter, nil)
}

func testNodes() []domain.Node {
	return []domain.Node{
		{ID: 3, StartID: 30, Subject: "Budget review", Importance: domain.ImportanceHigh, Status: domain.StatusInProcess, Sent: testutil.Time(2024, time.March, 12, 9, 0)},
		{ID: 1, StartID: 10, Subject: "Contract draft", Importance: domain.ImportanceNormal, Status: domain.StatusInProcess, Sent: testutil.Time(2024, time.March, 10, 9, 0)},
		{ID: 2, StartID: 20, Subject: "Budget appendix", Importance: domain.ImportanceHigh, Status: domain.StatusCompleted, Sent: testutil.Time(2024, time.March, 11, 9, 0)},
	}
}

func TestExecute_FiltersThenSorts(t *testing.T) {
	uc := newQueryNodes(t)

	out, err := uc.Execute(QueryNodesInput{
		Nodes: testNodes(),
		Criteria: []domain.Criterion{
			{Name: domain.ColumnImportance, Operation: domain.OpOneOf, Value: json.RawMessage(`["High"]`)},
		},
		Sort: []domain.SortCriterion{
			{Name: domain.ColumnSubjectText, Direction: domain.SortAscending},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Budget appendix", "Budget review"}, testutil.Subjects(out))
}

func TestExecute_EmptyCriteriaAndSortLeaveInputUnchanged(t *testing.T) {
	uc := newQueryNodes(t)
	nodes := testNodes()

	out, err := uc.Execute(QueryNodesInput{Nodes: nodes})
	require.NoError(t, err)
	assert.Equal(t, testutil.NodeIDs(nodes), testutil.NodeIDs(out))
}

func TestExecute_BadCriterionFails(t *testing.T) {
	uc := newQueryNodes(t)

	_, err := uc.Execute(QueryNodesInput{
		Nodes: testNodes(),
		Criteria: []domain.Criterion{
			{Name: "budget", Operation: domain.OpOneOf, Value: json.RawMessage(`["x"]`)},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")
}

func TestFilter_CombinesCriteriaConjunctively(t *testing.T) {
	uc := newQueryNodes(t)

	out, err := uc.Filter(testNodes(), []domain.Criterion{
		{Name: domain.ColumnImportance, Operation: domain.OpOneOf, Value: json.RawMessage(`["High"]`)},
		{Name: domain.ColumnStatus, Operation: domain.OpOneOf, Value: json.RawMessage(`["InProcess"]`)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, testutil.NodeIDs(out))
}

func TestSort_OrdersBySentDerivation(t *testing.T) {
	uc := newQueryNodes(t)

	out := uc.Sort(testNodes(), []domain.SortCriterion{
		{Name: domain.ColumnSent, Direction: domain.SortAscending},
	})
	assert.Equal(t, []int64{1, 2, 3}, testutil.NodeIDs(out))
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newQueryNodes(t)
	in := QueryNodesInput{
		Nodes: testNodes(),
		Criteria: []domain.Criterion{
			{Name: domain.ColumnImportance, Operation: domain.OpOneOf, Value: json.RawMessage(`["High"]`)},
		},
		Sort: []domain.SortCriterion{
			{Name: domain.ColumnRowID, Direction: domain.SortAscending},
		},
	}

	first, err := uc.Execute(in)
	require.NoError(t, err)
	second, err := uc.Execute(QueryNodesInput{Nodes: first, Criteria: in.Criteria, Sort: in.Sort})
	require.NoError(t, err)
	assert.Equal(t, testutil.NodeIDs(first), testutil.NodeIDs(second))
}
