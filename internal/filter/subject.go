package filter

import (
	"encoding/json"
	"fmt"

	"github.com/shav/taskgrid/internal/domain"
)

// subjectPayload is the raw payload of the subject grid column: a text
// fragment and an importance flag, either of which may be absent.
// Callers guarantee a well-formed structure; this is not re-validated.
type subjectPayload struct {
	Subject   string `json:"subject"`
	Important *bool  `json:"important"`
}

// NewSubjectImportance builds the composite filter behind the subject grid
// column. The single logical criterion expands into up to two sub-filters:
// a text filter on the subject when a text value is present, and an enum
// filter on importance when the important flag is set. With neither, the
// composite passes all nodes.
func NewSubjectImportance(parser domain.ValueParser, criterion *domain.Criterion) (NodeFilter, error) {
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}

	var payload subjectPayload
	if len(criterion.Value) > 0 {
		if err := json.Unmarshal(criterion.Value, &payload); err != nil {
			return nil, fmt.Errorf("decode %q payload: %w", criterion.Name, err)
		}
	}

	filters := []NodeFilter{}

	if payload.Subject != "" {
		sub, err := subjectCriterion(criterion, payload.Subject)
		if err != nil {
			return nil, err
		}
		text, err := NewText(func(n *domain.Node) string { return n.Subject }, parser, sub)
		if err != nil {
			return nil, err
		}
		filters = append(filters, text)
	}

	if payload.Important != nil && *payload.Important {
		sub, err := importanceCriterion(criterion)
		if err != nil {
			return nil, err
		}
		enum, err := NewEnum(func(n *domain.Node) string { return string(n.Importance) }, parser, sub)
		if err != nil {
			return nil, err
		}
		filters = append(filters, enum)
	}

	return NewComposite(filters)
}

// subjectCriterion derives the text sub-criterion, keeping the parent's
// operation and exclude flag.
func subjectCriterion(parent *domain.Criterion, subject string) (*domain.Criterion, error) {
	value, err := json.Marshal(subject)
	if err != nil {
		return nil, fmt.Errorf("encode subject sub-criterion: %w", err)
	}
	op := parent.Operation
	if op == "" {
		op = domain.OpContains
	}
	return &domain.Criterion{
		Name:      domain.ColumnSubjectText,
		Operation: op,
		Value:     value,
		Exclude:   parent.Exclude,
	}, nil
}

// importanceCriterion derives the enum sub-criterion for the importance
// property: except for exclude filters, one-of High otherwise.
func importanceCriterion(parent *domain.Criterion) (*domain.Criterion, error) {
	value, err := json.Marshal([]string{string(domain.ImportanceHigh)})
	if err != nil {
		return nil, fmt.Errorf("encode importance sub-criterion: %w", err)
	}
	op := domain.OpOneOf
	if parent.IsExclude() {
		op = domain.OpExcept
	}
	return &domain.Criterion{
		Name:      domain.ColumnImportance,
		Operation: op,
		Value:     value,
	}, nil
}
