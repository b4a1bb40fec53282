package filter

import (
	"fmt"

	"github.com/shav/taskgrid/internal/domain"
)

// Factory maps a criterion's logical column name to the concrete filter
// implementation and the node property it operates on. The factory is
// read-only after construction and safe for concurrent use.
type Factory struct {
	parser  domain.ValueParser
	dates   domain.DateConversion
	mapping domain.ColumnMapping
}

// NewFactory creates a filter factory.
func NewFactory(parser domain.ValueParser, dates domain.DateConversion, mapping domain.ColumnMapping) *Factory {
	return &Factory{parser: parser, dates: dates, mapping: mapping}
}

// Build creates the filter for one criterion. An unknown column name is a
// configuration error naming the offending criterion.
func (f *Factory) Build(criterion *domain.Criterion) (NodeFilter, error) {
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}

	// The subject column expands into its own composite.
	if criterion.Name == domain.ColumnSubject {
		return NewSubjectImportance(f.parser, criterion)
	}

	prop, err := f.mapping.Property(criterion.Name)
	if err != nil {
		return nil, err
	}

	switch prop.Type {
	case domain.PropertyNavigation:
		return NewNavigation(prop.ID, f.parser, criterion)
	case domain.PropertyEnum:
		return NewEnum(prop.Enum, f.parser, criterion)
	case domain.PropertyText:
		return NewText(prop.Text, f.parser, criterion)
	case domain.PropertyDate:
		return NewDate(f.mapping, f.dates, f.parser, criterion)
	default:
		return nil, fmt.Errorf("column %q: unsupported property type %q", criterion.Name, prop.Type)
	}
}

// BuildAll creates one composite filter from a criteria list.
func (f *Factory) BuildAll(criteria []domain.Criterion) (*Composite, error) {
	filters := make([]NodeFilter, 0, len(criteria))
	for i := range criteria {
		nf, err := f.Build(&criteria[i])
		if err != nil {
			return nil, err
		}
		filters = append(filters, nf)
	}
	return NewComposite(filters)
}
