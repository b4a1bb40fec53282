// Package parsing implements the criterion value parser: it turns a raw
// JSON criterion payload into the typed value sequence the filters operate
// on, according to the declared property type.
package parsing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shav/taskgrid/internal/domain"
)

// Sentinel markers accepted inside payloads alongside ordinary values.
const (
	nullMarker    = "@null"
	notNullMarker = "@notnull"
)

// Date payload layouts, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Parser decodes criterion payloads. It is stateless and safe for
// concurrent use.
type Parser struct{}

// New creates a parser.
func New() *Parser {
	return &Parser{}
}

// Parse interprets the criterion's raw payload against the property type.
// An absent payload parses to an empty sequence.
func (p *Parser) Parse(propertyType domain.PropertyType, criterion *domain.Criterion) ([]domain.ParsedValue, error) {
	if criterion == nil {
		return nil, domain.ErrNilCriterion
	}
	if len(criterion.Value) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(criterion.Value, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return p.values(propertyType, raw)
}

func (p *Parser) values(propertyType domain.PropertyType, raw any) ([]domain.ParsedValue, error) {
	switch v := raw.(type) {
	case nil:
		return []domain.ParsedValue{{Kind: domain.KindNull}}, nil
	case string:
		pv, err := p.scalar(propertyType, v)
		if err != nil {
			return nil, err
		}
		return []domain.ParsedValue{pv}, nil
	case float64:
		if propertyType == domain.PropertyDate {
			return []domain.ParsedValue{{Kind: domain.KindRelative, Days: int(v)}}, nil
		}
		return nil, fmt.Errorf("%w: numeric value for %s property", domain.ErrInvalidPayload, propertyType)
	case []any:
		return p.list(propertyType, v)
	case map[string]any:
		if propertyType == domain.PropertyDate {
			pv, err := p.dateRange(v)
			if err != nil {
				return nil, err
			}
			return []domain.ParsedValue{pv}, nil
		}
		return nil, fmt.Errorf("%w: object value for %s property", domain.ErrInvalidPayload, propertyType)
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", domain.ErrInvalidPayload, raw)
	}
}

// list flattens an array payload: sentinels become standalone entries,
// concrete scalars collapse into one list-typed entry.
func (p *Parser) list(propertyType domain.PropertyType, raw []any) ([]domain.ParsedValue, error) {
	var out []domain.ParsedValue
	var strs []string
	var ids []uuid.UUID

	for _, item := range raw {
		switch v := item.(type) {
		case nil:
			out = append(out, domain.ParsedValue{Kind: domain.KindNull})
		case string:
			if marker, ok := sentinel(v); ok {
				out = append(out, marker)
				continue
			}
			pv, err := p.scalar(propertyType, v)
			if err != nil {
				return nil, err
			}
			switch pv.Kind {
			case domain.KindID:
				ids = append(ids, pv.ID)
			case domain.KindString:
				strs = append(strs, pv.Str)
			default:
				out = append(out, pv)
			}
		default:
			return nil, fmt.Errorf("%w: unsupported list entry %T", domain.ErrInvalidPayload, item)
		}
	}

	if len(ids) > 0 {
		out = append(out, domain.ParsedValue{Kind: domain.KindIDList, IDs: ids})
	}
	if len(strs) > 0 {
		out = append(out, domain.ParsedValue{Kind: domain.KindStringList, Strs: strs})
	}
	return out, nil
}

func (p *Parser) scalar(propertyType domain.PropertyType, s string) (domain.ParsedValue, error) {
	if marker, ok := sentinel(s); ok {
		return marker, nil
	}
	switch propertyType {
	case domain.PropertyNavigation:
		id, err := uuid.Parse(s)
		if err != nil {
			return domain.ParsedValue{}, fmt.Errorf("%w: %q is not an identifier", domain.ErrInvalidPayload, s)
		}
		return domain.ParsedValue{Kind: domain.KindID, ID: id}, nil
	case domain.PropertyDate:
		t, err := parseDate(s)
		if err != nil {
			return domain.ParsedValue{}, err
		}
		return domain.ParsedValue{Kind: domain.KindTime, Time: t}, nil
	default:
		return domain.ParsedValue{Kind: domain.KindString, Str: s}, nil
	}
}

// dateRange decodes a {"from": ..., "to": ...} payload into a half-open
// range. A date-only upper bound is widened to the end of that day; a
// missing bound falls back to the zero time or the maximum date.
func (p *Parser) dateRange(raw map[string]any) (domain.ParsedValue, error) {
	r := domain.DateRange{To: domain.MaxTime}

	if from, ok := raw["from"].(string); ok {
		t, err := parseDate(from)
		if err != nil {
			return domain.ParsedValue{}, err
		}
		r.From = t
	}
	if to, ok := raw["to"].(string); ok {
		t, err := parseDate(to)
		if err != nil {
			return domain.ParsedValue{}, err
		}
		if dateOnly(to) {
			t = t.Add(24 * time.Hour)
		}
		r.To = t
	}
	return domain.ParsedValue{Kind: domain.KindDateRange, Range: r}, nil
}

func sentinel(s string) (domain.ParsedValue, bool) {
	switch s {
	case nullMarker:
		return domain.ParsedValue{Kind: domain.KindNull}, true
	case notNullMarker:
		return domain.ParsedValue{Kind: domain.KindNotNull}, true
	default:
		return domain.ParsedValue{}, false
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", domain.ErrInvalidPayload, s)
}

func dateOnly(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
