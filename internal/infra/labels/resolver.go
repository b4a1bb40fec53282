// Package labels resolves localized display labels for the grid's
// enumeration codes. Enum sort order follows these labels, not the raw
// codes.
package labels

import (
	"golang.org/x/text/language"

	"github.com/shav/taskgrid/internal/domain"
)

// supported lists the locales with label tables, first entry is the
// fallback.
var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// labelTables maps locale -> property -> code -> display label.
// Read-only after init, safe for concurrent reads.
var labelTables = map[language.Tag]map[string]map[string]string{
	language.English: {
		domain.PropImportance: {
			string(domain.ImportanceLow):    "Low",
			string(domain.ImportanceNormal): "Normal",
			string(domain.ImportanceHigh):   "High",
		},
		domain.PropStatus: {
			string(domain.StatusInProcess): "In process",
			string(domain.StatusSuspended): "Suspended",
			string(domain.StatusAborted):   "Aborted",
			string(domain.StatusCompleted): "Completed",
		},
		domain.PropResult: {
			string(domain.ResultApproved): "Approved",
			string(domain.ResultDeclined): "Declined",
			string(domain.ResultInformed): "Informed",
		},
	},
	language.Russian: {
		domain.PropImportance: {
			string(domain.ImportanceLow):    "Низкая",
			string(domain.ImportanceNormal): "Обычная",
			string(domain.ImportanceHigh):   "Высокая",
		},
		domain.PropStatus: {
			string(domain.StatusInProcess): "В работе",
			string(domain.StatusSuspended): "Приостановлена",
			string(domain.StatusAborted):   "Прекращена",
			string(domain.StatusCompleted): "Выполнена",
		},
		domain.PropResult: {
			string(domain.ResultApproved): "Согласовано",
			string(domain.ResultDeclined): "Отклонено",
			string(domain.ResultInformed): "Принято к сведению",
		},
	},
}

// Resolver implements domain.LabelResolver for one matched locale.
type Resolver struct {
	table map[string]map[string]string
	tag   language.Tag
}

// Ensure Resolver implements domain.LabelResolver.
var _ domain.LabelResolver = (*Resolver)(nil)

// New creates a resolver for the locale best matching the given BCP 47 tag.
// Unknown locales fall back to English.
func New(locale string) *Resolver {
	_, index := language.MatchStrings(matcher, locale)
	base := supported[index]
	return &Resolver{tag: base, table: labelTables[base]}
}

// Tag returns the locale the resolver settled on.
func (r *Resolver) Tag() language.Tag {
	return r.tag
}

// Label returns the display label for an enumeration code. An empty code
// yields an empty label; an unknown code falls back to the code itself.
func (r *Resolver) Label(property string, code string) string {
	if code == "" {
		return ""
	}
	if codes, ok := r.table[property]; ok {
		if label, ok := codes[code]; ok {
			return label
		}
	}
	return code
}
