package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/shav/taskgrid/internal/domain"
)

func TestNew_MatchesLocale(t *testing.T) {
	assert.Equal(t, language.English, New("en").Tag())
	assert.Equal(t, language.English, New("en-US").Tag())
	assert.Equal(t, language.Russian, New("ru").Tag())
	assert.Equal(t, language.Russian, New("ru-RU").Tag())
}

func TestNew_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, language.English, New("tlh").Tag())
	assert.Equal(t, language.English, New("").Tag())
}

func TestLabel_ResolvesCodes(t *testing.T) {
	en := New("en")
	assert.Equal(t, "In process", en.Label(domain.PropStatus, string(domain.StatusInProcess)))
	assert.Equal(t, "High", en.Label(domain.PropImportance, string(domain.ImportanceHigh)))

	ru := New("ru")
	assert.Equal(t, "Выполнена", ru.Label(domain.PropStatus, string(domain.StatusCompleted)))
	assert.Equal(t, "Согласовано", ru.Label(domain.PropResult, string(domain.ResultApproved)))
}

func TestLabel_EmptyCodeYieldsEmptyLabel(t *testing.T) {
	assert.Equal(t, "", New("en").Label(domain.PropStatus, ""))
}

func TestLabel_UnknownCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, "Archived", New("en").Label(domain.PropStatus, "Archived"))
}
