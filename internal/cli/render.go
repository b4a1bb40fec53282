package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shav/taskgrid/internal/domain"
)

// Grid styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A29BFE"))
	draftStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	rowStyle    = lipgloss.NewStyle()
)

var gridColumns = []string{"ID", "KIND", "SUBJECT", "ASSIGNEE", "IMPORTANCE", "STATUS", "RESULT", "DEADLINE", "SENT", "COMPLETED"}

// renderGrid renders an ordered node sequence as a text grid, resolving
// enum codes to their display labels.
func renderGrid(nodes []domain.Node, labels domain.LabelResolver) string {
	rows := make([][]string, 0, len(nodes)+1)
	rows = append(rows, gridColumns)
	for i := range nodes {
		n := &nodes[i]
		kind := "task"
		if n.IsAssignment {
			kind = "assignment"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", n.ID),
			kind,
			n.Subject,
			n.Assignee,
			labels.Label(domain.PropImportance, string(n.Importance)),
			labels.Label(domain.PropStatus, string(n.Status)),
			labels.Label(domain.PropResult, string(n.Result)),
			formatDate(n.Deadline),
			formatDate(n.Sent),
			formatDate(n.Completed),
		})
	}

	widths := columnWidths(rows)
	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = pad(cell, widths[j])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		switch {
		case i == 0:
			line = headerStyle.Render(line)
		case nodes[i-1].IsDraft():
			line = draftStyle.Render(line)
		default:
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}
