package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// NewBreakdownWidget creates a widget for the per-method usage rows of the analytics
// overlay. Rows are rendered in the order given.
func NewBreakdownWidget(styles shared.Styles, getRows func() []session.BreakdownRow) func() string {
	return func() string {
		rows := getRows()

		labelWidth := 0
		for _, row := range rows {
			labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			if row.Placeholder {
				lines = append(lines, styles.RenderDim(row.Label))
				continue
			}

			padding := strings.Repeat(" ", labelWidth-lipgloss.Width(row.Label))
			lines = append(lines, fmt.Sprintf("%s%s  %d", row.Label, padding, row.Count))
		}

		return strings.Join(lines, "\n")
	}
}
