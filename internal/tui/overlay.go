package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
	"github.com/joe/summarize-client/internal/tui/widgets"
)

const overlayMinWidth = 44

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// renderOverlayPanel renders the analytics panel without the backdrop.
func (m *Model) renderOverlayPanel(styles shared.Styles) string {
	var builder strings.Builder

	builder.WriteString(styles.RenderTitle("Usage Analytics"))
	builder.WriteString("\n\n")

	view, ok := m.sess.Analytics()
	if !ok {
		builder.WriteString(styles.RenderDim("Loading statistics…"))
	} else {
		rows := [][2]string{
			{"Total summaries", view.TotalSummaries},
			{"Texts processed", view.TotalTexts},
			{"Words generated", view.TotalGenerated},
			{"Avg compression", view.AverageCompression},
		}
		for _, row := range rows {
			builder.WriteString(styles.RenderLabel(row[0] + ": "))
			builder.WriteString(row[1])
			builder.WriteString("\n")
		}

		builder.WriteString("\n")
		builder.WriteString(styles.RenderLabel("Methods used"))
		builder.WriteString("\n")
		builder.WriteString(widgets.NewBreakdownWidget(styles, func() []session.BreakdownRow { return view.Breakdown })())
	}

	builder.WriteString("\n\n")
	builder.WriteString(styles.RenderDim("esc close · r reset · click outside to dismiss"))

	return styles.Overlay().Width(overlayMinWidth).Render(builder.String())
}

func (m *Model) renderOverlay(styles shared.Styles) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderOverlayPanel(styles))
}

// overlayBounds is where renderOverlay puts the panel.
func (m *Model) overlayBounds() rect {
	panel := m.renderOverlayPanel(shared.NewStyles(m.sess.Theme()))
	w, h := lipgloss.Width(panel), lipgloss.Height(panel)

	return rect{x: centerOffset(m.width, w), y: centerOffset(m.height, h), w: w, h: h}
}

// centerOffset matches how lipgloss.Place splits the leftover space: the rounded share
// goes after the panel, the remainder before it.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}

	return gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
}
