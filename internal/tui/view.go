package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
	"github.com/joe/summarize-client/internal/tui/widgets"
)

// Empty state copy.
const (
	emptyTitle = "Ready to summarize"
	emptyBody  = "Enter text on the left, pick a method and press ctrl+s."
	loadingMsg = "Generating summary..."
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	styles := shared.NewStyles(m.sess.Theme())

	if m.sess.AnalyticsOpen() {
		return m.renderOverlay(styles)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		m.renderBody(styles),
		m.renderFooter(styles),
	)
}

func (m *Model) renderHeader(styles shared.Styles) string {
	title := styles.RenderTitle("Text Summarizer")
	server := styles.RenderDim("server: " + m.sess.ServerStatus() + " · theme: " + string(m.sess.Theme()))
	indicator := widgets.NewViewStateWidget(styles, m.sess.State)()

	return title + "  " + server + "\n" + indicator + "\n"
}

func (m *Model) renderBody(styles shared.Styles) string {
	left := m.renderInputColumn(styles)
	right := m.renderResultColumn(styles)

	if m.width < shared.MinTwoColumnWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	return shared.RenderTwoColumnLayout(left, right, m.width)
}

func (m *Model) renderInputColumn(styles shared.Styles) string {
	width := shared.LeftColumnWidth(m.width)

	editorTitle := "Input"
	if m.editing {
		editorTitle = "Input (editing)"
	}

	metrics := widgets.NewInputMetricsWidget(m.sess.Metrics)
	methods := widgets.NewMethodWidget(styles, func() widgets.MethodState {
		return widgets.MethodState{
			Methods: m.sess.Methods(),
			Active:  m.sess.ActiveMethod(),
			Ratio:   m.sess.Ratio(),
		}
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		shared.RenderWidgetBox(styles, editorTitle, m.editor.View()+"\n"+styles.RenderDim(metrics()), width),
		shared.RenderWidgetBox(styles, "Method", methods(), width),
	)
}

// renderResultColumn shows exactly the view of the current state.
func (m *Model) renderResultColumn(styles shared.Styles) string {
	width := shared.RightColumnWidth(m.width)

	var content string

	switch m.sess.State() {
	case session.StateEmpty:
		content = styles.RenderLabel(emptyTitle) + "\n" + styles.RenderDim(emptyBody)
	case session.StateLoading:
		content = m.spinner.View() + " " + loadingMsg
	case session.StateError:
		content = shared.RenderFailure(styles, m.sess.Failure())
	case session.StateResults:
		content = m.renderResults(styles, width-4)
	}

	return shared.RenderWidgetBox(styles, "Summary", content, width)
}

func (m *Model) renderResults(styles shared.Styles, width int) string {
	result, _ := m.sess.Result()
	get := func() session.RenderedResult { return result }

	sections := []string{
		widgets.NewSummaryStatsWidget(styles, get)(),
		m.summary.View(),
	}

	if keywords := widgets.NewKeywordsWidget(styles, width, get)(); keywords != "" {
		sections = append(sections, keywords)
	}

	if readability := widgets.NewReadabilityWidget(styles, get)(); readability != "" {
		sections = append(sections, readability)
	}

	if m.sess.CopyFeedback() {
		sections = append(sections, styles.RenderSuccess(shared.SuccessSymbol()+" Copied!"))
	}

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderFooter(styles shared.Styles) string {
	notice := m.sess.Notice()

	helpView := m.help.View(m.keys)
	if m.editing {
		helpView = m.help.View(editingHelp{keys: m.keys})
	}

	if notice == "" {
		return "\n" + helpView
	}

	return styles.RenderWarning(notice) + "\n" + helpView
}
