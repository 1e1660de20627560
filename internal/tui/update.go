package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

const (
	headerHeight  = 3
	footerHeight  = 3
	editorMinRows = 4
	summaryChrome = 14
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case spinner.TickMsg:
		if m.sess.State() != session.StateLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case session.Event:
		return m, m.dispatch(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

// dispatch hands ev to the session and schedules whatever it asks for.
func (m *Model) dispatch(ev session.Event) tea.Cmd {
	wasLoading := m.sess.State() == session.StateLoading

	cmds := m.toTeaCmds(m.sess.Dispatch(ev))

	if !wasLoading && m.sess.State() == session.StateLoading {
		cmds = append(cmds, m.spinner.Tick)
	}

	m.syncFromSession()

	return tea.Batch(cmds...)
}

// syncFromSession copies session state the bubbles components display on their own.
func (m *Model) syncFromSession() {
	if m.editor.Value() != m.sess.Input() {
		m.editor.SetValue(m.sess.Input())
	}

	result, ok := m.sess.Result()
	if ok && result.Summary != m.shownSummary {
		m.shownSummary = result.Summary
		m.summary.SetContent(shared.WrapText(result.Summary, m.summary.Width))
		m.summary.GotoTop()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == shared.KeyCtrlC {
		return m.quit()
	}

	if m.sess.AnalyticsOpen() {
		return m, m.handleOverlayKey(msg)
	}

	if msg.String() == "ctrl+s" {
		return m, m.dispatch(session.SubmitRequested{})
	}

	if m.editing {
		return m.handleEditorKey(msg)
	}

	return m.handleCommandKey(msg)
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Leave), key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Analytics):
		return m.dispatch(session.AnalyticsClosed{})
	case key.Matches(msg, m.keys.Reset):
		return m.dispatch(session.AnalyticsResetRequested{})
	default:
		return nil
	}
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		m.editing = false
		m.editor.Blur()

		return m, nil
	}

	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if after := m.editor.Value(); after != before {
		return m, tea.Batch(cmd, m.dispatch(session.TextChanged{Text: after}))
	}

	return m, cmd
}

//nolint:cyclop // One case per binding
func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		return m, m.editor.Focus()
	case key.Matches(msg, m.keys.Submit):
		return m, m.dispatch(session.SubmitRequested{})
	case key.Matches(msg, m.keys.Method):
		return m, m.dispatch(session.MethodCycled{})
	case key.Matches(msg, m.keys.RatioUp):
		return m, m.dispatch(session.RatioChanged{Ratio: m.sess.Ratio() + RatioStep})
	case key.Matches(msg, m.keys.RatioDown):
		return m, m.dispatch(session.RatioChanged{Ratio: m.sess.Ratio() - RatioStep})
	case key.Matches(msg, m.keys.Copy):
		return m, m.dispatch(session.CopyRequested{})
	case key.Matches(msg, m.keys.Download):
		return m, m.dispatch(session.DownloadRequested{})
	case key.Matches(msg, m.keys.Clear):
		return m, m.dispatch(session.ClearRequested{})
	case key.Matches(msg, m.keys.Analytics):
		return m, m.dispatch(session.AnalyticsRequested{})
	case key.Matches(msg, m.keys.Theme):
		return m, m.dispatch(session.ThemeToggled{})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.sess.AnalyticsOpen() {
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	return m.dispatch(session.AnalyticsClicked{Background: !m.overlayBounds().contains(msg.X, msg.Y)})
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true

	return m, tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	editorWidth := shared.LeftColumnWidth(width) - 4
	editorHeight := max(editorMinRows, height-headerHeight-footerHeight-12)
	if width < shared.MinTwoColumnWidth {
		editorHeight = max(editorMinRows, (height-headerHeight-footerHeight)/3)
	}

	m.editor.SetWidth(max(10, editorWidth))
	m.editor.SetHeight(editorHeight)

	m.summary.Width = max(10, shared.RightColumnWidth(width)-4)
	m.summary.Height = max(3, height-headerHeight-footerHeight-summaryChrome)

	if m.shownSummary != "" {
		m.summary.SetContent(shared.WrapText(m.shownSummary, m.summary.Width))
	}
}
