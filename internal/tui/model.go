// Package tui is the terminal front end of the summarize client.
//
// The Model owns a session.Session and is its only caller: key presses, mouse clicks and
// command results all arrive as tea messages on the bubbletea event loop and are turned
// into session events there.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// RatioStep is how much one key press changes the summary ratio.
const RatioStep = 5

// Model is the bubbletea model of the client.
type Model struct {
	sess    *session.Session
	backend Backend
	keys    KeyMap

	editor  textarea.Model
	spinner spinner.Model
	summary viewport.Model
	help    help.Model

	ctx context.Context

	width    int
	height   int
	editing  bool
	quitting bool

	shownSummary string
}

// NewModel wires a session to a backend. Backend calls run under ctx; the caller cancels
// it once the program has exited. The editor starts focused.
func NewModel(ctx context.Context, sess *session.Session, backend Backend) *Model {
	editor := textarea.New()
	editor.Placeholder = "Paste or type the text to summarize…"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetValue(sess.Input())
	editor.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		sess:    sess,
		backend: backend,
		keys:    DefaultKeyMap(),
		editor:  editor,
		spinner: spin,
		summary: viewport.New(0, 0),
		help:    help.New(),
		ctx:     ctx,
		editing: true,
	}

	m.resize(shared.DefaultWidth, shared.DefaultHeight)

	return m
}

// Session returns the session the model drives (for testing)
func (m *Model) Session() *session.Session {
	return m.sess
}

// Editing reports whether the editor has focus (for testing)
func (m *Model) Editing() bool {
	return m.editing
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{textarea.Blink}, m.toTeaCmds(m.sess.Start())...)

	return tea.Batch(cmds...)
}
