package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of the client. Single-letter bindings only apply while the
// editor is not focused.
type KeyMap struct {
	Submit     key.Binding
	Edit       key.Binding
	Leave      key.Binding
	Method     key.Binding
	RatioUp    key.Binding
	RatioDown  key.Binding
	Copy       key.Binding
	Download   key.Binding
	Clear      key.Binding
	Analytics  key.Binding
	Reset      key.Binding
	Theme      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:     key.NewBinding(key.WithKeys("ctrl+s", "s"), key.WithHelp("s/ctrl+s", "summarize")),
		Edit:       key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "edit text")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		Method:     key.NewBinding(key.WithKeys("m", "tab"), key.WithHelp("m", "method")),
		RatioUp:    key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+/-", "length")),
		RatioDown:  key.NewBinding(key.WithKeys("-", "left")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Download:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Analytics:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analytics")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset stats")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k", "pgup")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Submit, k.Method, k.RatioUp, k.Analytics, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Leave, k.Submit, k.Clear},
		{k.Method, k.RatioUp, k.Theme},
		{k.Copy, k.Download, k.ScrollDown},
		{k.Analytics, k.Reset, k.Help, k.Quit},
	}
}

// editingHelp is shown while the editor has focus.
type editingHelp struct {
	keys KeyMap
}

func (e editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "summarize")),
		e.keys.Leave,
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (e editingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
