package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of normal mode
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Select     key.Binding
	Clear      key.Binding
	Search     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	SetFilter  key.Binding
	Reset      key.Binding
	Open       key.Binding
	Stats      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/Home", "go to top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/End", "go to bottom")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select message")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next status filter")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous status filter")),
		SetFilter:  key.NewBinding(key.WithKeys("0", "1", "2", "3"), key.WithHelp("0-3", "all/new/read/replied")),
		Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset search and filter")),
		Open:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "open message in pager")),
		Stats:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle statistics")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextFilter, k.Select, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Clear, k.Open},
		{k.Search, k.NextFilter, k.PrevFilter, k.SetFilter, k.Reset},
		{k.Stats, k.Help, k.Quit},
	}
}
