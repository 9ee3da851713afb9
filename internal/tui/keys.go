package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeyMap holds bindings active on every screen
type globalKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

// loadingKeyMap defines key bindings while the fetch is running
type loadingKeyMap struct {
	globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k loadingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k loadingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// errorKeyMap defines key bindings for the fetch failure screen
type errorKeyMap struct {
	Retry key.Binding
	globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k errorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k errorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Retry, k.Quit}}
}

// browseKeyMap defines key bindings for the collection grid
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Create key.Binding
	globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Create, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Create},
		{k.Help, k.Quit},
	}
}

// composeKeyMap defines key bindings for the three-column compose view
type composeKeyMap struct {
	NextColumn key.Binding
	PrevColumn key.Binding
	Up         key.Binding
	Down       key.Binding
	MoveRight  key.Binding
	MoveLeft   key.Binding
	Cancel     key.Binding
	Update     key.Binding
	globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k composeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextColumn, k.MoveLeft, k.MoveRight, k.Cancel, k.Update, k.Help}
}

// FullHelp returns keybindings for the expanded help view
func (k composeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextColumn, k.PrevColumn, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight},
		{k.Cancel, k.Update},
		{k.Help, k.Quit},
	}
}

func newGlobalKeys() globalKeyMap {
	return globalKeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newErrorKeys(g globalKeyMap) errorKeyMap {
	return errorKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "try again"),
		),
		globalKeyMap: g,
	}
}

func newBrowseKeys(g globalKeyMap) browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select"),
		),
		Create: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "create a new list"),
		),
		globalKeyMap: g,
	}
}

func newComposeKeys(g globalKeyMap) composeKeyMap {
	return composeKeyMap{
		NextColumn: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next list"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "cancel"),
		),
		Update: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u", "update"),
		),
		globalKeyMap: g,
	}
}
