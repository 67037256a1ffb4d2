package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the screenplay editor.
// Bindings under "normal mode" only fire outside insert mode.
type KeyMap struct {
	// Available in both modes.
	Save      key.Binding
	Copy      key.Binding
	ForceQuit key.Binding

	// Insert mode.
	Escape key.Binding

	// Normal mode.
	Left       key.Binding
	Down       key.Binding
	Up         key.Binding
	Right      key.Binding
	LineStart  key.Binding
	LineEnd    key.Binding
	Insert     key.Binding
	Append     key.Binding
	AppendEnd  key.Binding
	OpenBelow  key.Binding
	OpenAbove  key.Binding
	DeleteChar key.Binding
	DeleteLine key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy document"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc/jj", "normal mode"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "line start"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("$", "end"),
			key.WithHelp("$", "line end"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append"),
		),
		AppendEnd: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "append at line end"),
		),
		OpenBelow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open line below"),
		),
		OpenAbove: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "open line above"),
		),
		DeleteChar: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete character"),
		),
		DeleteLine: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("dd", "delete line"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
