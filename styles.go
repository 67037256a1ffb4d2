package fountain

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Alignment positions a line within the page width.
type Alignment int

// Alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style represents the visual styling for a line or token.
type Style struct {
	Foreground string // Hex color code or empty for default
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
	Faint      bool
	Align      Alignment
	Indent     int // Left margin in columns, applied to left-aligned lines
}

// Styles contains the style for every line category plus editor chrome.
type Styles struct {
	SceneHeading  Style
	Character     Style
	Dialogue      Style
	Parenthetical Style
	Transition    Style
	Synopsis      Style
	Action        Style
	Centered      Style
	PageBreak     Style

	LineNumber ColorPair // Gutter line numbers
	StatusBar  ColorPair // Bottom status line
	Cursor     ColorPair // Cell under the cursor
	Mode       ColorPair // Mode indicator in the status line
}

// For returns the style for a category. Unknown categories get the action style.
func (s Styles) For(c Category) Style {
	switch c {
	case SceneHeading:
		return s.SceneHeading
	case Character:
		return s.Character
	case Dialogue:
		return s.Dialogue
	case Parenthetical:
		return s.Parenthetical
	case Transition:
		return s.Transition
	case Synopsis:
		return s.Synopsis
	case Centered:
		return s.Centered
	case PageBreak:
		return s.PageBreak
	default:
		return s.Action
	}
}

// Theme provides styles for rendering screenplays.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
