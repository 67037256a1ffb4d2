package lipgloss

import (
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fountain"
)

// NewStyle converts a fountain style to a lipgloss style.
// If renderer is nil, the default lipgloss renderer is used.
// Alignment and indent are applied by RenderLine, not here.
func NewStyle(s fountain.Style, renderer *lg.Renderer) lg.Style {
	var style lg.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lg.NewStyle()
	}
	if s.Foreground != "" {
		style = style.Foreground(lg.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lg.Color(s.Background))
	}
	return style.
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Faint(s.Faint)
}

// StyleFromColorPair creates a lipgloss style from a color pair.
func StyleFromColorPair(cp fountain.ColorPair, renderer *lg.Renderer) lg.Style {
	return NewStyle(fountain.Style{Foreground: cp.Foreground, Background: cp.Background}, renderer)
}

// Position converts an alignment to a lipgloss position.
func Position(a fountain.Alignment) lg.Position {
	switch a {
	case fountain.AlignCenter:
		return lg.Center
	case fountain.AlignRight:
		return lg.Right
	default:
		return lg.Left
	}
}

// Place positions already-styled content within width according to s.
// Content wider than width is returned unpadded.
func Place(content string, s fountain.Style, width int) string {
	if s.Align == fountain.AlignLeft && s.Indent > 0 {
		content = strings.Repeat(" ", s.Indent) + content
	}
	if width <= 0 || s.Align == fountain.AlignLeft {
		return content
	}
	return lg.PlaceHorizontal(width, Position(s.Align), content)
}

// RenderLine styles a classified line and positions it within width.
func RenderLine(line fountain.Line, styles fountain.Styles, renderer *lg.Renderer, width int) string {
	if line.Blank {
		return ""
	}
	s := styles.For(line.Category)
	return Place(NewStyle(s, renderer).Render(line.Text), s, width)
}

// RenderDocument renders every classified line, one per output line.
func RenderDocument(lines []fountain.Line, styles fountain.Styles, renderer *lg.Renderer, width int) string {
	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(RenderLine(line, styles, renderer, width))
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderTokens renders one line of highlighted tokens. The first token's
// style decides alignment, since the Fountain lexer emits one token per line.
func RenderTokens(tokens []fountain.Token, renderer *lg.Renderer, width int) string {
	if len(tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(NewStyle(tok.Style, renderer).Render(tok.Text))
	}
	return Place(sb.String(), tokens[0].Style, width)
}

// RenderTokenLines renders per-line token slices, one per output line.
func RenderTokenLines(lines [][]fountain.Token, renderer *lg.Renderer, width int) string {
	rows := make([]string, len(lines))
	for i, tokens := range lines {
		rows[i] = RenderTokens(tokens, renderer, width)
	}
	return strings.Join(rows, "\n")
}
