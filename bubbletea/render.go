package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fountain"
	fountainlg "github.com/fwojciec/fountain/lipgloss"
)

// tabWidth is the distance between tab stops when tabs are expanded for display.
const tabWidth = 8

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 3

// renderConfig holds all rendering parameters for renderBuffer.
type renderConfig struct {
	lines     []fountain.Line
	styles    fountain.Styles
	renderer  *lipgloss.Renderer
	width     int
	height    int
	pageWidth int
	offset    int

	// Cursor position in runes. Ignored when showCursor is false.
	cursorRow  int
	cursorCol  int
	showCursor bool
}

// renderBuffer renders height rows of classified lines starting at offset.
// Rows past the end of the document show a "~" marker in the gutter.
func renderBuffer(cfg renderConfig) string {
	gutterWidth := max(minGutterWidth, digitWidth(len(cfg.lines)))
	lineNumStyle := fountainlg.StyleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	cursorStyle := fountainlg.StyleFromColorPair(cfg.styles.Cursor, cfg.renderer)

	textWidth := cfg.pageWidth
	if avail := cfg.width - gutterWidth - 1; avail < textWidth {
		textWidth = max(avail, 0)
	}

	rows := make([]string, 0, cfg.height)
	for i := cfg.offset; i < cfg.offset+cfg.height; i++ {
		if i >= len(cfg.lines) {
			rows = append(rows, lineNumStyle.Render(fmt.Sprintf("%-*s", gutterWidth, "~")))
			continue
		}
		line := cfg.lines[i]
		gutter := lineNumStyle.Render(formatLineNum(line.Number, gutterWidth) + " ")
		var body string
		if cfg.showCursor && i == cfg.cursorRow {
			body = renderCursorLine(line, cfg.cursorCol, cfg.styles, cursorStyle, cfg.renderer, textWidth)
		} else {
			line.Text = ExpandTabs(line.Text, 0)
			body = fountainlg.RenderLine(line, cfg.styles, cfg.renderer, textWidth)
		}
		rows = append(rows, gutter+body)
	}
	return strings.Join(rows, "\n")
}

// renderCursorLine renders a line with the cell at col drawn in the cursor style.
// Blank lines keep the cursor at the left margin.
func renderCursorLine(line fountain.Line, col int, styles fountain.Styles, cursorStyle lipgloss.Style, renderer *lipgloss.Renderer, width int) string {
	s := styles.For(line.Category)
	if line.Blank {
		s = fountain.Style{}
	}
	base := fountainlg.NewStyle(s, renderer)

	runes := []rune(line.Text)
	col = clamp(col, 0, len(runes))
	before := ExpandTabs(string(runes[:col]), 0)
	under := " "
	var after string
	if col < len(runes) {
		if runes[col] != '\t' {
			under = string(runes[col])
		}
		after = string(runes[col+1:])
	}
	startCol := lipgloss.Width(before) + lipgloss.Width(under)
	after = ExpandTabs(after, startCol)

	var sb strings.Builder
	if before != "" {
		sb.WriteString(base.Render(before))
	}
	sb.WriteString(cursorStyle.Render(under))
	if after != "" {
		sb.WriteString(base.Render(after))
	}
	return fountainlg.Place(sb.String(), s, width)
}

// formatLineNum formats a right-aligned line number for the gutter.
func formatLineNum(num, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
