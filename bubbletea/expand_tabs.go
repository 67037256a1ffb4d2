package bubbletea

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ExpandTabs replaces tabs with spaces up to the next tab stop. startCol is
// the display column where s begins.
func ExpandTabs(s string, startCol int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
			continue
		}
		stop := (col/tabWidth + 1) * tabWidth
		sb.WriteString(strings.Repeat(" ", stop-col))
		col = stop
	}
	return sb.String()
}
