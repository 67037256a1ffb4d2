package bubbletea

import (
	"strings"

	"github.com/fwojciec/fountain"
	"github.com/mattn/go-runewidth"
)

// Buffer holds the document as lines of runes with a cursor.
// Row and column are zero-based; the column counts runes, not cells.
type Buffer struct {
	lines [][]rune
	row   int
	col   int
}

// NewBuffer creates a buffer from text. CRLF line endings are normalized.
func NewBuffer(text string) *Buffer {
	split := fountain.SplitLines(text)
	lines := make([][]rune, len(split))
	for i, l := range split {
		lines[i] = []rune(l)
	}
	return &Buffer{lines: lines}
}

// Text returns the buffer contents joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Lines returns a copy of every line as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Empty reports whether the buffer holds no text at all.
func (b *Buffer) Empty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Cursor returns the cursor row and rune column.
func (b *Buffer) Cursor() (row, col int) {
	return b.row, b.col
}

// DisplayColumn returns the cell column of the cursor on its line.
func (b *Buffer) DisplayColumn() int {
	return runewidth.StringWidth(ExpandTabs(string(b.lines[b.row][:b.col]), 0))
}

// SetCursor moves the cursor, clamping to the buffer bounds.
func (b *Buffer) SetCursor(row, col int) {
	b.row = clamp(row, 0, len(b.lines)-1)
	b.col = clamp(col, 0, len(b.lines[b.row]))
}

// InsertRune inserts r at the cursor. A newline splits the line.
func (b *Buffer) InsertRune(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}
	if r == '\r' {
		return
	}
	line := b.lines[b.row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:b.col]...)
	next = append(next, r)
	next = append(next, line[b.col:]...)
	b.lines[b.row] = next
	b.col++
}

// InsertRunes inserts each rune in turn.
func (b *Buffer) InsertRunes(rs []rune) {
	for _, r := range rs {
		b.InsertRune(r)
	}
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	line := b.lines[b.row]
	head := append([]rune(nil), line[:b.col]...)
	tail := append([]rune(nil), line[b.col:]...)
	b.lines[b.row] = head
	b.lines = insertLine(b.lines, b.row+1, tail)
	b.row++
	b.col = 0
}

// DeleteBackward removes the rune before the cursor, joining lines at column zero.
// It reports whether anything changed.
func (b *Buffer) DeleteBackward() bool {
	if b.col > 0 {
		line := b.lines[b.row]
		b.lines[b.row] = append(line[:b.col-1:b.col-1], line[b.col:]...)
		b.col--
		return true
	}
	if b.row == 0 {
		return false
	}
	prev := b.lines[b.row-1]
	b.col = len(prev)
	b.lines[b.row-1] = append(prev[:len(prev):len(prev)], b.lines[b.row]...)
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	b.row--
	return true
}

// DeleteChar removes the rune under the cursor without joining lines.
// It reports whether anything changed.
func (b *Buffer) DeleteChar() bool {
	line := b.lines[b.row]
	if b.col >= len(line) {
		return false
	}
	b.lines[b.row] = append(line[:b.col:b.col], line[b.col+1:]...)
	return true
}

// DeleteForward removes the rune under the cursor, joining the next line at end of line.
func (b *Buffer) DeleteForward() bool {
	if b.DeleteChar() {
		return true
	}
	if b.row >= len(b.lines)-1 {
		return false
	}
	line := b.lines[b.row]
	b.lines[b.row] = append(line[:len(line):len(line)], b.lines[b.row+1]...)
	b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
	return true
}

// DeleteLine removes the current line. The last remaining line is cleared instead.
func (b *Buffer) DeleteLine() {
	if len(b.lines) == 1 {
		b.lines[0] = nil
		b.col = 0
		return
	}
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	if b.row >= len(b.lines) {
		b.row = len(b.lines) - 1
	}
	b.col = 0
}

// OpenBelow inserts an empty line after the current one and moves to it.
func (b *Buffer) OpenBelow() {
	b.lines = insertLine(b.lines, b.row+1, nil)
	b.row++
	b.col = 0
}

// OpenAbove inserts an empty line before the current one and moves to it.
func (b *Buffer) OpenAbove() {
	b.lines = insertLine(b.lines, b.row, nil)
	b.col = 0
}

// MoveLeft moves one rune left within the line.
func (b *Buffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	}
}

// MoveRight moves one rune right. In normal mode the cursor stops on the last rune.
func (b *Buffer) MoveRight(pastEnd bool) {
	limit := len(b.lines[b.row])
	if !pastEnd && limit > 0 {
		limit--
	}
	if b.col < limit {
		b.col++
	}
}

// MoveUp moves to the previous line, keeping the column where possible.
func (b *Buffer) MoveUp() {
	if b.row > 0 {
		b.SetCursor(b.row-1, b.col)
	}
}

// MoveDown moves to the next line, keeping the column where possible.
func (b *Buffer) MoveDown() {
	if b.row < len(b.lines)-1 {
		b.SetCursor(b.row+1, b.col)
	}
}

// LineStart moves to column zero.
func (b *Buffer) LineStart() {
	b.col = 0
}

// LineEnd moves past the last rune of the line.
func (b *Buffer) LineEnd() {
	b.col = len(b.lines[b.row])
}

// Top moves to the first line.
func (b *Buffer) Top() {
	b.SetCursor(0, 0)
}

// Bottom moves to the last line.
func (b *Buffer) Bottom() {
	b.SetCursor(len(b.lines)-1, 0)
}

// ClampNormal keeps the cursor on a rune, as normal mode requires.
func (b *Buffer) ClampNormal() {
	if n := len(b.lines[b.row]); n > 0 && b.col >= n {
		b.col = n - 1
	}
}

func insertLine(lines [][]rune, at int, line []rune) [][]rune {
	lines = append(lines, nil)
	copy(lines[at+1:], lines[at:])
	lines[at] = line
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
