package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/fountain/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	t.Run("empty text has one empty line", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("")

		assert.Equal(t, 1, b.LineCount())
		assert.True(t, b.Empty())
		assert.Equal(t, "", b.Text())
	})

	t.Run("text round trips with trailing newline", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JOHN\nHello.\n")

		assert.Equal(t, []string{"JOHN", "Hello.", ""}, b.Lines())
		assert.Equal(t, "JOHN\nHello.\n", b.Text())
		assert.False(t, b.Empty())
	})

	t.Run("CRLF is normalized", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("a\r\nb")

		assert.Equal(t, "a\nb", b.Text())
	})
}

func TestBuffer_Insert(t *testing.T) {
	t.Parallel()

	t.Run("runes insert at the cursor", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JHN")
		b.SetCursor(0, 1)
		b.InsertRune('O')

		assert.Equal(t, "JOHN", b.Text())
		row, col := b.Cursor()
		assert.Equal(t, 0, row)
		assert.Equal(t, 2, col)
	})

	t.Run("newline splits the line", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JOHNHello.")
		b.SetCursor(0, 4)
		b.InsertRunes([]rune("\n"))

		assert.Equal(t, []string{"JOHN", "Hello."}, b.Lines())
		row, col := b.Cursor()
		assert.Equal(t, 1, row)
		assert.Equal(t, 0, col)
	})

	t.Run("carriage returns are dropped", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("")
		b.InsertRunes([]rune("a\r\nb"))

		assert.Equal(t, "a\nb", b.Text())
	})
}

func TestBuffer_Delete(t *testing.T) {
	t.Parallel()

	t.Run("backward deletes the previous rune", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JOHNN")
		b.SetCursor(0, 5)

		require.True(t, b.DeleteBackward())
		assert.Equal(t, "JOHN", b.Text())
	})

	t.Run("backward at column zero joins lines", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("INT.\n KITCHEN")
		b.SetCursor(1, 0)

		require.True(t, b.DeleteBackward())
		assert.Equal(t, "INT. KITCHEN", b.Text())
		row, col := b.Cursor()
		assert.Equal(t, 0, row)
		assert.Equal(t, 4, col)
	})

	t.Run("backward at start of buffer does nothing", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JOHN")

		assert.False(t, b.DeleteBackward())
		assert.Equal(t, "JOHN", b.Text())
	})

	t.Run("char deletes under the cursor only", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("ab\ncd")
		b.SetCursor(0, 1)

		require.True(t, b.DeleteChar())
		assert.False(t, b.DeleteChar(), "cursor is past the last rune")
		assert.Equal(t, "a\ncd", b.Text())
	})

	t.Run("forward at end of line joins the next line", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("ab\ncd")
		b.SetCursor(0, 2)

		require.True(t, b.DeleteForward())
		assert.Equal(t, "abcd", b.Text())
		b.LineEnd()
		assert.False(t, b.DeleteForward(), "nothing follows the last line")
	})

	t.Run("line removes the current line", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("one\ntwo\nthree")
		b.SetCursor(2, 3)
		b.DeleteLine()

		assert.Equal(t, "one\ntwo", b.Text())
		row, col := b.Cursor()
		assert.Equal(t, 1, row)
		assert.Equal(t, 0, col)
	})

	t.Run("line clears the only line", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("only")
		b.DeleteLine()

		assert.True(t, b.Empty())
	})
}

func TestBuffer_Movement(t *testing.T) {
	t.Parallel()

	t.Run("vertical moves clamp the column", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("EXT. STREET\nGO")
		b.SetCursor(0, 10)
		b.MoveDown()

		row, col := b.Cursor()
		assert.Equal(t, 1, row)
		assert.Equal(t, 2, col)

		b.MoveDown()
		row, _ = b.Cursor()
		assert.Equal(t, 1, row, "stays on the last line")
	})

	t.Run("right stops on the last rune unless past end is allowed", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("ab")
		b.MoveRight(false)
		b.MoveRight(false)
		_, col := b.Cursor()
		assert.Equal(t, 1, col)

		b.MoveRight(true)
		_, col = b.Cursor()
		assert.Equal(t, 2, col)
	})

	t.Run("top and bottom", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("a\nb\nc")
		b.Bottom()
		row, _ := b.Cursor()
		assert.Equal(t, 2, row)

		b.Top()
		row, _ = b.Cursor()
		assert.Equal(t, 0, row)
	})

	t.Run("open below and above", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("JOHN\nHello.")
		b.OpenBelow()
		assert.Equal(t, "JOHN\n\nHello.", b.Text())
		row, _ := b.Cursor()
		assert.Equal(t, 1, row)

		b.OpenAbove()
		assert.Equal(t, "JOHN\n\n\nHello.", b.Text())
		row, _ = b.Cursor()
		assert.Equal(t, 1, row)
	})

	t.Run("display column counts wide runes", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("日本語")
		b.SetCursor(0, 2)

		assert.Equal(t, 4, b.DisplayColumn())
	})

	t.Run("display column expands tabs", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewBuffer("\tJOHN")
		b.SetCursor(0, 2)

		assert.Equal(t, 9, b.DisplayColumn())
	})
}
