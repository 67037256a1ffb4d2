package fountain_test

import (
	"testing"

	"github.com/fwojciec/fountain"
	"github.com/stretchr/testify/assert"
)

func TestStyles_For(t *testing.T) {
	t.Parallel()

	styles := fountain.Styles{
		SceneHeading:  fountain.Style{Foreground: "#000001"},
		Character:     fountain.Style{Foreground: "#000002"},
		Dialogue:      fountain.Style{Foreground: "#000003"},
		Parenthetical: fountain.Style{Foreground: "#000004"},
		Transition:    fountain.Style{Foreground: "#000005"},
		Synopsis:      fountain.Style{Foreground: "#000006"},
		Action:        fountain.Style{Foreground: "#000007"},
		Centered:      fountain.Style{Foreground: "#000008"},
		PageBreak:     fountain.Style{Foreground: "#000009"},
	}

	t.Run("returns the style for each category", func(t *testing.T) {
		t.Parallel()

		want := []string{"#000001", "#000002", "#000003", "#000004", "#000005", "#000006", "#000007", "#000008", "#000009"}
		for i, c := range fountain.Categories() {
			assert.Equal(t, want[i], styles.For(c).Foreground, "category: %s", c)
		}
	})

	t.Run("unknown categories use the action style", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "#000007", styles.For(fountain.Category("unknown")).Foreground)
	})
}

func TestTheme(t *testing.T) {
	t.Parallel()

	theme := &mockTheme{
		styles: fountain.Styles{
			Transition: fountain.Style{Bold: true, Align: fountain.AlignRight},
		},
	}

	result := theme.Styles()
	assert.True(t, result.Transition.Bold)
	assert.Equal(t, fountain.AlignRight, result.Transition.Align)
}

// mockTheme implements fountain.Theme for testing.
type mockTheme struct {
	styles fountain.Styles
}

func (m *mockTheme) Styles() fountain.Styles {
	return m.styles
}

// Verify mockTheme implements Theme interface
var _ fountain.Theme = (*mockTheme)(nil)
