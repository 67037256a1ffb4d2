package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/fountain"
	"github.com/fwojciec/fountain/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ fountain.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns same styles as DarkTheme", func(t *testing.T) {
		t.Parallel()

		defaultStyles := lipgloss.DefaultTheme().Styles()
		darkStyles := lipgloss.DarkTheme().Styles()

		assert.Equal(t, darkStyles, defaultStyles)
	})
}

func TestThemes_CoverEveryCategory(t *testing.T) {
	t.Parallel()

	for _, theme := range []*lipgloss.Theme{lipgloss.DarkTheme(), lipgloss.LightTheme()} {
		styles := theme.Styles()
		for _, c := range fountain.Categories() {
			assert.NotEmpty(t, styles.For(c).Foreground, "%s theme: %s", theme.Name(), c)
		}
		assert.NotEmpty(t, styles.Cursor.Background, "%s theme cursor", theme.Name())
		assert.NotEmpty(t, styles.StatusBar.Foreground, "%s theme status bar", theme.Name())
	}
}

func TestThemes_ScreenplayLayout(t *testing.T) {
	t.Parallel()

	styles := lipgloss.DarkTheme().Styles()

	t.Run("scene headings are bold and underlined", func(t *testing.T) {
		t.Parallel()

		assert.True(t, styles.SceneHeading.Bold)
		assert.True(t, styles.SceneHeading.Underline)
	})

	t.Run("character cues are centered", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, fountain.AlignCenter, styles.Character.Align)
	})

	t.Run("transitions are right aligned", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, fountain.AlignRight, styles.Transition.Align)
	})

	t.Run("parentheticals are italic", func(t *testing.T) {
		t.Parallel()

		assert.True(t, styles.Parenthetical.Italic)
	})

	t.Run("dialogue is indented", func(t *testing.T) {
		t.Parallel()

		assert.Positive(t, styles.Dialogue.Indent)
	})
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	t.Run("resolves known names", func(t *testing.T) {
		t.Parallel()

		for name, want := range map[string]string{"dark": "dark", "Light": "light", "": "dark", "default": "dark"} {
			theme, err := lipgloss.ThemeByName(name)
			require.NoError(t, err)
			assert.Equal(t, want, theme.Name(), "name: %q", name)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := lipgloss.ThemeByName("solarized")

		require.ErrorIs(t, err, fountain.ErrUnknownTheme)
		assert.Contains(t, err.Error(), "solarized")
	})
}
