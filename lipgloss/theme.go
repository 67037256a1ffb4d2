// Package lipgloss provides theme implementations and line rendering using the
// Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.Theme = (*Theme)(nil)

// Theme implements fountain.Theme with Lipgloss-compatible colors.
type Theme struct {
	name   string
	styles fountain.Styles
}

// Name returns the theme name used in configuration.
func (t *Theme) Name() string {
	return t.name
}

// Styles returns the styles for this theme.
func (t *Theme) Styles() fountain.Styles {
	return t.styles
}

// dialogueIndent is the left margin for dialogue lines, in columns.
const dialogueIndent = 10

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme registered under name ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark", "default":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q", fountain.ErrUnknownTheme, name)
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		name: "dark",
		styles: fountain.Styles{
			SceneHeading: fountain.Style{
				Foreground: "#f9e2af", // Yellow
				Bold:       true,
				Underline:  true,
			},
			Character: fountain.Style{
				Foreground: "#89b4fa", // Blue
				Align:      fountain.AlignCenter,
			},
			Dialogue: fountain.Style{
				Foreground: "#cdd6f4",
				Indent:     dialogueIndent,
			},
			Parenthetical: fountain.Style{
				Foreground: "#9399b2",
				Italic:     true,
				Align:      fountain.AlignCenter,
			},
			Transition: fountain.Style{
				Foreground: "#cba6f7", // Mauve
				Bold:       true,
				Underline:  true,
				Align:      fountain.AlignRight,
			},
			Synopsis: fountain.Style{
				Foreground: "#6c7086", // Muted gray
			},
			Action: fountain.Style{
				Foreground: "#cdd6f4",
			},
			Centered: fountain.Style{
				Foreground: "#a6adc8",
				Faint:      true,
				Align:      fountain.AlignCenter,
			},
			PageBreak: fountain.Style{
				Foreground: "#45475a",
				Faint:      true,
				Align:      fountain.AlignCenter,
			},
			LineNumber: fountain.ColorPair{
				Foreground: "#6c7086",
			},
			StatusBar: fountain.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
			Cursor: fountain.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f5e0dc",
			},
			Mode: fountain.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa",
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		name: "light",
		styles: fountain.Styles{
			SceneHeading: fountain.Style{
				Foreground: "#df8e1d",
				Bold:       true,
				Underline:  true,
			},
			Character: fountain.Style{
				Foreground: "#1e66f5",
				Align:      fountain.AlignCenter,
			},
			Dialogue: fountain.Style{
				Foreground: "#4c4f69",
				Indent:     dialogueIndent,
			},
			Parenthetical: fountain.Style{
				Foreground: "#6c6f85",
				Italic:     true,
				Align:      fountain.AlignCenter,
			},
			Transition: fountain.Style{
				Foreground: "#8839ef",
				Bold:       true,
				Underline:  true,
				Align:      fountain.AlignRight,
			},
			Synopsis: fountain.Style{
				Foreground: "#9ca0b0",
			},
			Action: fountain.Style{
				Foreground: "#4c4f69",
			},
			Centered: fountain.Style{
				Foreground: "#6c6f85",
				Faint:      true,
				Align:      fountain.AlignCenter,
			},
			PageBreak: fountain.Style{
				Foreground: "#bcc0cc",
				Faint:      true,
				Align:      fountain.AlignCenter,
			},
			LineNumber: fountain.ColorPair{
				Foreground: "#9ca0b0",
			},
			StatusBar: fountain.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef",
			},
			Cursor: fountain.ColorPair{
				Foreground: "#eff1f5",
				Background: "#dc8a78",
			},
			Mode: fountain.ColorPair{
				Foreground: "#eff1f5",
				Background: "#1e66f5",
			},
		},
	}
}
