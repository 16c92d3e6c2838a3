package textengine

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme controls the editor's rendering.
type Theme struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
}

// DarkTheme is the builtin "dark" theme.
func DarkTheme() Theme {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Theme{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// LightTheme is the builtin "light" theme.
func LightTheme() Theme {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return Theme{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func builtinThemes() map[string]Theme {
	return map[string]Theme{
		"dark":  DarkTheme(),
		"light": LightTheme(),
	}
}

// detectTheme picks a builtin theme name from the terminal background.
// Used for the "auto" theme and as the default when no theme is configured.
func detectTheme() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
