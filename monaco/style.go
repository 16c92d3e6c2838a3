package monaco

import "github.com/charmbracelet/lipgloss"

// Styles controls the component's own presentation: the sized container and
// the loading placeholder shown until the editor is ready.
type Styles struct {
	Container lipgloss.Style
	Loading   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle(),
		Loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
