package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	heading := "Something went wrong"
	if a.state.lastOp != "" {
		heading = "Could not " + a.state.lastOp
	}
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errText := "Unknown error"
	if a.state.lastErr != nil {
		errText = a.state.lastErr.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, max(20, a.width-4))).
		BorderForeground(colorError).
		Render(errText)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := errSuggestions(a.state.lastErr); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, max(20, a.width-4))).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Enter/Esc] Back to editor")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
