package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderInput() string {
	var b strings.Builder

	var heading, hint string
	switch a.state.inputAction {
	case inputSave:
		heading = "Save prompt"
		hint = "The prompt text is written without headings or notes"
	case inputOpen:
		heading = "Open prompt"
		hint = "Sections are filled from the file's markdown headings"
	case inputStash:
		heading = "Save to library"
		hint = "An existing prompt with the same name is replaced"
	}

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	desc := styleSubtitle.Render(hint)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	inputBox := styleBox.Copy().
		Width(min(70, max(20, a.width-4))).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Enter] Confirm  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
