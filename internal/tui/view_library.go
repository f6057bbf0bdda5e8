package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderLibrary() string {
	var b strings.Builder

	title := styleLogo.Render("Prompt Library")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	width := min(70, max(20, a.width-4))

	if len(a.state.libraryEntries) == 0 {
		empty := styleBox.Copy().
			Width(width).
			Foreground(colorMuted).
			Render("No saved prompts.\n\nPress ctrl+b in the editor to store the current prompt.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		var lines []string
		for i, e := range a.state.libraryEntries {
			cursor := "  "
			if i == a.state.selected {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%-30s %d sections  %s",
				cursor,
				truncate(e.Name, 30),
				e.Sections,
				e.UpdatedAt.Local().Format("2006-01-02 15:04"),
			)
			if i == a.state.selected {
				line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
			}
			lines = append(lines, line)
		}

		listBox := styleBox.Copy().
			Width(width).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Up/Down] Navigate  [Enter] Load  [d] Delete  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
