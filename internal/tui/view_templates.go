package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderTemplates() string {
	var b strings.Builder

	title := styleLogo.Render("Templates")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	desc := styleSubtitle.Render("Templates pre-fill the form with a prompt skeleton")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	width := min(70, max(20, a.width-4))

	if len(a.state.templates) == 0 {
		dir := a.state.config.TemplatesDir
		if a.templates != nil {
			dir = a.templates.Dir()
		}
		none := styleBox.Copy().
			Width(width).
			Foreground(colorMuted).
			Render(fmt.Sprintf("No templates installed.\n\nCreate templates in: %s\n\nEach template is a folder with TEMPLATE.md", dir))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, none))
	} else {
		var list strings.Builder
		for i, meta := range a.state.templates {
			cursor := "  "
			if i == a.state.selected {
				cursor = "> "
			}
			name := cursor + meta.Name
			if i == a.state.selected {
				name = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(name)
			}
			list.WriteString(name + "\n")
			if meta.Description != "" {
				list.WriteString("    " + truncate(meta.Description, 60) + "\n")
			}
		}

		listBox := styleBox.Copy().
			Width(width).
			BorderForeground(colorPrimary).
			Render(strings.TrimSpace(list.String()))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[Up/Down] Navigate  [Enter] Apply  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
