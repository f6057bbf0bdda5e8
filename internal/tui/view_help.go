package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	intro := styleSubtitle.Render("Fill any of the nine sections, then preview, save or copy the prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, intro))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	bindings := []key.Binding{
		keys.Tab, keys.ShiftTab, keys.Generate, keys.Save, keys.Open,
		keys.Copy, keys.Clear, keys.Stash, keys.Library, keys.Templates,
		keys.Settings, keys.Back, keys.Quit,
	}
	var shortcuts []string
	for _, kb := range bindings {
		h := kb.Help()
		shortcuts = append(shortcuts, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
