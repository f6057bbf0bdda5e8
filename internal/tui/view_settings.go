package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type setting struct {
	label string
	value func(a *App) *bool
}

var settings = []setting{
	{"Include START/END markers", func(a *App) *bool { return &a.state.config.IncludeMarkers }},
	{"Split untitled paragraphs", func(a *App) *bool { return &a.state.config.Parse.DistributeParagraphs }},
	{"Exact heading match", func(a *App) *bool { return &a.state.config.Parse.StrictHeadings }},
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(settings)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Enter), msg.String() == " ":
		v := settings[a.state.selected].value(a)
		*v = !*v
		a.state.settingsDirty = true
	case key.Matches(msg, keys.Save):
		return a.saveConfigCmd()
	}
	return nil
}

func (a *App) renderSettings() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config
	configLines := []string{
		fmt.Sprintf("  Output dir:   %s", cfg.OutputDir),
		fmt.Sprintf("  File name:    %s", cfg.DefaultFileName),
		fmt.Sprintf("  Templates:    %s", cfg.TemplatesDir),
		fmt.Sprintf("  Target model: %s", cfg.TargetModel),
	}
	configBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	var lines []string
	for i, s := range settings {
		cursor := "  "
		if i == a.state.selected {
			cursor = "> "
		}
		check := "[ ]"
		if *s.value(a) {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, s.label)
		if i == a.state.selected {
			line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}
	togglesBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, togglesBox))
	b.WriteString("\n\n")

	hint := "[Enter] Toggle  [Ctrl+S] Save  [Esc] Back"
	if a.state.settingsDirty {
		hint = "Unsaved changes  " + hint
	}
	instructions := styleStatusBar.Render(hint)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
