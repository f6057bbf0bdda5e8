package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsmith/internal/prompt"
)

const sidebarWidth = 28

func (a *App) renderForm() string {
	sidebar := a.renderSidebar()

	k := a.state.focus
	editorTitle := styleTitle.Render(k.Heading())
	editor := styleBox.Copy().
		BorderForeground(colorSecondary).
		Render(a.state.fields[k].View())
	editorPane := lipgloss.JoinVertical(lipgloss.Left, editorTitle, editor)

	previewTitle := styleTitle.Render("Preview")
	preview := styleBox.Copy().
		Render(a.state.previewView.View())
	previewPane := lipgloss.JoinVertical(lipgloss.Left, previewTitle, preview)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", editorPane, " ", previewPane)

	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar())
}

func (a *App) renderSidebar() string {
	var lines []string
	lines = append(lines, styleLogo.Render("promptsmith"), "")

	for _, k := range prompt.Kinds() {
		filled := strings.TrimSpace(a.state.fields[k].Value()) != ""

		marker := "[ ]"
		if filled {
			marker = "[x]"
		}
		label := truncate(fmt.Sprintf("%s %s", marker, k.Heading()), sidebarWidth-4)

		switch {
		case k == a.state.focus:
			lines = append(lines, styleFieldActive.Render("> "+label))
		case filled:
			lines = append(lines, styleFieldFilled.Render("  "+label))
		default:
			lines = append(lines, styleFieldEmpty.Render("  "+label))
		}
	}

	return styleBox.Copy().
		Width(sidebarWidth).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderStatusBar() string {
	var parts []string

	if a.state.status != "" {
		if a.state.statusErr {
			parts = append(parts, lipgloss.NewStyle().Foreground(colorError).Render(a.state.status))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(colorSuccess).Render(a.state.status))
		}
	}

	parts = append(parts, styleStatusBar.Render(tokenGauge(a.cleanPrompt(), a.state.config.TargetModel)))

	if a.state.currentPath != "" {
		file := filepath.Base(a.state.currentPath)
		if a.state.loaded != nil && a.state.loaded.SourcePath == a.state.currentPath {
			file += " (" + a.state.loaded.FileSizeHuman() + ")"
		}
		parts = append(parts, styleStatusBar.Render(file))
	}

	parts = append(parts, styleStatusBar.Render("[Tab] Next  [Ctrl+G] Preview  [Ctrl+S] Save  [Ctrl+Y] Copy  [F1] Help"))

	return strings.Join(parts, styleStatusBar.Render("  |  "))
}
