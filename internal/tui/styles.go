package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsmith/internal/tui/styles"
)

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var (
	// Colors
	colorPrimary   = styles.ColorPrimary
	colorSecondary = styles.ColorSecondary
	colorSuccess   = styles.ColorSuccess
	colorError     = styles.ColorError
	colorMuted     = styles.ColorMuted
	colorWhite     = styles.ColorWhite

	styleLogo      = styles.Brand
	styleSubtitle  = styles.Muted
	styleBox       = styles.Panel
	styleStatusBar = styles.Muted

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFieldActive = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleFieldFilled = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleFieldEmpty = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// centerVertically pads content so it sits in the middle of the screen
func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	pad := (a.height - lines) / 2
	if pad <= 0 {
		return content
	}
	return strings.Repeat("\n", pad) + content
}
