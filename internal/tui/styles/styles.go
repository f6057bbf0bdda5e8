// Package styles holds the palette shared by the editor and the CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorWhite     = lipgloss.Color("#F9FAFB")
)

var (
	// Brand is the product name in the sidebar and list titles
	Brand = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Muted is used for hints, separators and empty fields
	Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Panel frames editors, previews and dialogs
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
)
