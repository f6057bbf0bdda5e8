package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/tui/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// promptHuhTheme returns a huh theme using the shared palette.
func promptHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: purple accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(styles.ColorSecondary)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.ColorSecondary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(styles.ColorWhite)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(styles.ColorWhite).Background(styles.ColorPrimary).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(styles.ColorMuted).Padding(0, 1)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return t
}

// sectionForm asks for every section, three per page, writing answers into
// values. Existing values prefill the fields.
func sectionForm(values map[prompt.Kind]*string) *huh.Form {
	var groups []*huh.Group
	var fields []huh.Field

	for _, k := range prompt.Kinds() {
		fields = append(fields, huh.NewText().
			Title(k.Heading()).
			Description("Leave empty to skip").
			CharLimit(0).
			Lines(5).
			Value(values[k]),
		)
		if len(fields) == 3 {
			groups = append(groups, huh.NewGroup(fields...))
			fields = nil
		}
	}
	if len(fields) > 0 {
		groups = append(groups, huh.NewGroup(fields...))
	}

	return huh.NewForm(groups...).WithTheme(promptHuhTheme())
}

func newFormCmd(app *App) *cobra.Command {
	var (
		output outputFlags
		tmpl   string
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill the sections in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("form needs an interactive terminal; use build with section flags instead")
			}

			var base prompt.Document
			if tmpl != "" {
				d, err := app.templateDocument(tmpl)
				if err != nil {
					return err
				}
				base = d
			}

			values := make(map[prompt.Kind]*string, len(prompt.Kinds()))
			for _, k := range prompt.Kinds() {
				v := base.Text(k)
				values[k] = &v
			}

			if err := sectionForm(values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("running form: %w", err)
			}

			doc := documentFromForm(values)
			text, err := app.render(doc, output.format)
			if err != nil {
				return err
			}
			app.logger().Info("prompt built from form", zap.Int("sections", len(doc.Sections())))
			return app.emit(cmd, text, output.out, output.copy)
		},
	}

	cmd.Flags().StringVarP(&tmpl, "template", "t", "", "prefill the form from a named template")
	output.register(cmd)
	return cmd
}

// documentFromForm keeps the answers that are not blank
func documentFromForm(values map[prompt.Kind]*string) prompt.Document {
	plain := make(map[prompt.Kind]string, len(values))
	for k, v := range values {
		if v != nil {
			plain[k] = *v
		}
	}
	return prompt.FromValues(plain)
}
