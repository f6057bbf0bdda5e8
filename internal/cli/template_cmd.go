package cli

import (
	"fmt"

	"github.com/sant0-9/promptsmith/internal/template"
	"github.com/sant0-9/promptsmith/internal/tui/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse and create prompt templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateSaveCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Templates == nil || app.Templates.Count() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
				return nil
			}

			headers := []string{"Name", "Description"}
			var rows [][]string
			for _, m := range app.Templates.List() {
				rows = append(rows, []string{m.Name, m.Description})
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a template's sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.templateDocument(args[0])
			if err != nil {
				return err
			}
			return app.print(cmd, doc, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatPreview, "preview, tagged, clean or yaml")
	return cmd
}

func newTemplateSaveCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Create a template from a prompt file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.loadDocument(args[1])
			if err != nil {
				return err
			}

			dir := app.config().TemplatesDir
			if app.Templates != nil {
				dir = app.Templates.Dir()
			}

			t, err := template.Save(dir, args[0], description, doc)
			if err != nil {
				return err
			}
			app.logger().Info("template saved", zap.String("name", t.Name), zap.String("path", t.Path))
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Template saved to "+t.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "one-line description")
	return cmd
}
