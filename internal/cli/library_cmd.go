package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/tui/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Manage saved prompts",
	}

	cmd.AddCommand(
		newLibraryListCmd(app),
		newLibraryShowCmd(app),
		newLibrarySaveCmd(app),
		newLibraryRmCmd(app),
	)

	return cmd
}

func newLibraryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}

			entries, err := lib.List(context.Background())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved prompts.")
				return nil
			}

			headers := []string{"Name", "Sections", "Updated"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Name,
					strconv.Itoa(e.Sections),
					e.UpdatedAt.Local().Format("2006-01-02 15:04"),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}

func newLibraryShowCmd(app *App) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}

			entry, err := lib.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			text, err := app.render(entry.Document, output.format)
			if err != nil {
				return err
			}
			return app.emit(cmd, text, output.out, output.copy)
		},
	}

	output.register(cmd)
	return cmd
}

func newLibrarySaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME [FILE]",
		Short: "Store a prompt file (or stdin) under NAME",
		Long: `Store a prompt under NAME, replacing any prompt already saved with that
name. The prompt is read from FILE, or from stdin when FILE is omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}

			var doc prompt.Document
			if len(args) == 2 {
				doc, err = app.loadDocument(args[1])
				if err != nil {
					return err
				}
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				doc = prompt.Parse(string(data), app.parseOptions()...)
			}

			if doc.IsEmpty() {
				return fmt.Errorf("nothing to save: no section found")
			}

			entry, err := lib.Save(context.Background(), args[0], doc)
			if err != nil {
				return err
			}
			app.logger().Info("prompt stored in library", zap.String("name", entry.Name), zap.String("id", entry.ID))
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("Saved %s (%d sections)", entry.Name, len(entry.Document.Sections()))))
			return nil
		},
	}
}

func newLibraryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"delete"},
		Short:   "Delete a saved prompt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}

			if err := lib.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			app.logger().Info("prompt deleted from library", zap.String("name", args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Deleted "+args[0]))
			return nil
		},
	}
}
