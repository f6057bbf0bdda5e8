package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sant0-9/promptsmith/internal/clipboard"
	"github.com/sant0-9/promptsmith/internal/config"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/template"
	"github.com/sant0-9/promptsmith/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errLibraryDisabled is returned by library commands when no store is wired
var errLibraryDisabled = errors.New("prompt library is disabled (library.enabled: false)")

// LibraryStore is the prompt library as used by the commands.
type LibraryStore interface {
	Save(ctx context.Context, name string, doc prompt.Document) (*library.Entry, error)
	Get(ctx context.Context, name string) (*library.Entry, error)
	List(ctx context.Context) ([]library.Summary, error)
	Delete(ctx context.Context, name string) error
}

// App holds the collaborators shared by every command.
type App struct {
	Config    *config.Config
	Library   LibraryStore // nil when the library is disabled
	Templates *template.Index
	Clipboard clipboard.Writer
	Logger    *zap.Logger

	// NewLogger replaces Logger before any command runs, once --verbose is
	// known. Optional.
	NewLogger func(verbose bool) (*zap.Logger, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunTUI starts the full-screen editor.
	RunTUI func(opts tui.Options) error
}

// NewRootCmd creates the top-level "promptsmith" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		format  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "promptsmith [FILE]",
		Short: "Compose structured LLM prompts from nine tagged sections",
		Long: `promptsmith edits a prompt split into nine sections (few-shot examples,
context, main content, auxiliary content, limitations, refactoring, guidance,
tests and output format) and renders it with <START_X>/<END_X> markers.

On a terminal it opens the editor, optionally loading FILE. With piped stdin
it parses the input and prints the prompt text.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.NewLogger == nil {
				return nil
			}
			logger, err := app.NewLogger(verbose)
			if err != nil {
				return err
			}
			app.Logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !app.interactive() {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				doc := prompt.Parse(string(data), app.parseOptions()...)
				app.logger().Info("parsed stdin", zap.Int("bytes", len(data)), zap.Int("sections", len(doc.Sections())))
				return app.print(cmd, doc, format)
			}

			if app.RunTUI == nil {
				return errors.New("interactive editor unavailable")
			}
			opts := tui.Options{
				Config:    app.Config,
				Clipboard: app.Clipboard,
				Templates: app.Templates,
				Logger:    app.logger(),
			}
			if app.Library != nil {
				opts.Library = app.Library
			}
			if len(args) == 1 {
				opts.OpenPath = args[0]
			}
			return app.RunTUI(opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.Flags().StringVarP(&format, "format", "f", "", "output format for piped input: tagged, clean, preview or yaml")

	root.AddCommand(
		newBuildCmd(app),
		newParseCmd(app),
		newFormCmd(app),
		newLibraryCmd(app),
		newTemplateCmd(app),
		newConfigCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		a.Config = config.DefaultConfig()
	}
	return a.Config
}

func (a *App) parseOptions() []prompt.ParseOption {
	var opts []prompt.ParseOption
	cfg := a.config()
	if cfg.Parse.StrictHeadings {
		opts = append(opts, prompt.WithStrictHeadings())
	}
	if cfg.Parse.DistributeParagraphs {
		opts = append(opts, prompt.WithParagraphDistribution())
	}
	return opts
}

func (a *App) library() (LibraryStore, error) {
	if a.Library == nil {
		return nil, errLibraryDisabled
	}
	return a.Library, nil
}
