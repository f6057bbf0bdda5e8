package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sant0-9/promptsmith/internal/cli"
	"github.com/sant0-9/promptsmith/internal/clipboard"
	"github.com/sant0-9/promptsmith/internal/config"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/logging"
	"github.com/sant0-9/promptsmith/internal/template"
	"github.com/sant0-9/promptsmith/internal/tui"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config:    cfg,
		Clipboard: clipboard.NewSystem(),
		Logger:    zap.NewNop(),
	}
	app.NewLogger = func(verbose bool) (*zap.Logger, error) {
		logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, verbose)
		if err != nil {
			return nil, err
		}
		logger.Info("starting", zap.String("version", version), zap.Bool("verbose", verbose))
		return logger, nil
	}
	defer func() { _ = app.Logger.Sync() }()

	// Open the prompt library (optional)
	if cfg.Library.Enabled {
		store, err := library.Open(cfg.Library.Path)
		if err != nil {
			return fmt.Errorf("opening library: %w", err)
		}
		defer store.Close()
		app.Library = store
	}

	// Index templates; a broken directory only disables them
	if idx, err := template.NewIndex(cfg.TemplatesDir); err == nil {
		app.Templates = idx
	} else {
		fmt.Fprintf(os.Stderr, "Warning: templates unavailable: %v\n", err)
	}

	// Detect interactive terminal for the editor entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.RunTUI = func(opts tui.Options) error {
		p := tea.NewProgram(
			tui.NewApp(opts),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		_, err := p.Run()
		return err
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.Version = version
	return rootCmd.Execute()
}
