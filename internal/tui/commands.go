package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptsmith/internal/document"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/template"
)

// storeTimeout bounds every library round trip started from the UI
const storeTimeout = 5 * time.Second

// Messages
type savedMsg struct {
	path  string
	bytes int
}

type loadedMsg struct {
	doc *document.Document
}

type copiedMsg struct {
	bytes int
}

type stashedMsg struct {
	entry *library.Entry
}

type libraryListMsg struct {
	entries []library.Summary
}

type libraryLoadedMsg struct {
	entry *library.Entry
}

type libraryDeletedMsg struct {
	name string
}

type templateLoadedMsg struct {
	template *template.Template
}

type configSavedMsg struct{}

type errMsg struct {
	op  string
	err error
}

func (a *App) saveCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errMsg{op: "save", err: err}
			}
		}
		if err := document.SaveToPath(text, path); err != nil {
			return errMsg{op: "save", err: err}
		}
		return savedMsg{path: path, bytes: len(text)}
	}
}

func (a *App) openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Load(path)
		if err != nil {
			return errMsg{op: "open", err: err}
		}
		return loadedMsg{doc: doc}
	}
}

func (a *App) copyCmd(text string) tea.Cmd {
	clip := a.clipboard
	return func() tea.Msg {
		if err := clip.WriteText(text); err != nil {
			return errMsg{op: "copy", err: err}
		}
		return copiedMsg{bytes: len(text)}
	}
}

func (a *App) stashCmd(name string, doc prompt.Document) tea.Cmd {
	lib := a.library
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entry, err := lib.Save(ctx, name, doc)
		if err != nil {
			return errMsg{op: "library save", err: err}
		}
		return stashedMsg{entry: entry}
	}
}

func (a *App) libraryListCmd() tea.Cmd {
	lib := a.library
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entries, err := lib.List(ctx)
		if err != nil {
			return errMsg{op: "library list", err: err}
		}
		return libraryListMsg{entries: entries}
	}
}

func (a *App) libraryLoadCmd(name string) tea.Cmd {
	lib := a.library
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entry, err := lib.Get(ctx, name)
		if err != nil {
			return errMsg{op: "library load", err: err}
		}
		return libraryLoadedMsg{entry: entry}
	}
}

func (a *App) libraryDeleteCmd(name string) tea.Cmd {
	lib := a.library
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := lib.Delete(ctx, name); err != nil {
			return errMsg{op: "library delete", err: err}
		}
		return libraryDeletedMsg{name: name}
	}
}

func (a *App) templateLoadCmd(meta *template.Metadata) tea.Cmd {
	return func() tea.Msg {
		tmpl, err := template.LoadFull(meta)
		if err != nil {
			return errMsg{op: "template", err: err}
		}
		return templateLoadedMsg{template: tmpl}
	}
}

func (a *App) saveConfigCmd() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return errMsg{op: "settings", err: err}
		}
		return configSavedMsg{}
	}
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// errSuggestions maps common failures to hints for the error view
func errSuggestions(err error) []string {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, library.ErrNotFound):
		return []string{"The prompt may have been removed", "Press ctrl+l to refresh the library"}
	case errors.Is(err, template.ErrNotFound):
		return []string{"Check the templates directory in settings"}
	case strings.Contains(msg, "clipboard"):
		return []string{"No clipboard tool was found", "Install xclip, xsel or wl-clipboard, or save to a file"}
	case strings.Contains(msg, "not found") || strings.Contains(msg, "no such file"):
		return []string{"Check the file path is correct", "Make sure the file exists and is readable"}
	case strings.Contains(msg, "is a directory"):
		return []string{"Pick a file, not a folder"}
	case strings.Contains(msg, "permission denied"):
		return []string{"You do not have access to that path", "Try a path under your home directory"}
	}
	return nil
}
