package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/sant0-9/promptsmith/internal/config"
	"github.com/sant0-9/promptsmith/internal/document"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/template"
)

// previewPlaceholder is shown before the first preview and after a clear
const previewPlaceholder = "O preview do prompt aparecerá aqui..."

// inputAction is what the path/name prompt does on Enter
type inputAction int

const (
	inputNone inputAction = iota
	inputSave
	inputOpen
	inputStash
)

type state struct {
	config *config.Config

	// Form
	doc    prompt.Document
	fields []textarea.Model // indexed by prompt.Kind
	focus  prompt.Kind

	// Preview
	preview     string // raw markdown, or previewPlaceholder
	previewView viewport.Model
	renderer    *glamour.TermRenderer

	// Path / name prompt
	input       textinput.Model
	inputAction inputAction

	// File that was last opened or saved
	currentPath string
	loaded      *document.Metadata

	// Library and template pickers
	libraryEntries []library.Summary
	templates      []*template.Metadata
	selected       int

	// Settings
	settingsDirty bool

	// Status line
	status    string
	statusErr bool
	lastErr   error
	lastOp    string
}

func newState(cfg *config.Config) *state {
	fields := make([]textarea.Model, len(prompt.Kinds()))
	for _, k := range prompt.Kinds() {
		ta := textarea.New()
		ta.Placeholder = k.Heading() + "..."
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetWidth(60)
		ta.SetHeight(12)
		fields[k] = ta
	}
	fields[0].Focus()

	input := textinput.New()
	input.Placeholder = "path/to/prompt.txt"
	input.CharLimit = 1024
	input.Width = 60

	return &state{
		config:      cfg,
		fields:      fields,
		preview:     previewPlaceholder,
		previewView: viewport.New(60, 20),
		input:       input,
	}
}

// parseOptions turns config toggles into prompt parse options
func (s *state) parseOptions() []prompt.ParseOption {
	var opts []prompt.ParseOption
	if s.config.Parse.StrictHeadings {
		opts = append(opts, prompt.WithStrictHeadings())
	}
	if s.config.Parse.DistributeParagraphs {
		opts = append(opts, prompt.WithParagraphDistribution())
	}
	return opts
}
