package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/sant0-9/promptsmith/internal/clipboard"
	"github.com/sant0-9/promptsmith/internal/config"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/template"
	"go.uber.org/zap"
)

type view int

const (
	viewForm view = iota
	viewInput
	viewLibrary
	viewTemplates
	viewSettings
	viewHelp
	viewError
)

// Library is the subset of library.Store the TUI uses
type Library interface {
	Save(ctx context.Context, name string, doc prompt.Document) (*library.Entry, error)
	Get(ctx context.Context, name string) (*library.Entry, error)
	List(ctx context.Context) ([]library.Summary, error)
	Delete(ctx context.Context, name string) error
}

// Options wires the collaborators of the TUI. Library and Templates may be
// nil, which disables their views.
type Options struct {
	Config    *config.Config
	Clipboard clipboard.Writer
	Library   Library
	Templates *template.Index
	Logger    *zap.Logger

	// OpenPath is loaded on start when set
	OpenPath string
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	clipboard clipboard.Writer
	library   Library
	templates *template.Index
	log       *zap.Logger
	openPath  string
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	s := newState(cfg)
	s.renderer = newRenderer(cfg.Preview, log)

	return &App{
		view:      viewForm,
		state:     s,
		clipboard: clip,
		library:   opts.Library,
		templates: opts.Templates,
		log:       log,
		openPath:  opts.OpenPath,
	}
}

func newRenderer(cfg config.PreviewConfig, log *zap.Logger) *glamour.TermRenderer {
	wrap := cfg.WordWrap
	if wrap <= 0 {
		wrap = 80
	}

	style := glamour.WithAutoStyle()
	if cfg.Style != "" && cfg.Style != "auto" {
		style = glamour.WithStandardStyle(cfg.Style)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		log.Warn("markdown renderer unavailable, showing raw preview", zap.Error(err))
		return nil
	}
	return r
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize(), textarea.Blink}
	if a.openPath != "" {
		cmds = append(cmds, a.openCmd(a.openPath))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case savedMsg:
		a.state.currentPath = msg.path
		a.setStatus("Saved to "+msg.path, false)
		a.log.Info("prompt saved", zap.String("path", msg.path), zap.Int("bytes", msg.bytes))
		return a, nil

	case loadedMsg:
		a.applyLoaded(msg)
		return a, nil

	case copiedMsg:
		a.setStatus("Prompt copied to clipboard", false)
		a.log.Info("prompt copied", zap.Int("bytes", msg.bytes))
		return a, nil

	case stashedMsg:
		a.setStatus("Saved to library as "+msg.entry.Name, false)
		a.log.Info("prompt stored in library", zap.String("name", msg.entry.Name), zap.String("id", msg.entry.ID))
		return a, nil

	case libraryListMsg:
		a.state.libraryEntries = msg.entries
		a.state.selected = 0
		a.view = viewLibrary
		return a, nil

	case libraryLoadedMsg:
		a.applyDocument(msg.entry.Document)
		a.state.currentPath = ""
		a.state.loaded = nil
		a.view = viewForm
		a.setStatus("Loaded "+msg.entry.Name+" from library", false)
		a.log.Info("prompt loaded from library", zap.String("name", msg.entry.Name))
		return a, nil

	case libraryDeletedMsg:
		a.log.Info("prompt deleted from library", zap.String("name", msg.name))
		a.setStatus("Deleted "+msg.name, false)
		return a, a.libraryListCmd()

	case templateLoadedMsg:
		a.applyDocument(msg.template.Document(a.state.parseOptions()...))
		a.view = viewForm
		a.setStatus("Template "+msg.template.Name+" applied", false)
		a.log.Info("template applied", zap.String("name", msg.template.Name))
		return a, nil

	case configSavedMsg:
		a.state.settingsDirty = false
		a.setStatus("Settings saved", false)
		return a, nil

	case errMsg:
		a.state.lastErr = msg.err
		a.state.lastOp = msg.op
		a.setStatus(msg.op+" failed: "+msg.err.Error(), true)
		a.log.Error(msg.op+" failed", zap.Error(msg.err))
		a.view = viewError
		return a, nil
	}

	// Remaining messages feed the focused widget
	switch a.view {
	case viewForm:
		var cmd tea.Cmd
		a.state.fields[a.state.focus], cmd = a.state.fields[a.state.focus].Update(msg)
		cmds = append(cmds, cmd)
	case viewInput:
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey returns handled=false when the key should reach the focused widget
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewInput:
		return a.handleInputKey(msg)
	case viewLibrary:
		return a.handleLibraryKey(msg), true
	case viewTemplates:
		return a.handleTemplatesKey(msg), true
	case viewSettings:
		return a.handleSettingsKey(msg), true
	case viewHelp, viewError:
		if key.Matches(msg, keys.Back) || key.Matches(msg, keys.Enter) {
			a.view = viewForm
		}
		return nil, true
	}
	return nil, false
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Tab):
		return a.focusField(a.state.focus + 1), true

	case key.Matches(msg, keys.ShiftTab):
		return a.focusField(a.state.focus - 1), true

	case key.Matches(msg, keys.Generate):
		a.generate()
		a.setStatus("Preview updated", false)
		return nil, true

	case key.Matches(msg, keys.Save):
		path := a.state.currentPath
		if path == "" {
			path = filepath.Join(a.state.config.OutputDir, a.state.config.DefaultFileName)
		}
		return a.promptInput(inputSave, path), true

	case key.Matches(msg, keys.Open):
		return a.promptInput(inputOpen, a.state.currentPath), true

	case key.Matches(msg, keys.Copy):
		a.syncDocument()
		return a.copyCmd(a.cleanPrompt()), true

	case key.Matches(msg, keys.Clear):
		a.clearAll()
		a.setStatus("All fields cleared", false)
		return nil, true

	case key.Matches(msg, keys.Stash):
		if a.library == nil {
			a.setStatus("Library is disabled", true)
			return nil, true
		}
		name := ""
		if a.state.loaded != nil {
			name = a.state.loaded.Title
		}
		return a.promptInput(inputStash, name), true

	case key.Matches(msg, keys.Library):
		if a.library == nil {
			a.setStatus("Library is disabled", true)
			return nil, true
		}
		return a.libraryListCmd(), true

	case key.Matches(msg, keys.Templates):
		a.state.templates = nil
		if a.templates != nil {
			a.state.templates = a.templates.List()
		}
		a.state.selected = 0
		a.view = viewTemplates
		return nil, true

	case key.Matches(msg, keys.Settings):
		a.state.selected = 0
		a.view = viewSettings
		return nil, true

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil, true
	}
	return nil, false
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		a.closeInput()
		return nil, true

	case key.Matches(msg, keys.Enter):
		value := strings.TrimSpace(a.state.input.Value())
		if value == "" {
			return nil, true
		}
		action := a.state.inputAction
		a.closeInput()

		switch action {
		case inputSave:
			a.syncDocument()
			return a.saveCmd(expandHome(value), a.cleanPrompt()), true
		case inputOpen:
			return a.openCmd(expandHome(value)), true
		case inputStash:
			a.syncDocument()
			return a.stashCmd(value, a.state.doc), true
		}
		return nil, true
	}
	return nil, false
}

func (a *App) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	entries := a.state.libraryEntries
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(entries)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Enter):
		if len(entries) > 0 {
			return a.libraryLoadCmd(entries[a.state.selected].Name)
		}
	case key.Matches(msg, keys.Delete):
		if len(entries) > 0 {
			return a.libraryDeleteCmd(entries[a.state.selected].Name)
		}
	}
	return nil
}

func (a *App) handleTemplatesKey(msg tea.KeyMsg) tea.Cmd {
	list := a.state.templates
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(list)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Enter):
		if len(list) > 0 {
			return a.templateLoadCmd(list[a.state.selected])
		}
	}
	return nil
}

// focusField moves focus to k, wrapping around the nine sections
func (a *App) focusField(k prompt.Kind) tea.Cmd {
	n := prompt.Kind(len(a.state.fields))
	k = ((k % n) + n) % n

	a.state.fields[a.state.focus].Blur()
	a.state.focus = k
	return a.state.fields[k].Focus()
}

func (a *App) promptInput(action inputAction, value string) tea.Cmd {
	a.state.inputAction = action
	a.state.input.SetValue(value)
	a.state.input.CursorEnd()
	a.view = viewInput
	return tea.Batch(a.state.input.Focus(), textinput.Blink)
}

func (a *App) closeInput() {
	a.state.input.Blur()
	a.state.input.Reset()
	a.state.inputAction = inputNone
	a.view = viewForm
}

func (a *App) setStatus(text string, isErr bool) {
	a.state.status = text
	a.state.statusErr = isErr
}

// syncDocument rebuilds the document from the form. Blank fields leave their
// slot empty.
func (a *App) syncDocument() {
	values := make(map[prompt.Kind]string, len(a.state.fields))
	for _, k := range prompt.Kinds() {
		values[k] = a.state.fields[k].Value()
	}
	a.state.doc = prompt.FromValues(values)
}

// cleanPrompt is the text copied and saved
func (a *App) cleanPrompt() string {
	return a.state.doc.Tagged(a.state.config.IncludeMarkers)
}

func (a *App) generate() {
	a.syncDocument()
	a.setPreview(a.state.doc.Preview())
	a.log.Debug("preview generated", zap.Int("sections", len(a.state.doc.Sections())))
}

func (a *App) setPreview(md string) {
	a.state.preview = md
	rendered := md
	if a.state.renderer != nil && md != previewPlaceholder {
		if out, err := a.state.renderer.Render(md); err == nil {
			rendered = out
		} else {
			a.log.Warn("rendering preview", zap.Error(err))
		}
	}
	a.state.previewView.SetContent(rendered)
	a.state.previewView.GotoTop()
}

// applyDocument replaces the form with doc and regenerates the preview
func (a *App) applyDocument(doc prompt.Document) {
	a.clearAll()
	for _, s := range doc.Sections() {
		a.state.fields[s.Kind].SetValue(s.Text)
	}
	a.generate()
}

func (a *App) applyLoaded(msg loadedMsg) {
	doc := prompt.Parse(msg.doc.Content, a.state.parseOptions()...)
	a.applyDocument(doc)

	meta := msg.doc.Metadata
	a.state.loaded = &meta
	a.state.currentPath = meta.SourcePath
	a.setStatus("Opened "+meta.Title, false)
	a.log.Info("prompt opened",
		zap.String("path", meta.SourcePath),
		zap.Int64("bytes", meta.FileSizeBytes),
		zap.Int("sections", len(doc.Sections())),
	)
}

func (a *App) clearAll() {
	a.state.doc.Reset()
	for i := range a.state.fields {
		a.state.fields[i].Reset()
	}
	a.state.preview = previewPlaceholder
	a.state.previewView.SetContent(previewPlaceholder)
}

// layout sizes the editor and preview panes to the window
func (a *App) layout() {
	paneWidth := max(20, (a.width-sidebarWidth-8)/2)
	paneHeight := max(5, a.height-6)

	for i := range a.state.fields {
		a.state.fields[i].SetWidth(paneWidth)
		a.state.fields[i].SetHeight(paneHeight - 2)
	}
	a.state.previewView.Width = paneWidth
	a.state.previewView.Height = paneHeight
	a.state.input.Width = min(60, max(20, a.width-10))
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewInput:
		return a.renderInput()
	case viewLibrary:
		return a.renderLibrary()
	case viewTemplates:
		return a.renderTemplates()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderForm()
	}
}
