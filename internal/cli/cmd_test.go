package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sant0-9/promptsmith/internal/clipboard"
	"github.com/sant0-9/promptsmith/internal/config"
	"github.com/sant0-9/promptsmith/internal/library"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/template"
	"github.com/sant0-9/promptsmith/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testApp wires an App backed by an in-memory library and temp directories.
func testApp(t *testing.T) (*App, *clipboard.Memory) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PROMPTSMITH_CONFIG_DIR", dir)

	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.TemplatesDir = filepath.Join(dir, "templates")

	db, err := library.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	idx, err := template.NewIndex(cfg.TemplatesDir)
	require.NoError(t, err)

	clip := &clipboard.Memory{}
	return &App{
		Config:        cfg,
		Library:       library.NewStore(db),
		Templates:     idx,
		Clipboard:     clip,
		IsInteractive: func() bool { return false },
	}, clip
}

// executeCmd runs a cobra command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// --- build ---

func TestBuildFormats(t *testing.T) {
	var doc prompt.Document
	doc.Set(prompt.Context, "C")
	doc.Set(prompt.Tests, "T")

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"default is clean", "", doc.Tagged(false)},
		{"clean", "clean", doc.Tagged(false)},
		{"tagged", "tagged", doc.Tagged(true)},
		{"preview", "preview", doc.Preview()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testApp(t)
			args := []string{"build", "--context", "C", "--tests", "T"}
			if tt.format != "" {
				args = append(args, "--format", tt.format)
			}

			out, _, err := executeCmd(t, app, "", args...)
			require.NoError(t, err)
			assert.Equal(t, strings.TrimRight(tt.want, "\n")+"\n", out)
		})
	}
}

func TestBuildDefaultFollowsIncludeMarkers(t *testing.T) {
	app, _ := testApp(t)
	app.Config.IncludeMarkers = true

	out, _, err := executeCmd(t, app, "", "build", "--main-content", "M")
	require.NoError(t, err)
	assert.Equal(t, "<START_MAIN_CONTENT>\nM\n<END_MAIN_CONTENT>\n", out)
}

func TestBuildEmptyDocument(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "", "build", "--context", "   ")
	require.NoError(t, err)
	assert.Equal(t, prompt.EmptyDocument+"\n", out)
}

func TestBuildFromFileWithOverrides(t *testing.T) {
	app, _ := testApp(t)
	path := writeFile(t, "p.md", "## Contexto\n\nC\n\n## Testes\n\nT\n\n## Orientações\n\nG\n")

	out, _, err := executeCmd(t, app, "",
		"build", "--from-file", path, "--tests", "new tests", "--guidance", "", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "context: C\ntests: new tests\n", out)
}

func TestBuildSectionFromStdin(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "line one\nline two\n", "build", "--few-shot", "-", "--format", "tagged")
	require.NoError(t, err)
	assert.Equal(t, "<START_FEW_SHOT>\nline one\nline two\n\n<END_FEW_SHOT>\n", out)
}

func TestBuildFromTemplate(t *testing.T) {
	app, _ := testApp(t)
	var doc prompt.Document
	doc.Set(prompt.Context, "Revisor")
	doc.Set(prompt.OutputFormat, "Lista")
	_, err := template.Save(app.Config.TemplatesDir, "review", "", doc)
	require.NoError(t, err)
	app.Templates, err = template.NewIndex(app.Config.TemplatesDir)
	require.NoError(t, err)

	out, _, err := executeCmd(t, app, "", "build", "--template", "review", "--output-format", "JSON")
	require.NoError(t, err)
	assert.Equal(t, "Revisor\n\nJSON\n", out)
}

func TestBuildWritesFile(t *testing.T) {
	app, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "nested", "prompt.txt")

	out, errOut, err := executeCmd(t, app, "", "build", "--context", "C", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "C", string(data))
}

func TestBuildCopies(t *testing.T) {
	app, clip := testApp(t)

	_, errOut, err := executeCmd(t, app, "", "build", "--context", "C", "--copy", "--format", "tagged")
	require.NoError(t, err)
	assert.Equal(t, "<START_CONTEXT>\nC\n<END_CONTEXT>\n", clip.Text)
	assert.Contains(t, errOut, "Copied")
}

func TestBuildErrors(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := executeCmd(t, app, "", "build", "--format", "html")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = executeCmd(t, app, "", "build", "--from-file", "a", "--template", "b")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, _, err = executeCmd(t, app, "", "build", "--from-file", filepath.Join(t.TempDir(), "absent.md"))
	assert.ErrorContains(t, err, "file not found")

	_, _, err = executeCmd(t, app, "", "build", "--template", "absent")
	assert.ErrorIs(t, err, template.ErrNotFound)
}

// --- parse ---

func TestParseYAMLRoundTrip(t *testing.T) {
	app, _ := testApp(t)
	src := "## Contexto\n\nVocê é um revisor.\nSeja breve.\n\n## Formato de Saída\n\nMarkdown\n"
	path := writeFile(t, "p.md", src)

	out, _, err := executeCmd(t, app, "", "parse", path)
	require.NoError(t, err)

	yamlPath := writeFile(t, "p.yaml", out)
	fromYAML, _, err := executeCmd(t, app, "", "build", "--from-file", yamlPath, "--format", "tagged")
	require.NoError(t, err)

	direct, _, err := executeCmd(t, app, "", "parse", path, "--format", "tagged")
	require.NoError(t, err)
	assert.Equal(t, direct, fromYAML)
	assert.Contains(t, direct, "<START_CONTEXT>\nVocê é um revisor.\nSeja breve.\n<END_CONTEXT>")
}

func TestParseUnstructuredGoesToMainContent(t *testing.T) {
	app, _ := testApp(t)
	path := writeFile(t, "raw.txt", "Just some text.")

	out, _, err := executeCmd(t, app, "", "parse", path, "--format", "tagged")
	require.NoError(t, err)
	assert.Equal(t, "<START_MAIN_CONTENT>\nJust some text.\n<END_MAIN_CONTENT>\n", out)
}

func TestDocumentFromYAMLUnknownKey(t *testing.T) {
	_, err := documentFromYAML([]byte("persona: x\n"))
	assert.ErrorIs(t, err, prompt.ErrUnknownKind)
}

// --- root ---

func TestRootParsesPipedStdin(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "## Limitações\n\nSem rede.\n")
	require.NoError(t, err)
	assert.Equal(t, "Sem rede.\n", out)
}

func TestRootLaunchesEditor(t *testing.T) {
	app, clip := testApp(t)
	app.IsInteractive = func() bool { return true }

	var got tui.Options
	app.RunTUI = func(opts tui.Options) error {
		got = opts
		return nil
	}

	_, _, err := executeCmd(t, app, "", "draft.md")
	require.NoError(t, err)
	assert.Equal(t, "draft.md", got.OpenPath)
	assert.Same(t, app.Config, got.Config)
	assert.Equal(t, clip, got.Clipboard)
	assert.NotNil(t, got.Library)
}

// --- form ---

func TestFormRequiresTerminal(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := executeCmd(t, app, "", "form")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestDocumentFromForm(t *testing.T) {
	values := map[prompt.Kind]*string{}
	for _, k := range prompt.Kinds() {
		v := ""
		values[k] = &v
	}
	*values[prompt.Guidance] = "  G  "
	*values[prompt.Tests] = "\n\t"

	doc := documentFromForm(values)
	assert.Equal(t, []prompt.Section{{Kind: prompt.Guidance, Text: "  G  "}}, doc.Sections())
	assert.NotNil(t, sectionForm(values))
}

// --- library ---

func TestLibraryCommands(t *testing.T) {
	app, _ := testApp(t)
	path := writeFile(t, "p.md", "## Contexto\n\nC\n\n## Testes\n\nT\n")

	out, _, err := executeCmd(t, app, "", "library", "save", "review", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved review (2 sections)")

	_, _, err = executeCmd(t, app, "## Orientações\n\nG\n", "library", "save", "guide")
	require.NoError(t, err)

	out, _, err = executeCmd(t, app, "", "library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "review")
	assert.Contains(t, out, "guide")

	out, _, err = executeCmd(t, app, "", "library", "show", "review", "--format", "tagged")
	require.NoError(t, err)
	assert.Equal(t, "<START_CONTEXT>\nC\n<END_CONTEXT>\n\n\n<START_TESTS>\nT\n<END_TESTS>\n", out)

	out, _, err = executeCmd(t, app, "", "library", "rm", "review")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted review")

	_, _, err = executeCmd(t, app, "", "library", "show", "review")
	assert.ErrorIs(t, err, library.ErrNotFound)
}

func TestLibrarySaveRejectsEmptyInput(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := executeCmd(t, app, "   \n", "library", "save", "blank")
	assert.ErrorContains(t, err, "nothing to save")
}

func TestLibraryEmptyList(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "", "library", "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved prompts.\n", out)
}

func TestLibraryDisabled(t *testing.T) {
	app, _ := testApp(t)
	app.Library = nil

	_, _, err := executeCmd(t, app, "", "library", "list")
	assert.ErrorIs(t, err, errLibraryDisabled)
}

// --- template ---

func TestTemplateCommands(t *testing.T) {
	app, _ := testApp(t)
	path := writeFile(t, "p.md", "## Contexto\n\nRevisor\n")

	out, _, err := executeCmd(t, app, "", "template", "list")
	require.NoError(t, err)
	assert.Equal(t, "No templates found.\n", out)

	out, _, err = executeCmd(t, app, "", "template", "save", "Code Review", path, "-d", "Revisão de PR")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(app.Config.TemplatesDir, "code-review", template.FileName))

	app.Templates, err = template.NewIndex(app.Config.TemplatesDir)
	require.NoError(t, err)

	out, _, err = executeCmd(t, app, "", "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "code-review")
	assert.Contains(t, out, "Revisão de PR")

	out, _, err = executeCmd(t, app, "", "template", "show", "code-review")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "## Contexto\n\nRevisor"))
}

// --- config ---

func TestConfigCommands(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := executeCmd(t, app, "", "config", "path")
	require.NoError(t, err)
	want, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	_, _, err = executeCmd(t, app, "", "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, want)

	_, _, err = executeCmd(t, app, "", "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = executeCmd(t, app, "", "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = executeCmd(t, app, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_file_name: generated_prompt.txt")
	assert.Contains(t, out, "output_dir: "+app.Config.OutputDir)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Name", "N"}, [][]string{{"a", "1"}, {"longer", "22"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Name    N", lines[0])
	assert.Equal(t, "a       1", lines[2])
	assert.Equal(t, "longer  22", lines[3])
	assert.Empty(t, renderTable(nil, nil))
}

func TestVerboseFlagBuildsLogger(t *testing.T) {
	app, _ := testApp(t)

	var gotVerbose bool
	app.NewLogger = func(verbose bool) (*zap.Logger, error) {
		gotVerbose = verbose
		return zap.NewNop(), nil
	}

	_, _, err := executeCmd(t, app, "", "build", "--context", "C", "--verbose")
	require.NoError(t, err)
	assert.True(t, gotVerbose)
	assert.NotNil(t, app.Logger)
}
