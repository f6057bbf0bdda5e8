package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	tdir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(tdir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tdir, FileName), []byte(content), 0644))
}

func TestNewIndex(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "review", "---\nname: code-review\ndescription: Revisão de PR\n---\n\n## Contexto\n\nRevisor\n")
	writeTemplate(t, dir, "bare", "## Testes\n\nT\n")
	writeTemplate(t, dir, "broken", "---\nname: [oops\n---\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.md"), []byte("x"), 0644))

	idx, err := NewIndex(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Count())
	assert.Equal(t, dir, idx.Dir())

	var names []string
	for _, m := range idx.List() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"bare", "code-review"}, names)

	meta, err := idx.Get("code-review")
	require.NoError(t, err)
	assert.Equal(t, "Revisão de PR", meta.Description)
	assert.Equal(t, filepath.Join(dir, "review"), meta.DirPath)
}

func TestNewIndexMissingDir(t *testing.T) {
	idx, err := NewIndex(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Zero(t, idx.Count())
	assert.Empty(t, idx.List())
}

func TestIndexGetNotFound(t *testing.T) {
	idx, err := NewIndex(t.TempDir())
	require.NoError(t, err)

	_, err = idx.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadTemplateDocument(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "review", "---\nname: review\n---\n\n## Contexto\n\nVocê é um revisor.\n\n## Formato de Saída\n\nLista\n\n---\n\nnota\n")

	idx, err := NewIndex(dir)
	require.NoError(t, err)

	tmpl, err := idx.Load("review")
	require.NoError(t, err)

	doc := tmpl.Document()
	assert.Equal(t, "Você é um revisor.", doc.Text(prompt.Context))
	assert.Equal(t, "Lista", doc.Text(prompt.OutputFormat))
	assert.Len(t, doc.Sections(), 2)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	var doc prompt.Document
	doc.Set(prompt.MainContent, "Gere testes")
	doc.Set(prompt.Tests, "go test ./...")

	saved, err := Save(dir, "Unit Tests_Go", "gera testes: table driven", doc)
	require.NoError(t, err)
	assert.Equal(t, "unit-tests-go", saved.Name)
	assert.FileExists(t, filepath.Join(dir, "unit-tests-go", FileName))

	idx, err := NewIndex(dir)
	require.NoError(t, err)

	tmpl, err := idx.Load("unit-tests-go")
	require.NoError(t, err)
	assert.Equal(t, "gera testes: table driven", tmpl.Description)
	assert.Equal(t, doc, tmpl.Document())
}

func TestSaveValidation(t *testing.T) {
	var doc prompt.Document
	doc.Set(prompt.Context, "x")

	_, err := Save(t.TempDir(), "!!!", "", doc)
	assert.Error(t, err)

	_, err = Save(t.TempDir(), "ok", "", prompt.Document{})
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"Code Review":      "code-review",
		"  extract_dates ": "extract-dates",
		"a--b":             "a-b",
		"Revisão":          "reviso",
		"-x-":              "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeName(in), in)
	}
}
