package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToDir(t *testing.T) {
	tests := []struct {
		name    string
		content string
		title   string
	}{
		{name: "plain", content: "Este é um teste de prompt", title: "teste_prompt"},
		{name: "empty content", content: "", title: "empty_prompt"},
		{name: "special characters", content: "Texto com acentos: açúcar, coração, não\nE caracteres especiais: @#$%&*()", title: "special_chars"},
		{name: "multiline", content: "Linha 1\nLinha 2\nLinha 3\n\nLinha 5 após linha vazia", title: "multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			path, err := SaveToDir(tt.content, dir, tt.title)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.title+".txt"), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestSaveToDirCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "directory")

	path, err := SaveToDir("conteúdo", dir, "nested_test")
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.FileExists(t, path)
}

func TestSaveToDirEmptyTitle(t *testing.T) {
	_, err := SaveToDir("x", t.TempDir(), "  ")
	assert.Error(t, err)
}

func TestSaveToPathOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite_test.txt")

	require.NoError(t, SaveToPath("Primeiro conteúdo", path))
	require.NoError(t, SaveToPath("Segundo conteúdo", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Segundo conteúdo", string(data))
}

func TestSaveToPathLargeContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large_content.txt")
	large := strings.Repeat("Linha de texto ", 1000)

	require.NoError(t, SaveToPath(large, path))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, large, doc.Content)
	assert.Equal(t, 3000, doc.Metadata.WordCount)
}

func TestSaveToPathMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "file.txt")

	err := SaveToPath("Teste com caminho inválido", path)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestSaveToPathEmptyPath(t *testing.T) {
	assert.Error(t, SaveToPath("x", ""))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.txt")
	content := "## Contexto\n\nRevisor\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, content, doc.Content)
	assert.Equal(t, "review", doc.Metadata.Title)
	assert.Equal(t, int64(len(content)), doc.Metadata.FileSizeBytes)
	assert.Equal(t, 3, doc.Metadata.WordCount)
	assert.True(t, filepath.IsAbs(doc.Metadata.SourcePath))
	assert.False(t, doc.Metadata.ModifiedAt.IsZero())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFileSizeHuman(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "0 B"},
		{size: 1023, want: "1023 B"},
		{size: 1536, want: "1.5 KB"},
		{size: 3 * 1024 * 1024, want: "3.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Metadata{FileSizeBytes: tt.size}.FileSizeHuman())
	}
}
