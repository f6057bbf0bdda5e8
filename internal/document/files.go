package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is appended to titles by SaveToDir
const Extension = ".txt"

// SaveToPath writes text to path as raw bytes, replacing any existing file.
func SaveToPath(text, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty file path")
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SaveToDir writes text to dir/title.txt, creating dir when needed, and
// returns the full path written.
func SaveToDir(text, dir, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", errors.New("empty title")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, title+Extension)
	if err := SaveToPath(text, path); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads the whole file at path. The content is returned unmodified.
func Load(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	return &Document{
		Content: content,
		Metadata: Metadata{
			Title:         titleFromPath(absPath),
			SourcePath:    absPath,
			FileSizeBytes: info.Size(),
			WordCount:     len(strings.Fields(content)),
			ModifiedAt:    info.ModTime(),
		},
	}, nil
}
