package template

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"gopkg.in/yaml.v3"
)

// FileName is the file each template directory must contain
const FileName = "TEMPLATE.md"

// ErrNotFound is returned when the index has no template by that name
var ErrNotFound = errors.New("template not found")

// Metadata is the lightweight index entry loaded at startup
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Path        string `yaml:"-"` // Full path to TEMPLATE.md
	DirPath     string `yaml:"-"` // Directory containing the template
}

// Template is the full template loaded on-demand
type Template struct {
	Metadata
	Body string // preview-format body with "## Heading" sections
}

// Document parses the body into a prompt document
func (t *Template) Document(opts ...prompt.ParseOption) prompt.Document {
	return prompt.Parse(t.Body, opts...)
}

// LoadMetadata reads only YAML frontmatter (fast startup)
func LoadMetadata(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var frontmatter strings.Builder
	scanner := bufio.NewScanner(file)
	inFrontmatter := false
	lineCount := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineCount++

		if lineCount == 1 && line == "---" {
			inFrontmatter = true
			continue
		}

		if !inFrontmatter {
			break
		}
		if line == "---" {
			break
		}
		frontmatter.WriteString(line)
		frontmatter.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(frontmatter.String()), &meta); err != nil {
		return nil, fmt.Errorf("parsing frontmatter of %s: %w", path, err)
	}

	meta.Path = path
	meta.DirPath = filepath.Dir(path)

	return &meta, nil
}

// LoadFull reads the entire template including body
func LoadFull(meta *Metadata) (*Template, error) {
	content, err := os.ReadFile(meta.Path)
	if err != nil {
		return nil, err
	}

	return &Template{
		Metadata: *meta,
		Body:     splitBody(string(content)),
	}, nil
}

// splitBody drops a leading "---" frontmatter block. Files without
// frontmatter are all body.
func splitBody(content string) string {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return strings.TrimSpace(content)
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return strings.TrimSpace(content)
	}

	// parts[0] is empty (before first ---)
	// parts[1] is frontmatter
	// parts[2] is body
	return strings.TrimSpace(parts[2])
}
