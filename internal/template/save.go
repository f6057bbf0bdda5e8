package template

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"gopkg.in/yaml.v3"
)

var (
	invalidNameChars = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphens  = regexp.MustCompile(`-+`)
)

// Save writes doc as dir/<name>/TEMPLATE.md and returns the stored template.
// The name is sanitized to lowercase words joined by hyphens.
func Save(dir, name, description string, doc prompt.Document) (*Template, error) {
	name = SanitizeName(name)
	if name == "" {
		return nil, errors.New("template name is required")
	}
	if doc.IsEmpty() {
		return nil, errors.New("template has no sections")
	}

	templateDir := filepath.Join(dir, name)
	if err := os.MkdirAll(templateDir, 0755); err != nil {
		return nil, err
	}

	tmpl := &Template{
		Metadata: Metadata{
			Name:        name,
			Description: description,
			Path:        filepath.Join(templateDir, FileName),
			DirPath:     templateDir,
		},
		Body: doc.Preview(),
	}

	frontmatter, err := yaml.Marshal(tmpl.Metadata)
	if err != nil {
		return nil, err
	}

	content := "---\n" + string(frontmatter) + "---\n\n" + tmpl.Body + "\n"
	if err := os.WriteFile(tmpl.Path, []byte(content), 0644); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// SanitizeName turns "Code Review_v2" into "code-review-v2"
func SanitizeName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(strings.TrimSpace(name))
	// Replace spaces and underscores with hyphens
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	// Remove invalid characters
	name = invalidNameChars.ReplaceAllString(name, "")
	// Remove multiple hyphens
	name = repeatedHyphens.ReplaceAllString(name, "-")
	// Trim hyphens from ends
	return strings.Trim(name, "-")
}
