package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsmith/internal/document"
	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/sant0-9/promptsmith/internal/tui/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	formatTagged  = "tagged"
	formatClean   = "clean"
	formatPreview = "preview"
	formatYAML    = "yaml"
)

// render serializes doc. An empty format follows include_markers.
func (a *App) render(doc prompt.Document, format string) (string, error) {
	if format == "" {
		format = formatClean
		if a.config().IncludeMarkers {
			format = formatTagged
		}
	}

	switch format {
	case formatTagged:
		return doc.Tagged(true), nil
	case formatClean:
		return doc.Tagged(false), nil
	case formatPreview:
		return doc.Preview(), nil
	case formatYAML:
		return documentYAML(doc)
	default:
		return "", fmt.Errorf("unknown format %q (want tagged, clean, preview or yaml)", format)
	}
}

// print writes the rendered document to stdout
func (a *App) print(cmd *cobra.Command, doc prompt.Document, format string) error {
	text, err := a.render(doc, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
	return nil
}

// emit sends text to a file, the clipboard, or stdout when neither is asked
// for. Status lines go to stderr so stdout stays pipeable.
func (a *App) emit(cmd *cobra.Command, text, out string, copyText bool) error {
	if out == "" && !copyText {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
		return nil
	}

	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(out), err)
		}
		if err := document.SaveToPath(text, out); err != nil {
			return err
		}
		a.logger().Info("prompt saved", zap.String("path", out), zap.Int("bytes", len(text)))
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Success.Render("Saved to "+out))
	}

	if copyText {
		if a.Clipboard == nil {
			return fmt.Errorf("no clipboard available")
		}
		if err := a.Clipboard.WriteText(text); err != nil {
			return err
		}
		a.logger().Info("prompt copied", zap.Int("bytes", len(text)))
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Success.Render("Copied to clipboard"))
	}
	return nil
}

// documentYAML maps section keys to text in slot order
func documentYAML(doc prompt.Document) (string, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range doc.Sections() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Kind.Key()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Text},
		)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return string(out), nil
}

// documentFromYAML reads a key -> text mapping as written by documentYAML
func documentFromYAML(data []byte) (prompt.Document, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return prompt.Document{}, fmt.Errorf("parsing yaml: %w", err)
	}

	var doc prompt.Document
	for key, text := range raw {
		k, err := prompt.ParseKind(key)
		if err != nil {
			return prompt.Document{}, err
		}
		doc.Set(k, text)
	}
	return doc, nil
}

// loadDocument reads path as YAML (.yaml, .yml) or as prompt text
func (a *App) loadDocument(path string) (prompt.Document, error) {
	src, err := document.Load(path)
	if err != nil {
		return prompt.Document{}, err
	}
	a.logger().Info("prompt file loaded",
		zap.String("path", src.Metadata.SourcePath),
		zap.Int64("bytes", src.Metadata.FileSizeBytes),
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return documentFromYAML([]byte(src.Content))
	default:
		return prompt.Parse(src.Content, a.parseOptions()...), nil
	}
}

// renderTable renders an aligned table with a header separator line.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	const colGap = 2
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	header := styles.Brand

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return header.Render(s) })

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, func(s string) string { return styles.Muted.Render(s) })

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
