package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outputFlags are shared by build, form and library show
type outputFlags struct {
	format string
	out    string
	copy   bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "tagged, clean, preview or yaml (default follows include_markers)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the prompt to this file")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "copy the prompt to the clipboard")
}

// sectionFlag turns a section key into its flag name: main_content -> main-content
func sectionFlag(k prompt.Kind) string {
	return strings.ReplaceAll(k.Key(), "_", "-")
}

func newBuildCmd(app *App) *cobra.Command {
	var (
		output   outputFlags
		fromFile string
		tmpl     string
	)
	sections := make(map[prompt.Kind]*string, len(prompt.Kinds()))

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a prompt from section flags",
		Long: `Build a prompt from one flag per section. A base document can come from
--from-file or --template; section flags then replace individual sections
and an empty flag value clears one. Use "-" as a value to read that section
from stdin.`,
		Example: `  promptsmith build --context "Você é um revisor." --output-format "Markdown"
  promptsmith build --template review --tests - < tests.md --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile != "" && tmpl != "" {
				return fmt.Errorf("--from-file and --template are mutually exclusive")
			}

			var doc prompt.Document
			switch {
			case fromFile != "":
				d, err := app.loadDocument(fromFile)
				if err != nil {
					return err
				}
				doc = d
			case tmpl != "":
				d, err := app.templateDocument(tmpl)
				if err != nil {
					return err
				}
				doc = d
			}

			stdinUsed := false
			for _, k := range prompt.Kinds() {
				if !cmd.Flags().Changed(sectionFlag(k)) {
					continue
				}
				value := *sections[k]
				if value == "-" {
					if stdinUsed {
						return fmt.Errorf("only one section can be read from stdin")
					}
					data, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("reading stdin: %w", err)
					}
					value = string(data)
					stdinUsed = true
				}

				if strings.TrimSpace(value) == "" {
					doc.Clear(k)
				} else {
					doc.Set(k, value)
				}
			}

			text, err := app.render(doc, output.format)
			if err != nil {
				return err
			}
			app.logger().Info("prompt built", zap.Int("sections", len(doc.Sections())), zap.String("format", output.format))
			return app.emit(cmd, text, output.out, output.copy)
		},
	}

	for _, k := range prompt.Kinds() {
		sections[k] = cmd.Flags().String(sectionFlag(k), "", k.Heading())
	}
	cmd.Flags().StringVar(&fromFile, "from-file", "", "start from a prompt file (markdown preview, tagged text or yaml)")
	cmd.Flags().StringVarP(&tmpl, "template", "t", "", "start from a named template")
	output.register(cmd)

	return cmd
}

func (a *App) templateDocument(name string) (prompt.Document, error) {
	if a.Templates == nil {
		return prompt.Document{}, fmt.Errorf("no templates directory configured")
	}
	t, err := a.Templates.Load(name)
	if err != nil {
		return prompt.Document{}, err
	}
	a.logger().Info("template applied", zap.String("name", t.Name))
	return t.Document(a.parseOptions()...), nil
}

func newParseCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Split a prompt file into its sections",
		Long: `Parse a prompt file. Markdown headings such as "## Contexto" select the
section for the lines that follow; text without headings goes to the main
content section.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.loadDocument(args[0])
			if err != nil {
				return err
			}
			return app.print(cmd, doc, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "yaml, tagged, clean or preview")
	return cmd
}
