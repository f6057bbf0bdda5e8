package prompt

import "strings"

const structuredMarker = "## "

// headerPrefixes maps the accepted "## " header prefixes to their section.
// Matching is case sensitive; "## Few-shot" is kept for files written by
// older builds.
var headerPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"## Few-Shot", FewShot},
	{"## Few-shot", FewShot},
	{"## Contexto", Context},
	{"## Conteúdo Principal", MainContent},
	{"## Conteúdo Auxiliar", AuxiliaryContent},
	{"## Limitações", Limitations},
	{"## Refatoração", Refactoring},
	{"## Orientações", Guidance},
	{"## Testes", Tests},
	{"## Formato de Saída", OutputFormat},
}

// terminators end a structured scan: the preview separator and the note glyph.
var terminators = []string{previewSeparator, "📋"}

type parseOptions struct {
	strictHeadings       bool
	distributeParagraphs bool
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithStrictHeadings only accepts a header line equal to a full heading, so
// "## Contexto Extra" no longer opens the Context section.
func WithStrictHeadings() ParseOption {
	return func(o *parseOptions) { o.strictHeadings = true }
}

// WithParagraphDistribution spreads undecorated multi-paragraph text over
// several sections instead of putting it all into MainContent.
func WithParagraphDistribution() ParseOption {
	return func(o *parseOptions) { o.distributeParagraphs = true }
}

// Parse rebuilds a document from text produced by Preview or typed by hand.
// It never fails: unknown content is dropped or attributed to the section
// that is currently open.
func Parse(text string, opts ...ParseOption) Document {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if strings.Contains(text, structuredMarker) {
		return parseStructured(text, o)
	}

	trimmed := strings.TrimSpace(text)
	var d Document
	if trimmed == "" {
		return d
	}
	if o.distributeParagraphs {
		return distributeParagraphs(trimmed)
	}
	d.Set(MainContent, trimmed)
	return d
}

func parseStructured(text string, o parseOptions) Document {
	var (
		d       Document
		current Kind
		open    bool
		body    strings.Builder
	)

	flush := func() {
		if !open {
			return
		}
		if v := strings.TrimSpace(body.String()); v != "" {
			d.Set(current, v)
		}
	}

scan:
	for _, raw := range lines(text) {
		line := strings.TrimSpace(raw)

		if k, ok := matchHeader(line, o.strictHeadings); ok {
			flush()
			current, open = k, true
			body.Reset()
			continue
		}

		for _, t := range terminators {
			if strings.HasPrefix(line, t) {
				break scan
			}
		}

		if line == "" || !open {
			continue
		}
		if body.Len() > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(line)
	}

	flush()
	return d
}

func matchHeader(line string, strict bool) (Kind, bool) {
	if !strings.HasPrefix(line, structuredMarker) {
		return 0, false
	}
	if strict {
		for k := Kind(0); k < numKinds; k++ {
			if line == structuredMarker+k.Heading() {
				return k, true
			}
		}
		return 0, false
	}
	for _, h := range headerPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return h.kind, true
		}
	}
	return 0, false
}

var (
	contextHints  = []string{"você é", "assistente", "especializado"}
	guidanceHints = []string{"sempre", "quando", "use"}
)

// contextMinLen is the byte length a leading paragraph must exceed before it
// is considered a persona description.
const contextMinLen = 200

func distributeParagraphs(text string) Document {
	var d Document

	var paragraphs []string
	for _, p := range strings.Split(text, blockJoin) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}

	if len(paragraphs) == 1 {
		d.Set(MainContent, paragraphs[0])
		return d
	}

	for i, p := range paragraphs {
		switch i {
		case 0:
			if len(p) > contextMinLen && containsAny(p, contextHints) {
				d.Set(Context, p)
			} else {
				d.Set(MainContent, p)
			}
		case 1:
			if !d.Has(MainContent) {
				d.Set(MainContent, p)
			} else {
				d.Set(AuxiliaryContent, p)
			}
		case 2:
			if containsAny(p, guidanceHints) {
				d.Set(Guidance, p)
			} else {
				d.Set(AuxiliaryContent, p)
			}
		default:
			if aux := d.Text(AuxiliaryContent); aux != "" {
				p = aux + blockJoin + p
			}
			d.Set(AuxiliaryContent, p)
		}
	}
	return d
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
