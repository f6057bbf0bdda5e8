package prompt

import (
	"errors"
	"fmt"
)

// Kind identifies one of the nine prompt sections. The numeric order is the
// slot order used by every serializer.
type Kind int

const (
	FewShot Kind = iota
	Context
	MainContent
	AuxiliaryContent
	Limitations
	Refactoring
	Guidance
	Tests
	OutputFormat

	numKinds
)

// ErrUnknownKind is returned by ParseKind for keys that name no section.
var ErrUnknownKind = errors.New("unknown section")

type kindInfo struct {
	key       string
	tag       string
	attribute string
	heading   string
}

var kinds = [numKinds]kindInfo{
	FewShot:          {key: "few_shot", tag: "FEW_SHOT", attribute: "content", heading: "Few-Shot Examples"},
	Context:          {key: "context", tag: "CONTEXT", attribute: "description", heading: "Contexto"},
	MainContent:      {key: "main_content", tag: "MAIN_CONTENT", attribute: "instructions", heading: "Conteúdo Principal"},
	AuxiliaryContent: {key: "auxiliary_content", tag: "AUXILIARY_CONTENT", attribute: "data", heading: "Conteúdo Auxiliar"},
	Limitations:      {key: "limitations", tag: "LIMITATIONS", attribute: "text", heading: "Limitações"},
	Refactoring:      {key: "refactoring", tag: "REFACTORING", attribute: "text", heading: "Refatoração (Código)"},
	Guidance:         {key: "guidance", tag: "GUIDANCE", attribute: "text", heading: "Orientações"},
	Tests:            {key: "tests", tag: "TESTS", attribute: "text", heading: "Testes"},
	OutputFormat:     {key: "output_format", tag: "OUTPUT_FORMAT", attribute: "text", heading: "Formato de Saída"},
}

// Kinds returns every section kind in slot order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a snake_case key such as "main_content".
func ParseKind(key string) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if kinds[k].key == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, key)
}

// Valid reports whether k names one of the nine sections.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Key is the snake_case identifier used by flags, YAML and the library.
func (k Kind) Key() string { return k.info().key }

// Tag is the marker name used in <START_TAG>/<END_TAG>.
func (k Kind) Tag() string { return k.info().tag }

// Attribute names the single text field the section carries.
func (k Kind) Attribute() string { return k.info().attribute }

// Heading is the display name used by the preview serializer.
func (k Kind) Heading() string { return k.info().heading }

func (k Kind) String() string { return k.Key() }

func (k Kind) info() kindInfo {
	if !k.Valid() {
		return kindInfo{key: fmt.Sprintf("kind(%d)", int(k))}
	}
	return kinds[k]
}

// Section is one populated slot of a Document.
type Section struct {
	Kind Kind
	Text string
}

// GenerateText renders the section as a tagged block. The text is embedded
// byte for byte, even when empty.
func (s Section) GenerateText() string {
	tag := s.Kind.Tag()
	return "<START_" + tag + ">\n" + s.Text + "\n<END_" + tag + ">\n"
}
