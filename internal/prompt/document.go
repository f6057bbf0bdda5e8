package prompt

import "strings"

// EmptyDocument is returned by the serializers when no section qualifies.
const EmptyDocument = "Nenhum campo foi preenchido ainda."

// PreviewNote closes every non-empty preview.
const PreviewNote = "📋 **Nota:** Ao copiar ou salvar, apenas o texto do prompt será incluído, sem os subtítulos ou marcações acima."

const (
	previewSeparator = "---"
	blockJoin        = "\n\n"
	startMarker      = "<START_"
	endMarker        = "<END_"
)

type slot struct {
	set  bool
	text string
}

// Document holds one optional slot per section kind. The zero value is an
// empty document and copies are independent.
type Document struct {
	slots [numKinds]slot
}

// FromValues builds a document from form input. Values that are blank after
// trimming leave their slot empty; the others are stored untrimmed.
func FromValues(values map[Kind]string) Document {
	var d Document
	for k, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		d.Set(k, v)
	}
	return d
}

// Set populates slot k, replacing any previous value.
func (d *Document) Set(k Kind, text string) {
	if !k.Valid() {
		return
	}
	d.slots[k] = slot{set: true, text: text}
}

// Clear empties slot k.
func (d *Document) Clear(k Kind) {
	if !k.Valid() {
		return
	}
	d.slots[k] = slot{}
}

// Reset empties every slot.
func (d *Document) Reset() {
	*d = Document{}
}

// Get returns the section stored in slot k.
func (d Document) Get(k Kind) (Section, bool) {
	if !k.Valid() || !d.slots[k].set {
		return Section{}, false
	}
	return Section{Kind: k, Text: d.slots[k].text}, true
}

// Text returns the text of slot k, or "" when the slot is empty.
func (d Document) Text(k Kind) string {
	s, _ := d.Get(k)
	return s.Text
}

// Has reports whether slot k is populated.
func (d Document) Has(k Kind) bool {
	return k.Valid() && d.slots[k].set
}

// IsEmpty reports whether no slot is populated.
func (d Document) IsEmpty() bool {
	for _, s := range d.slots {
		if s.set {
			return false
		}
	}
	return true
}

// Sections lists the populated slots in slot order.
func (d Document) Sections() []Section {
	var out []Section
	for k := Kind(0); k < numKinds; k++ {
		if s, ok := d.Get(k); ok {
			out = append(out, s)
		}
	}
	return out
}

// Values returns the populated slots keyed by kind.
func (d Document) Values() map[Kind]string {
	out := make(map[Kind]string)
	for _, s := range d.Sections() {
		out[s.Kind] = s.Text
	}
	return out
}

// Tagged joins the tagged blocks of every populated slot. With
// includeMarkers false the <START_/<END_ lines are dropped and the body lines
// are kept as they are.
func (d Document) Tagged(includeMarkers bool) string {
	var parts []string
	for _, s := range d.Sections() {
		text := s.GenerateText()
		if !includeMarkers {
			text = stripMarkers(text)
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return EmptyDocument
	}
	return strings.Join(parts, blockJoin)
}

// Preview renders the populated, non-blank slots under "## Heading" titles
// followed by a separator and the copy/save note.
func (d Document) Preview() string {
	var parts []string
	for _, s := range d.Sections() {
		body := strings.TrimSpace(s.Text)
		if body == "" {
			continue
		}
		parts = append(parts, "## "+s.Kind.Heading()+blockJoin+body)
	}
	if len(parts) == 0 {
		return EmptyDocument
	}
	parts = append(parts, previewSeparator, PreviewNote)
	return strings.Join(parts, blockJoin)
}

func stripMarkers(text string) string {
	var kept []string
	for _, line := range lines(text) {
		if strings.HasPrefix(line, startMarker) || strings.HasPrefix(line, endMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// lines splits on "\n", drops a trailing "\r" from each line and does not
// yield an empty final line for text ending in a newline.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.Split(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
