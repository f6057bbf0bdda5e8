package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility exists on the host
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places plain text on a clipboard
type Writer interface {
	WriteText(text string) error
}

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, Win32)
type System struct{}

// NewSystem returns the OS clipboard writer
func NewSystem() System {
	return System{}
}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function to Writer
type Func func(text string) error

func (f Func) WriteText(text string) error {
	return f(text)
}

// Memory keeps the last written text; used where no OS clipboard exists
type Memory struct {
	Text   string
	Writes int
}

func (m *Memory) WriteText(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
