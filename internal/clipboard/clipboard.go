// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard is not available on this system")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to Copier.
type CopierFunc func(text string) error

func (f CopierFunc) Copy(text string) error { return f(text) }

type system struct{}

// System returns a Copier backed by the platform clipboard
// (pbcopy, xclip/xsel/wl-copy, or the Windows API).
func System() Copier {
	return system{}
}

func (system) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
