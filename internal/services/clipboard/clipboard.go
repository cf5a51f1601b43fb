// Package clipboard places command output on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable reports that no clipboard utility could be found on this system.
var ErrUnavailable = errors.New("clipboard is not available on this system")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	unsupported bool
	write       func(text string) error
}

// NewService constructs a Service bound to the platform clipboard.
func NewService() *Service {
	return &Service{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

// Copy replaces the clipboard contents with text.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return ErrUnavailable
	}
	if writeError := service.write(text); writeError != nil {
		return fmt.Errorf("write clipboard: %w", writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
