// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt.
// Callers check it with errors.Is and never import the TUI library directly.
var ErrCancelled = errors.New("cancelled")

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title, placeholder string, validate func(string) error) (string, error)
	SelectValue(title, selected string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
