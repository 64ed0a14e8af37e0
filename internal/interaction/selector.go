// Where: internal/interaction/selector.go
// What: Interactive prompt helpers using the huh library.
// Why: Provide keyboard-based input and selection with built-in validation loops.
package interaction

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var input string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&input)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := field.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title, selected string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return selected, nil
}

// mapPromptErr translates huh abort errors into the package sentinel.
func mapPromptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
