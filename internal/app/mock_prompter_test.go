// Where: internal/app/mock_prompter_test.go
// What: Test helper prompter for interaction-dependent command tests.
// Why: Provide deterministic input/select behavior without a TTY.
package app

import "github.com/mkihara/vitewind/internal/interaction"

type mockPrompter struct {
	inputFn       func(title, placeholder string, validate func(string) error) (string, error)
	selectValueFn func(title, selected string, options []interaction.SelectOption) (string, error)

	// Convenience fields for recording/controlling answers
	inputValue    string
	selectedValue string
	lastTitle     string
	lastOptions   []interaction.SelectOption
	lastSelected  string
}

func (m *mockPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	m.lastTitle = title
	if m.inputFn != nil {
		return m.inputFn(title, placeholder, validate)
	}
	if validate != nil {
		if err := validate(m.inputValue); err != nil {
			return "", err
		}
	}
	return m.inputValue, nil
}

func (m *mockPrompter) SelectValue(title, selected string, options []interaction.SelectOption) (string, error) {
	m.lastTitle = title
	m.lastSelected = selected
	m.lastOptions = options
	if m.selectValueFn != nil {
		return m.selectValueFn(title, selected, options)
	}
	if m.selectedValue != "" {
		return m.selectedValue, nil
	}
	return selected, nil
}
