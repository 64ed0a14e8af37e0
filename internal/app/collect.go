// Where: internal/app/collect.go
// What: Interactive project configuration collection.
// Why: Turn prompt answers (or pre-supplied flags) into an immutable project.Config.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkihara/vitewind/internal/interaction"
	"github.com/mkihara/vitewind/internal/ports"
	"github.com/mkihara/vitewind/internal/project"
)

// configCollector implements ports.ConfigCollector on top of a Prompter.
// Inputs already present in the seed skip their prompt; missing inputs
// on a non-interactive stdin are an error rather than a hang.
type configCollector struct {
	prompter        interaction.Prompter
	baseDir         string
	defaultLanguage project.Language
}

func newConfigCollector(prompter interaction.Prompter, baseDir string, defaultLanguage project.Language) configCollector {
	return configCollector{
		prompter:        prompter,
		baseDir:         baseDir,
		defaultLanguage: defaultLanguage,
	}
}

func (c configCollector) Collect(seed ports.CollectSeed) (project.Config, error) {
	name, err := c.collectName(seed.Name)
	if err != nil {
		return project.Config{}, err
	}

	language, err := c.collectLanguage(seed.Language)
	if err != nil {
		return project.Config{}, err
	}

	return project.NewConfig(name, language, c.baseDir)
}

func (c configCollector) collectName(seeded string) (string, error) {
	if trimmed := strings.TrimSpace(seeded); trimmed != "" {
		// A name passed on the command line is validated once; invalid
		// input is fatal, not re-prompted.
		if err := project.ValidateName(trimmed, c.baseDir); err != nil {
			return "", err
		}
		return trimmed, nil
	}

	if !c.canPrompt() {
		return "", fmt.Errorf("project name is required when no terminal is attached")
	}

	// The prompt library re-asks on validation failure until the input
	// passes or the user aborts.
	return c.prompter.Input("Project name", "my-app", func(value string) error {
		return project.ValidateName(value, c.baseDir)
	})
}

func (c configCollector) collectLanguage(seeded string) (project.Language, error) {
	if strings.TrimSpace(seeded) != "" {
		return project.ParseLanguage(seeded)
	}

	if !c.canPrompt() {
		return c.defaultLanguage, nil
	}

	options := make([]interaction.SelectOption, 0, len(project.Languages()))
	for _, lang := range project.Languages() {
		options = append(options, interaction.SelectOption{
			Label: lang.Label(),
			Value: string(lang),
		})
	}

	selected, err := c.prompter.SelectValue("Language", string(c.defaultLanguage), options)
	if err != nil {
		return "", err
	}
	return project.ParseLanguage(selected)
}

func (c configCollector) canPrompt() bool {
	return c.prompter != nil && interaction.IsTerminal(os.Stdin)
}
