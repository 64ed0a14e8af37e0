// Where: internal/project/project.go
// What: Project configuration model and validation.
// Why: Keep name/language rules in one place, independent of prompting.
package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mkihara/vitewind/internal/fileops"
)

// Language selects the flavor of the generated project.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// DefaultLanguage is the preselected language in the interactive prompt.
const DefaultLanguage = JavaScript

// Languages lists the supported languages in prompt order.
func Languages() []Language {
	return []Language{JavaScript, TypeScript}
}

// ParseLanguage converts user-supplied text into a Language.
func ParseLanguage(value string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(JavaScript), "js":
		return JavaScript, nil
	case string(TypeScript), "ts":
		return TypeScript, nil
	default:
		return "", fmt.Errorf("unsupported language %q (expected javascript or typescript)", value)
	}
}

// Label returns the human-readable language name.
func (l Language) Label() string {
	if l == TypeScript {
		return "TypeScript"
	}
	return "JavaScript"
}

// ScriptExt returns the plain source extension for the language.
func (l Language) ScriptExt() string {
	if l == TypeScript {
		return ".ts"
	}
	return ".js"
}

// ComponentExt returns the JSX-capable source extension for the language.
func (l Language) ComponentExt() string {
	if l == TypeScript {
		return ".tsx"
	}
	return ".jsx"
}

// ViteTemplate returns the create-vite template identifier for the language.
func (l Language) ViteTemplate() string {
	if l == TypeScript {
		return "react-ts"
	}
	return "react"
}

// Config is the immutable result of the interactive prompt.
// It drives every downstream scaffolding step.
type Config struct {
	Name     string
	Language Language
	Template string
}

// NewConfig validates the inputs against baseDir and derives the
// generator template.
func NewConfig(name string, language Language, baseDir string) (Config, error) {
	if err := ValidateName(name, baseDir); err != nil {
		return Config{}, err
	}
	return Config{
		Name:     strings.TrimSpace(name),
		Language: language,
		Template: language.ViteTemplate(),
	}, nil
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateName checks a candidate project name against the identifier rules
// and rejects names whose target directory already exists under baseDir.
func ValidateName(name, baseDir string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("project name is required")
	}
	if !namePattern.MatchString(trimmed) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '-' and '_', starting with a letter or digit", trimmed)
	}
	if fileops.FileOrDirExists(filepath.Join(baseDir, trimmed)) {
		return fmt.Errorf("directory %q already exists", trimmed)
	}
	return nil
}
