// Where: internal/scaffold/materializer.go
// What: Overwrite generator defaults with the project's fixed files.
// Why: The generated tree ships demo content; the scaffolder replaces it wholesale.
package scaffold

import (
	"context"
	"path/filepath"

	"github.com/mkihara/vitewind/internal/fileops"
	"github.com/mkihara/vitewind/internal/meta"
	"github.com/mkihara/vitewind/internal/project"
	"github.com/mkihara/vitewind/internal/shell"
)

// Materializer writes the tailwind config, stylesheets, demo component,
// and README into a generated project tree. Every write is an unconditional
// overwrite of whatever the generator produced.
type Materializer struct {
	Runner shell.CommandRunner
}

// NewMaterializer constructs a Materializer.
func NewMaterializer(runner shell.CommandRunner) Materializer {
	return Materializer{Runner: runner}
}

// InitTailwind runs the CSS tool's own initializer to produce its
// baseline configuration files (tailwind.config.js, postcss.config.js).
func (m Materializer) InitTailwind(ctx context.Context, projectDir string) error {
	out, err := m.Runner.RunOutput(ctx, projectDir, meta.NpxBinary, "tailwindcss", "init", "-p")
	if err != nil {
		return wrapToolError("init tailwind", err, out)
	}
	return nil
}

// WriteTailwindConfig overwrites tailwind.config.js with the project's
// content globs.
func (m Materializer) WriteTailwindConfig(projectDir string) error {
	content, err := renderTemplate("tailwind.config.js.tmpl", templateData{})
	if err != nil {
		return err
	}
	return fileops.WriteFile(filepath.Join(projectDir, "tailwind.config.js"), content)
}

// WriteStylesheet overwrites the primary stylesheet entry point with the
// tailwind directives.
func (m Materializer) WriteStylesheet(projectDir string) error {
	content, err := renderTemplate("index.css.tmpl", templateData{})
	if err != nil {
		return err
	}
	return fileops.WriteFile(filepath.Join(projectDir, "src", "index.css"), content)
}

// WriteAppComponent overwrites the main application source with the demo
// counter component. The file extension follows the chosen language.
func (m Materializer) WriteAppComponent(projectDir string, cfg project.Config) error {
	content, err := renderTemplate("app.component.tmpl", newTemplateData(cfg))
	if err != nil {
		return err
	}
	name := "App" + cfg.Language.ComponentExt()
	return fileops.WriteFile(filepath.Join(projectDir, "src", name), content)
}

// WriteAppStyles overwrites the secondary stylesheet with fixed rules.
func (m Materializer) WriteAppStyles(projectDir string) error {
	content, err := renderTemplate("app.css.tmpl", templateData{})
	if err != nil {
		return err
	}
	return fileops.WriteFile(filepath.Join(projectDir, "src", "App.css"), content)
}

// WriteReadme writes the README templated with the project name and
// language-derived extensions.
func (m Materializer) WriteReadme(projectDir string, cfg project.Config) error {
	content, err := renderTemplate("readme.md.tmpl", newTemplateData(cfg))
	if err != nil {
		return err
	}
	return fileops.WriteFile(filepath.Join(projectDir, "README.md"), content)
}
