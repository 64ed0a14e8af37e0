// Where: internal/scaffold/generator.go
// What: Project generation via the external scaffolding toolchain.
// Why: Keep subprocess sequencing behind a port so workflows stay testable.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkihara/vitewind/internal/meta"
	"github.com/mkihara/vitewind/internal/project"
	"github.com/mkihara/vitewind/internal/shell"
)

// Generator invokes create-vite and installs the dependency sets.
type Generator struct {
	Runner  shell.CommandRunner
	BaseDir string
}

// NewGenerator constructs a Generator rooted at baseDir.
func NewGenerator(runner shell.CommandRunner, baseDir string) Generator {
	return Generator{Runner: runner, BaseDir: baseDir}
}

// Scaffold runs the external generator with the resolved template and
// returns the absolute path of the created project directory.
func (g Generator) Scaffold(ctx context.Context, cfg project.Config) (string, error) {
	out, err := g.Runner.RunOutput(ctx, g.BaseDir, meta.NpmBinary,
		"create", meta.CreateVitePackage, cfg.Name, "--", "--template", cfg.Template)
	if err != nil {
		return "", wrapToolError("scaffold project", err, out)
	}
	abs, err := filepath.Abs(filepath.Join(g.BaseDir, cfg.Name))
	if err != nil {
		return "", err
	}
	return abs, nil
}

// InstallDependencies installs the base dependency set of the generated project.
func (g Generator) InstallDependencies(ctx context.Context, projectDir string) error {
	out, err := g.Runner.RunOutput(ctx, projectDir, meta.NpmBinary, "install")
	if err != nil {
		return wrapToolError("install dependencies", err, out)
	}
	return nil
}

// InstallTailwind installs the CSS tooling trio as dev dependencies.
func (g Generator) InstallTailwind(ctx context.Context, projectDir string) error {
	out, err := g.Runner.RunOutput(ctx, projectDir, meta.NpmBinary,
		"install", "-D", "tailwindcss", "postcss", "autoprefixer")
	if err != nil {
		return wrapToolError("install tailwind", err, out)
	}
	return nil
}

// wrapToolError surfaces the captured subprocess output alongside the failure.
func wrapToolError(label string, err error, out []byte) error {
	detail := strings.TrimSpace(string(out))
	if detail == "" {
		return fmt.Errorf("%s: %w", label, err)
	}
	return fmt.Errorf("%s: %w\n%s", label, err, detail)
}
