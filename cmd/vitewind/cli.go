// Where: cmd/vitewind/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/mkihara/vitewind/internal/app"
	"github.com/mkihara/vitewind/internal/interaction"
	"github.com/mkihara/vitewind/internal/scaffold"
	"github.com/mkihara/vitewind/internal/shell"
	"github.com/mkihara/vitewind/internal/toolcheck"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI:
// the subprocess runner, tool checker, generator, and materializer.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	runner := shell.ExecRunner{}
	deps := app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Now:      time.Now,
		Create: app.CreateDeps{
			Tools:        toolcheck.NewChecker(),
			Generator:    scaffold.NewGenerator(runner, workDir),
			Materializer: scaffold.NewMaterializer(runner),
		},
	}

	return deps, nil
}
