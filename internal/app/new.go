// Where: internal/app/new.go
// What: Handler for the new command.
// Why: Wire the create workflow and translate its outcome to an exit code.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/mkihara/vitewind/internal/config"
	"github.com/mkihara/vitewind/internal/interaction"
	"github.com/mkihara/vitewind/internal/ports"
	"github.com/mkihara/vitewind/internal/project"
	"github.com/mkihara/vitewind/internal/ui"
	"github.com/mkihara/vitewind/internal/workflows"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	collector := newConfigCollector(deps.Prompter, deps.WorkDir, promptDefaultLanguage())

	registrar := deps.Create.Registrar
	if registrar == nil {
		registrar = newGlobalRegistrar(deps.Now)
	}

	workflow := workflows.NewCreateWorkflow(
		deps.Create.Tools,
		collector,
		deps.Create.Generator,
		deps.Create.Materializer,
		registrar,
		ports.NewConsoleUI(out),
	)

	seed := ports.CollectSeed{Name: cli.New.Name, Language: cli.New.Language}
	_, err := workflow.Run(context.Background(), workflows.CreateRequest{Seed: seed})
	if err != nil {
		return reportCreateError(out, err)
	}
	return 0
}

// promptDefaultLanguage preselects the language last chosen by the user.
func promptDefaultLanguage() project.Language {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return project.DefaultLanguage
	}
	cfg, err := config.LoadGlobalConfigOrDefault(path)
	if err != nil {
		return project.DefaultLanguage
	}
	lang, err := project.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		return project.DefaultLanguage
	}
	return lang
}

// reportCreateError maps workflow failures to output markers. Every failure
// kind is fatal; nothing is retried or rolled back.
func reportCreateError(out io.Writer, err error) int {
	console := ui.New(out)

	var stepErr *workflows.StepError
	switch {
	case errors.Is(err, interaction.ErrCancelled):
		console.Warn("Cancelled.")
	case errors.As(err, &stepErr):
		console.Error(stepErr.Error())
	default:
		console.Error(err.Error())
	}
	return 1
}
