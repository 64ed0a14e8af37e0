// Where: internal/workflows/create.go
// What: Create workflow orchestration.
// Why: Keep the CLI command thin while hosting the scaffolding sequence here.
package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkihara/vitewind/internal/ports"
	"github.com/mkihara/vitewind/internal/project"
)

// Step names a stage of the create workflow. Steps run strictly in order;
// the first failure terminates the run with no compensation of earlier steps.
type Step string

const (
	StepPrerequisites  Step = "check-prerequisites"
	StepCollectConfig  Step = "collect-config"
	StepGenerate       Step = "generate-project"
	StepInstallDeps    Step = "install-dependencies"
	StepInstallCSS     Step = "install-tailwind"
	StepInitCSS        Step = "init-tailwind"
	StepWriteConfig    Step = "write-tailwind-config"
	StepWriteStyles    Step = "write-stylesheet"
	StepWriteApp       Step = "write-app-component"
	StepWriteAppStyles Step = "write-app-styles"
	StepWriteReadme    Step = "write-readme"
	StepRegister       Step = "register-project"
)

// StepError wraps a failure with the step it occurred in.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CreateRequest captures the inputs of the create workflow.
type CreateRequest struct {
	Seed ports.CollectSeed
}

// CreateResult contains feedback returned by the workflow.
type CreateResult struct {
	Config     project.Config
	ProjectDir string
	Completed  []Step
}

// CreateWorkflow orchestrates the ports required to scaffold a project.
type CreateWorkflow struct {
	Tools         ports.ToolChecker
	Collector     ports.ConfigCollector
	Generator     ports.ProjectGenerator
	Materializer  ports.FileMaterializer
	Registrar     ports.ProjectRegistrar
	UserInterface ports.UserInterface
}

// NewCreateWorkflow constructs a CreateWorkflow.
func NewCreateWorkflow(tools ports.ToolChecker, collector ports.ConfigCollector,
	generator ports.ProjectGenerator, materializer ports.FileMaterializer,
	registrar ports.ProjectRegistrar, ui ports.UserInterface,
) CreateWorkflow {
	return CreateWorkflow{
		Tools:         tools,
		Collector:     collector,
		Generator:     generator,
		Materializer:  materializer,
		Registrar:     registrar,
		UserInterface: ui,
	}
}

// Run executes the workflow. Each step is a precondition for the next;
// any failure returns a *StepError and leaves whatever is already on disk.
func (w CreateWorkflow) Run(ctx context.Context, req CreateRequest) (CreateResult, error) {
	var result CreateResult

	fail := func(step Step, err error) (CreateResult, error) {
		return result, &StepError{Step: step, Err: err}
	}
	done := func(step Step) {
		result.Completed = append(result.Completed, step)
	}

	if w.Tools == nil {
		return fail(StepPrerequisites, errors.New("tool checker not configured"))
	}
	if err := w.Tools.Check(); err != nil {
		return fail(StepPrerequisites, err)
	}
	done(StepPrerequisites)

	if w.Collector == nil {
		return fail(StepCollectConfig, errors.New("collector not configured"))
	}
	cfg, err := w.Collector.Collect(req.Seed)
	if err != nil {
		return fail(StepCollectConfig, err)
	}
	result.Config = cfg
	done(StepCollectConfig)

	if w.Generator == nil {
		return fail(StepGenerate, errors.New("generator not configured"))
	}
	w.info("Scaffolding %s (%s)...", cfg.Name, cfg.Language.Label())
	projectDir, err := w.Generator.Scaffold(ctx, cfg)
	if err != nil {
		return fail(StepGenerate, err)
	}
	result.ProjectDir = projectDir
	done(StepGenerate)

	w.info("Installing dependencies...")
	if err := w.Generator.InstallDependencies(ctx, projectDir); err != nil {
		return fail(StepInstallDeps, err)
	}
	done(StepInstallDeps)

	if err := w.Generator.InstallTailwind(ctx, projectDir); err != nil {
		return fail(StepInstallCSS, err)
	}
	done(StepInstallCSS)

	if w.Materializer == nil {
		return fail(StepInitCSS, errors.New("materializer not configured"))
	}
	w.info("Configuring Tailwind CSS...")
	if err := w.Materializer.InitTailwind(ctx, projectDir); err != nil {
		return fail(StepInitCSS, err)
	}
	done(StepInitCSS)

	if err := w.Materializer.WriteTailwindConfig(projectDir); err != nil {
		return fail(StepWriteConfig, err)
	}
	done(StepWriteConfig)

	if err := w.Materializer.WriteStylesheet(projectDir); err != nil {
		return fail(StepWriteStyles, err)
	}
	done(StepWriteStyles)

	if err := w.Materializer.WriteAppComponent(projectDir, cfg); err != nil {
		return fail(StepWriteApp, err)
	}
	done(StepWriteApp)

	if err := w.Materializer.WriteAppStyles(projectDir); err != nil {
		return fail(StepWriteAppStyles, err)
	}
	done(StepWriteAppStyles)

	if err := w.Materializer.WriteReadme(projectDir, cfg); err != nil {
		return fail(StepWriteReadme, err)
	}
	done(StepWriteReadme)

	if w.Registrar != nil {
		if err := w.Registrar.Register(cfg, projectDir); err != nil {
			return fail(StepRegister, err)
		}
		done(StepRegister)
	}

	if w.UserInterface != nil {
		w.UserInterface.Block("🎉", "Project ready", []ports.KeyValue{
			{Key: "Name", Value: cfg.Name},
			{Key: "Language", Value: cfg.Language.Label()},
			{Key: "Directory", Value: projectDir},
		})
		w.UserInterface.Info("Next steps:")
		w.UserInterface.Info(fmt.Sprintf("  cd %s", cfg.Name))
		w.UserInterface.Info("  npm run dev")
	}

	return result, nil
}

func (w CreateWorkflow) info(format string, args ...any) {
	if w.UserInterface != nil {
		w.UserInterface.Info(fmt.Sprintf(format, args...))
	}
}
