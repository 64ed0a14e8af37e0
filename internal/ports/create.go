// Where: internal/ports/create.go
// What: Port interfaces consumed by the create workflow.
// Why: Keep the workflow testable with record fakes instead of real subprocesses.
package ports

import (
	"context"

	"github.com/mkihara/vitewind/internal/project"
)

// ToolChecker verifies external prerequisites before any work starts.
type ToolChecker interface {
	Check() error
}

// CollectSeed carries pre-supplied answers into the prompt flow.
// Empty fields are asked interactively.
type CollectSeed struct {
	Name     string
	Language string
}

// ConfigCollector produces a validated project configuration,
// prompting for whatever the seed leaves blank.
type ConfigCollector interface {
	Collect(seed CollectSeed) (project.Config, error)
}

// ProjectGenerator drives the external scaffolding generator and the
// package installer.
type ProjectGenerator interface {
	Scaffold(ctx context.Context, cfg project.Config) (string, error)
	InstallDependencies(ctx context.Context, projectDir string) error
	InstallTailwind(ctx context.Context, projectDir string) error
}

// FileMaterializer rewrites the generated project's template files.
type FileMaterializer interface {
	InitTailwind(ctx context.Context, projectDir string) error
	WriteTailwindConfig(projectDir string) error
	WriteStylesheet(projectDir string) error
	WriteAppComponent(projectDir string, cfg project.Config) error
	WriteAppStyles(projectDir string) error
	WriteReadme(projectDir string, cfg project.Config) error
}

// ProjectRegistrar persists metadata about created projects.
type ProjectRegistrar interface {
	Register(cfg project.Config, projectDir string) error
}
