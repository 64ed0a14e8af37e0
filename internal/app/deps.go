// Where: internal/app/deps.go
// What: Injected dependency bundles for CLI command execution.
// Why: Enable swapping subsystem implementations in tests.
package app

import (
	"io"
	"time"

	"github.com/mkihara/vitewind/internal/interaction"
	"github.com/mkihara/vitewind/internal/ports"
)

// Dependencies holds all injected dependencies required for CLI command
// execution.
type Dependencies struct {
	WorkDir  string
	Out      io.Writer
	Prompter interaction.Prompter
	Now      func() time.Time
	Create   CreateDeps
}

// CreateDeps holds only the dependencies required by the new command.
type CreateDeps struct {
	Tools        ports.ToolChecker
	Generator    ports.ProjectGenerator
	Materializer ports.FileMaterializer
	Registrar    ports.ProjectRegistrar
}
