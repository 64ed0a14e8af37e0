// Where: internal/app/app_test.go
// What: Tests for CLI dispatch and exit codes.
// Why: Ensure app.Run wires the workflow and maps failures to non-zero exits.
package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkihara/vitewind/internal/interaction"
	"github.com/mkihara/vitewind/internal/project"
)

func testDeps(t *testing.T, out *bytes.Buffer) (Dependencies, *fakeGenerator, *fakeMaterializer, *fakeRegistrar) {
	t.Helper()
	t.Setenv("VITEWIND_CONFIG_PATH", filepath.Join(t.TempDir(), "config.yaml"))

	workDir := t.TempDir()
	generator := &fakeGenerator{dir: filepath.Join(workDir, "demo-app")}
	materializer := &fakeMaterializer{}
	registrar := &fakeRegistrar{}
	deps := Dependencies{
		WorkDir:  workDir,
		Out:      out,
		Prompter: &mockPrompter{},
		Create: CreateDeps{
			Tools:        fakeChecker{},
			Generator:    generator,
			Materializer: materializer,
			Registrar:    registrar,
		},
	}
	return deps, generator, materializer, registrar
}

func TestRunNewWithArguments(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer
	deps, generator, materializer, registrar := testDeps(t, &out)

	exitCode := Run([]string{"demo-app", "--language", "javascript"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", exitCode, out.String())
	}

	if len(generator.scaffolded) != 1 {
		t.Fatalf("expected one scaffold, got %d", len(generator.scaffolded))
	}
	cfg := generator.scaffolded[0]
	if cfg.Name != "demo-app" || cfg.Language != project.JavaScript {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if len(materializer.ops) != 6 {
		t.Fatalf("expected six materializer ops, got %v", materializer.ops)
	}
	if len(registrar.registered) != 1 {
		t.Fatalf("expected project registration")
	}
	if !strings.Contains(out.String(), "Project ready") {
		t.Fatalf("expected summary block, got:\n%s", out.String())
	}
}

func TestRunNewPromptsWhenInteractive(t *testing.T) {
	stubTerminal(t, true)
	var out bytes.Buffer
	deps, generator, _, _ := testDeps(t, &out)
	deps.Prompter = &mockPrompter{inputValue: "demo-app", selectedValue: "typescript"}

	exitCode := Run([]string{}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", exitCode, out.String())
	}
	if len(generator.scaffolded) != 1 || generator.scaffolded[0].Language != project.TypeScript {
		t.Fatalf("expected prompted typescript config, got %v", generator.scaffolded)
	}
}

func TestRunNewMissingNameWithoutTerminal(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer
	deps, generator, _, _ := testDeps(t, &out)

	exitCode := Run([]string{}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit")
	}
	if len(generator.scaffolded) != 0 {
		t.Fatalf("scaffold must not run without a name")
	}
	if !strings.Contains(out.String(), "project name is required") {
		t.Fatalf("expected actionable message, got:\n%s", out.String())
	}
}

func TestRunNewPrerequisiteFailure(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer
	deps, generator, _, _ := testDeps(t, &out)
	deps.Create.Tools = fakeChecker{err: errors.New("node, npm not found on PATH")}

	exitCode := Run([]string{"demo-app", "--language", "javascript"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit")
	}
	if len(generator.scaffolded) != 0 {
		t.Fatalf("scaffold must not run after prerequisite failure")
	}
	if !strings.Contains(out.String(), "not found on PATH") {
		t.Fatalf("expected prerequisite error, got:\n%s", out.String())
	}
}

func TestRunNewSubprocessFailureStopsRun(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer
	deps, generator, materializer, registrar := testDeps(t, &out)
	generator.installErr = errors.New("exit status 1")

	exitCode := Run([]string{"demo-app", "--language", "javascript"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit")
	}
	if len(materializer.ops) != 0 || len(registrar.registered) != 0 {
		t.Fatalf("later steps must not run after install failure")
	}
	if !strings.Contains(out.String(), "install-dependencies") {
		t.Fatalf("expected failing step in output, got:\n%s", out.String())
	}
}

func TestRunNewCancelled(t *testing.T) {
	stubTerminal(t, true)
	var out bytes.Buffer
	deps, generator, _, _ := testDeps(t, &out)
	deps.Prompter = &mockPrompter{
		inputFn: func(_, _ string, _ func(string) error) (string, error) {
			return "", interaction.ErrCancelled
		},
	}

	exitCode := Run([]string{}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit on cancellation")
	}
	if len(generator.scaffolded) != 0 {
		t.Fatalf("scaffold must not run after cancellation")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Fatalf("expected cancellation marker, got:\n%s", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	deps, _, _, _ := testDeps(t, &out)

	exitCode := Run([]string{"version"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d", exitCode)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunParseError(t *testing.T) {
	var out bytes.Buffer
	deps, _, _, _ := testDeps(t, &out)

	exitCode := Run([]string{"--definitely-not-a-flag"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit for parse error")
	}
}
