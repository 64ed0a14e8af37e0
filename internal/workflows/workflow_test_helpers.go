// Where: internal/workflows/workflow_test_helpers.go
// What: Test helpers and stub ports for workflow unit tests.
// Why: Keep workflow tests focused on orchestration behavior without external dependencies.
package workflows

import (
	"context"

	"github.com/mkihara/vitewind/internal/ports"
	"github.com/mkihara/vitewind/internal/project"
)

type testBlock struct {
	title string
	rows  []ports.KeyValue
}

type testUI struct {
	infos     []string
	warns     []string
	successes []string
	blocks    []testBlock
}

func (u *testUI) Info(msg string) {
	u.infos = append(u.infos, msg)
}

func (u *testUI) Warn(msg string) {
	u.warns = append(u.warns, msg)
}

func (u *testUI) Success(msg string) {
	u.successes = append(u.successes, msg)
}

func (u *testUI) Block(_, title string, rows []ports.KeyValue) {
	u.blocks = append(u.blocks, testBlock{title: title, rows: rows})
}

type recordChecker struct {
	called int
	err    error
}

func (r *recordChecker) Check() error {
	r.called++
	return r.err
}

type recordCollector struct {
	seeds []ports.CollectSeed
	cfg   project.Config
	err   error
}

func (r *recordCollector) Collect(seed ports.CollectSeed) (project.Config, error) {
	r.seeds = append(r.seeds, seed)
	if r.err != nil {
		return project.Config{}, r.err
	}
	return r.cfg, nil
}

type recordGenerator struct {
	scaffolded []project.Config
	installed  []string
	tailwinded []string
	dir        string

	scaffoldErr error
	installErr  error
	tailwindErr error
}

func (r *recordGenerator) Scaffold(_ context.Context, cfg project.Config) (string, error) {
	r.scaffolded = append(r.scaffolded, cfg)
	if r.scaffoldErr != nil {
		return "", r.scaffoldErr
	}
	return r.dir, nil
}

func (r *recordGenerator) InstallDependencies(_ context.Context, projectDir string) error {
	r.installed = append(r.installed, projectDir)
	return r.installErr
}

func (r *recordGenerator) InstallTailwind(_ context.Context, projectDir string) error {
	r.tailwinded = append(r.tailwinded, projectDir)
	return r.tailwindErr
}

type recordMaterializer struct {
	ops []string

	initErr     error
	configErr   error
	styleErr    error
	appErr      error
	appStyleErr error
	readmeErr   error
}

func (r *recordMaterializer) InitTailwind(_ context.Context, _ string) error {
	r.ops = append(r.ops, "init")
	return r.initErr
}

func (r *recordMaterializer) WriteTailwindConfig(_ string) error {
	r.ops = append(r.ops, "config")
	return r.configErr
}

func (r *recordMaterializer) WriteStylesheet(_ string) error {
	r.ops = append(r.ops, "stylesheet")
	return r.styleErr
}

func (r *recordMaterializer) WriteAppComponent(_ string, _ project.Config) error {
	r.ops = append(r.ops, "app")
	return r.appErr
}

func (r *recordMaterializer) WriteAppStyles(_ string) error {
	r.ops = append(r.ops, "appstyles")
	return r.appStyleErr
}

func (r *recordMaterializer) WriteReadme(_ string, _ project.Config) error {
	r.ops = append(r.ops, "readme")
	return r.readmeErr
}

type registerCall struct {
	cfg project.Config
	dir string
}

type recordRegistrar struct {
	calls []registerCall
	err   error
}

func (r *recordRegistrar) Register(cfg project.Config, dir string) error {
	r.calls = append(r.calls, registerCall{cfg: cfg, dir: dir})
	return r.err
}

func testProjectConfig() project.Config {
	return project.Config{Name: "demo-app", Language: project.JavaScript, Template: "react"}
}

func testWorkflow() (CreateWorkflow, *recordChecker, *recordCollector, *recordGenerator, *recordMaterializer, *recordRegistrar, *testUI) {
	checker := &recordChecker{}
	collector := &recordCollector{cfg: testProjectConfig()}
	generator := &recordGenerator{dir: "/work/demo-app"}
	materializer := &recordMaterializer{}
	registrar := &recordRegistrar{}
	ui := &testUI{}
	wf := NewCreateWorkflow(checker, collector, generator, materializer, registrar, ui)
	return wf, checker, collector, generator, materializer, registrar, ui
}
