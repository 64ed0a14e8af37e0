// Where: internal/app/fake_ports_test.go
// What: Record fakes for the create workflow ports.
// Why: Exercise app.Run wiring without subprocesses or real file writes.
package app

import (
	"context"

	"github.com/mkihara/vitewind/internal/project"
)

type fakeChecker struct {
	err error
}

func (f fakeChecker) Check() error { return f.err }

type fakeGenerator struct {
	dir         string
	scaffolded  []project.Config
	scaffoldErr error
	installErr  error
}

func (f *fakeGenerator) Scaffold(_ context.Context, cfg project.Config) (string, error) {
	f.scaffolded = append(f.scaffolded, cfg)
	if f.scaffoldErr != nil {
		return "", f.scaffoldErr
	}
	return f.dir, nil
}

func (f *fakeGenerator) InstallDependencies(_ context.Context, _ string) error {
	return f.installErr
}

func (f *fakeGenerator) InstallTailwind(_ context.Context, _ string) error {
	return nil
}

type fakeMaterializer struct {
	ops []string
}

func (f *fakeMaterializer) InitTailwind(_ context.Context, _ string) error {
	f.ops = append(f.ops, "init")
	return nil
}

func (f *fakeMaterializer) WriteTailwindConfig(_ string) error {
	f.ops = append(f.ops, "config")
	return nil
}

func (f *fakeMaterializer) WriteStylesheet(_ string) error {
	f.ops = append(f.ops, "stylesheet")
	return nil
}

func (f *fakeMaterializer) WriteAppComponent(_ string, _ project.Config) error {
	f.ops = append(f.ops, "app")
	return nil
}

func (f *fakeMaterializer) WriteAppStyles(_ string) error {
	f.ops = append(f.ops, "appstyles")
	return nil
}

func (f *fakeMaterializer) WriteReadme(_ string, _ project.Config) error {
	f.ops = append(f.ops, "readme")
	return nil
}

type fakeRegistrar struct {
	registered []project.Config
	err        error
}

func (f *fakeRegistrar) Register(cfg project.Config, _ string) error {
	f.registered = append(f.registered, cfg)
	return f.err
}
