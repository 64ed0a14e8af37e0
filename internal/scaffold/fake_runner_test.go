// Where: internal/scaffold/fake_runner_test.go
// What: Recording CommandRunner fake for scaffold tests.
// Why: Exercise subprocess sequencing without touching npm.
package scaffold

import (
	"context"
	"fmt"
	"strings"
)

type recordedCall struct {
	dir  string
	name string
	args []string
}

func (c recordedCall) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

type fakeRunner struct {
	calls   []recordedCall
	failOn  string // substring of the rendered command that should fail
	failErr error
	output  []byte
}

func (f *fakeRunner) record(dir, name string, args []string) error {
	call := recordedCall{dir: dir, name: name, args: args}
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(call.String(), f.failOn) {
		if f.failErr != nil {
			return f.failErr
		}
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := f.record(dir, name, args); err != nil {
		return f.output, err
	}
	return f.output, nil
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}
