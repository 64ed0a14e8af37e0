// Where: internal/toolcheck/toolcheck.go
// What: Prerequisite binary detection.
// Why: Fail early with an actionable message when the node toolchain is absent.
package toolcheck

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mkihara/vitewind/internal/meta"
)

// ErrMissingTool marks a prerequisite failure. Callers treat it as fatal.
var ErrMissingTool = errors.New("missing prerequisite")

// lookPath is stubbed in tests.
var lookPath = exec.LookPath

// Checker verifies that the external binaries the scaffolder shells out to
// are present on the host.
type Checker struct {
	Binaries []string
}

// NewChecker returns a Checker covering the default node toolchain.
func NewChecker() Checker {
	return Checker{Binaries: []string{meta.NodeBinary, meta.NpmBinary}}
}

// Check reports every missing binary in a single error.
func (c Checker) Check() error {
	var missing []string
	for _, bin := range c.Binaries {
		if _, err := lookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not found on PATH (install Node.js from https://nodejs.org)",
			ErrMissingTool, strings.Join(missing, ", "))
	}
	return nil
}
