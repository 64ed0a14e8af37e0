// Where: internal/app/register.go
// What: Project registration after scaffolding.
// Why: Persist project metadata into global config for later defaults.
package app

import (
	"time"

	"github.com/mkihara/vitewind/internal/config"
	"github.com/mkihara/vitewind/internal/project"
)

// globalRegistrar records created projects in the global config and
// remembers the chosen language as the next default.
type globalRegistrar struct {
	now func() time.Time
}

func newGlobalRegistrar(nowFn func() time.Time) globalRegistrar {
	if nowFn == nil {
		nowFn = time.Now
	}
	return globalRegistrar{now: nowFn}
}

func (r globalRegistrar) Register(cfg project.Config, projectDir string) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	global, err := config.LoadGlobalConfigOrDefault(path)
	if err != nil {
		return err
	}

	global.DefaultLanguage = string(cfg.Language)
	global.Projects[cfg.Name] = config.ProjectEntry{
		Path:     projectDir,
		Language: string(cfg.Language),
		Created:  r.now().Format(time.RFC3339),
	}

	return config.SaveGlobalConfig(path, global)
}
