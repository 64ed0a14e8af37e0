// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.vitewind/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mkihara/vitewind/internal/envutil"
	"github.com/mkihara/vitewind/internal/meta"
	"gopkg.in/yaml.v3"
)

const (
	hostSuffixConfigPath = "CONFIG_PATH"
	hostSuffixConfigHome = "CONFIG_HOME"
)

// GlobalConfig represents the ~/.vitewind/config.yaml global configuration.
// It tracks the preferred language and every project the tool has created.
type GlobalConfig struct {
	Version         int                     `yaml:"version"`
	DefaultLanguage string                  `yaml:"default_language,omitempty"`
	Projects        map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// ProjectEntry stores a created project's directory path, language,
// and creation timestamp.
type ProjectEntry struct {
	Path     string `yaml:"path"`
	Language string `yaml:"language,omitempty"`
	Created  string `yaml:"created"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects VITEWIND_CONFIG_PATH and VITEWIND_CONFIG_HOME overrides.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(hostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(hostSuffixConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads, validates, and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	if err := validateGlobalConfig(payload); err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault falls back to a default config when the file
// does not exist yet.
func LoadGlobalConfigOrDefault(path string) (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
