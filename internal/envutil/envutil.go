// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/mkihara/vitewind/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the app prefix with the given suffix.
// Example: HostEnvKey("CONFIG_PATH") returns "VITEWIND_CONFIG_PATH".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("CONFIG_PATH") returns the value of VITEWIND_CONFIG_PATH.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
