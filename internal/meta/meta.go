// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and layout decisions in one place.
package meta

const (
	// Project Identity
	AppName   = "vitewind"
	EnvPrefix = "VITEWIND"

	// Directory Layout
	HomeDir = ".vitewind"

	// External toolchain binaries the scaffolder drives.
	NodeBinary = "node"
	NpmBinary  = "npm"
	NpxBinary  = "npx"

	// Scaffolding generator package passed to `npm create`.
	CreateVitePackage = "vite@latest"
)
