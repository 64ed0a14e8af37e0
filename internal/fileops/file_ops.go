// Where: internal/fileops/file_ops.go
// What: Shared filesystem operations for project materialization.
// Why: Keep behavior consistent and avoid duplicated I/O helper implementations.
package fileops

import (
	"os"
	"path/filepath"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func FileOrDirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
