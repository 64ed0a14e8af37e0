// Where: cmd/vitewind/main.go
// What: CLI entrypoint.
// Why: Execute the scaffolder with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/mkihara/vitewind/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
