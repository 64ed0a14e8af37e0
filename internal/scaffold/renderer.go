// Where: internal/scaffold/renderer.go
// What: Render the fixed project files from embedded templates.
// Why: Keep template text out of Go source and reuse one rendering path.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mkihara/vitewind/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// templateData is the single data shape passed to every project template.
type templateData struct {
	Name         string
	Label        string
	ScriptExt    string
	ComponentExt string
}

func newTemplateData(cfg project.Config) templateData {
	return templateData{
		Name:         cfg.Name,
		Label:        cfg.Language.Label(),
		ScriptExt:    cfg.Language.ScriptExt(),
		ComponentExt: cfg.Language.ComponentExt(),
	}
}

func renderTemplate(name string, data templateData) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(name).
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
