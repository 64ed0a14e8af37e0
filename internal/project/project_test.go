// Where: internal/project/project_test.go
// What: Tests for project config model and name validation.
// Why: Extension and template selection must stay a pure function of Language.
package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateNameRejectsInvalidPatterns(t *testing.T) {
	baseDir := t.TempDir()
	cases := []string{
		"",
		"   ",
		"-leading-dash",
		"_leading_underscore",
		"has space",
		"has/slash",
		"dot.name",
		"emoji🙂",
	}
	for _, name := range cases {
		if err := ValidateName(name, baseDir); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestValidateNameAcceptsIdentifiers(t *testing.T) {
	baseDir := t.TempDir()
	cases := []string{"demo-app", "App2", "9lives", "snake_case", "a"}
	for _, name := range cases {
		if err := ValidateName(name, baseDir); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", name, err)
		}
	}
}

func TestValidateNameRejectsExistingDirectory(t *testing.T) {
	baseDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(baseDir, "demo-app"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := ValidateName("demo-app", baseDir)
	if err == nil {
		t.Fatalf("expected existing directory to be rejected")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLanguageDerivations(t *testing.T) {
	cases := []struct {
		language     Language
		label        string
		scriptExt    string
		componentExt string
		template     string
	}{
		{JavaScript, "JavaScript", ".js", ".jsx", "react"},
		{TypeScript, "TypeScript", ".ts", ".tsx", "react-ts"},
	}
	for _, tc := range cases {
		if got := tc.language.Label(); got != tc.label {
			t.Fatalf("%s label: got %s", tc.language, got)
		}
		if got := tc.language.ScriptExt(); got != tc.scriptExt {
			t.Fatalf("%s script ext: got %s", tc.language, got)
		}
		if got := tc.language.ComponentExt(); got != tc.componentExt {
			t.Fatalf("%s component ext: got %s", tc.language, got)
		}
		if got := tc.language.ViteTemplate(); got != tc.template {
			t.Fatalf("%s template: got %s", tc.language, got)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"javascript", JavaScript},
		{"JS", JavaScript},
		{" TypeScript ", TypeScript},
		{"ts", TypeScript},
	}
	for _, tc := range cases {
		got, err := ParseLanguage(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseLanguage("cobol"); err == nil {
		t.Fatalf("expected unsupported language error")
	}
}

func TestNewConfigDerivesTemplate(t *testing.T) {
	cfg, err := NewConfig("demo-app", TypeScript, t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Template != "react-ts" {
		t.Fatalf("unexpected template: %s", cfg.Template)
	}
	if cfg.Name != "demo-app" {
		t.Fatalf("unexpected name: %s", cfg.Name)
	}
}

func TestNewConfigRejectsInvalidName(t *testing.T) {
	if _, err := NewConfig("bad name", JavaScript, t.TempDir()); err == nil {
		t.Fatalf("expected invalid name to be rejected")
	}
}
