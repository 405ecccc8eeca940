package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ProjectFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, `# project file
include = css/**/*.css, style.css
exclude = css/vendor/*
output = dist
suffix = .tiny
colors = false
`)

	if !Exists(dir) {
		t.Fatal("Exists returned false for a directory with minify.properties")
	}

	cfg, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject error: %v", err)
	}

	if len(cfg.Include) != 2 || cfg.Include[0] != "css/**/*.css" || cfg.Include[1] != "style.css" {
		t.Errorf("Include = %v", cfg.Include)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "css/vendor/*" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.Output != "dist" {
		t.Errorf("Output = %q, want %q", cfg.Output, "dist")
	}
	if cfg.Suffix != ".tiny" {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, ".tiny")
	}
	if cfg.Colors {
		t.Error("Colors = true, want false")
	}
}

func TestLoadProjectDefaults(t *testing.T) {
	dir := writeProject(t, "# nothing configured\n")

	cfg, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject error: %v", err)
	}

	if len(cfg.Include) != 1 || cfg.Include[0] != "**/*.css" {
		t.Errorf("Include = %v, want the catch-all default", cfg.Include)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want empty", cfg.Output)
	}
	if cfg.Suffix != ".min" {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, ".min")
	}
	if !cfg.Colors {
		t.Error("Colors = false, want true by default")
	}
}

func TestLoadProjectMissing(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists returned true for an empty directory")
	}
	if _, err := LoadProject(dir); err == nil {
		t.Error("LoadProject succeeded without a project file")
	}
}

func TestParseProperties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.properties")
	content := `# comment
name=Test Name
version: 1.0.0
list = a, b , c
flag=true
empty=
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	props, err := ParseProperties(path)
	if err != nil {
		t.Fatalf("ParseProperties error: %v", err)
	}

	if props.Get("name") != "Test Name" {
		t.Errorf("Get(name) = %q", props.Get("name"))
	}
	if props.Get("version") != "1.0.0" {
		t.Errorf("Get(version) = %q", props.Get("version"))
	}
	if props.Get("missing") != "" {
		t.Errorf("Get(missing) = %q, want empty", props.Get("missing"))
	}
	if got := props.GetWithDefault("missing", "fallback"); got != "fallback" {
		t.Errorf("GetWithDefault(missing) = %q", got)
	}
	if list := props.GetList("list"); len(list) != 3 || list[1] != "b" {
		t.Errorf("GetList(list) = %v", list)
	}
	if !props.GetBool("flag", false) {
		t.Error("GetBool(flag) = false, want true")
	}
	if !props.GetBool("absent", true) {
		t.Error("GetBool(absent) with true default = false")
	}
	if props.GetBool("empty", false) {
		t.Error("GetBool(empty) with false default = true")
	}
}
