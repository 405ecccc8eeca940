package config

import (
	"path/filepath"
)

// ProjectFile is the name of the project configuration file
const ProjectFile = "minify.properties"

// ProjectConfig represents the minify.properties configuration
type ProjectConfig struct {
	// Glob patterns selecting stylesheets to minify (supports **)
	Include []string

	// Glob patterns excluded from the include set
	Exclude []string

	// Directory minified files are written to; empty means alongside
	// the source file
	Output string

	// Suffix inserted before the .css extension, e.g. style.css ->
	// style.min.css
	Suffix string

	// Canonicalize color literals
	Colors bool
}

// Exists reports whether a minify.properties file is present in dir
func Exists(dir string) bool {
	return FileExists(filepath.Join(dir, ProjectFile))
}

// LoadProject loads the project configuration from dir
func LoadProject(dir string) (*ProjectConfig, error) {
	props, err := ParseProperties(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	cfg := &ProjectConfig{
		Include: props.GetList("include"),
		Exclude: props.GetList("exclude"),
		Output:  props.Get("output"),
		Suffix:  props.GetWithDefault("suffix", ".min"),
		Colors:  props.GetBool("colors", true),
	}
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**/*.css"}
	}

	return cfg, nil
}
