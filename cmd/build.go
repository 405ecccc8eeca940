package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"csspress/internal/config"
	"csspress/internal/minifier"
	"csspress/internal/project"
	"csspress/internal/ui"
)

var buildQuiet bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Minify every stylesheet in the project",
	Long:  "Minify every stylesheet matched by minify.properties in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if !buildQuiet {
			ui.PrintHeader(Version)
		}

		dir, err := os.Getwd()
		if err != nil {
			ui.PrintError("Failed to get current directory: %v", err)
			os.Exit(1)
		}

		if !config.Exists(dir) {
			ui.PrintError("No %s found in current directory", config.ProjectFile)
			ui.PrintInfo("Run 'csspress init' to create one")
			os.Exit(1)
		}

		cfg, err := config.LoadProject(dir)
		if err != nil {
			ui.PrintError("Failed to load %s: %v", config.ProjectFile, err)
			os.Exit(1)
		}

		if err := runBuild(dir, cfg); err != nil {
			for _, e := range multierr.Errors(err) {
				ui.PrintError("%v", e)
			}
			os.Exit(1)
		}

		if !buildQuiet {
			fmt.Println()
			ui.PrintSuccess("Build complete!")
		}
	},
}

// runBuild minifies every matched file, collecting per-file failures
// instead of stopping at the first one.
func runBuild(dir string, cfg *config.ProjectConfig) error {
	files, err := project.Expand(dir, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("expanding include patterns: %w", err)
	}

	var errs error
	minified := 0
	for _, rel := range files {
		if !strings.HasSuffix(rel, ".css") || strings.HasSuffix(rel, cfg.Suffix+".css") {
			continue
		}
		if err := buildFile(dir, rel, cfg); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		minified++
	}

	if !buildQuiet {
		fmt.Println()
		ui.PrintKeyValue("Stylesheets", fmt.Sprintf("%d", minified))
	}
	return errs
}

func buildFile(dir, rel string, cfg *config.ProjectConfig) error {
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}

	result, warnings := minifier.MinifyWithOptions(string(data), minifier.Options{
		CanonicalizeColors: cfg.Colors,
	})
	for _, w := range warnings {
		ui.PrintWarning("%s: %s", rel, w.Message)
	}

	out := outputPath(rel, cfg)
	if err := os.MkdirAll(filepath.Dir(filepath.Join(dir, out)), 0755); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	if err := os.WriteFile(filepath.Join(dir, out), []byte(result), 0644); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	if !buildQuiet {
		ui.PrintKeyValue(rel, fmt.Sprintf("%s (%s)", out, savings(len(data), len(result))))
	}
	return nil
}

// outputPath places the minified file in the configured output directory,
// or next to its source, with the configured suffix before the extension.
func outputPath(rel string, cfg *config.ProjectConfig) string {
	name := strings.TrimSuffix(filepath.Base(rel), ".css") + cfg.Suffix + ".css"
	if cfg.Output != "" {
		return filepath.Join(cfg.Output, name)
	}
	return filepath.Join(filepath.Dir(rel), name)
}

func init() {
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "only print warnings and errors")
	rootCmd.AddCommand(buildCmd)
}
