package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"csspress/internal/config"
	"csspress/internal/ui"
)

const starterProject = `# csspress project file
# Glob patterns selecting stylesheets to minify (supports **)
include = **/*.css

# Patterns excluded from the include set
# exclude = vendor/*

# Directory minified files are written to; leave unset to write next to
# each source file
# output = dist

# Suffix inserted before the .css extension
suffix = .min

# Canonicalize color literals (#aabbcc -> #abc, rgb(0,0,0) -> #000)
colors = true
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter minify.properties",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := os.Getwd()
		if err != nil {
			ui.PrintError("Failed to get current directory: %v", err)
			os.Exit(1)
		}

		if config.Exists(dir) {
			ui.PrintError("%s already exists", config.ProjectFile)
			os.Exit(1)
		}

		path := filepath.Join(dir, config.ProjectFile)
		if err := os.WriteFile(path, []byte(starterProject), 0644); err != nil {
			ui.PrintError("Failed to write %s: %v", config.ProjectFile, err)
			os.Exit(1)
		}

		ui.PrintSuccess("Created %s", config.ProjectFile)
		ui.PrintInfo("Edit it, then run 'csspress build'")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
