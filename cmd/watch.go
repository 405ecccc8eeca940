package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"csspress/internal/config"
	"csspress/internal/project"
	"csspress/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for changes and rebuild",
	Long:  "Watch the project's stylesheets and re-run build whenever one changes",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintHeader(Version)

		dir, err := os.Getwd()
		if err != nil {
			ui.PrintError("Failed to get current directory: %v", err)
			os.Exit(1)
		}

		if !config.Exists(dir) {
			ui.PrintError("No %s found in current directory", config.ProjectFile)
			os.Exit(1)
		}

		ui.PrintInfo("Watching for changes...")
		ui.PrintInfo("Press Ctrl+C to stop")
		fmt.Println()

		lastMod := time.Now()
		debounce := 500 * time.Millisecond

		for {
			time.Sleep(500 * time.Millisecond)

			changed, newMod := hasChanges(dir, lastMod)
			if !changed {
				continue
			}
			if time.Since(newMod) < debounce {
				continue
			}
			lastMod = time.Now()

			fmt.Println()
			ui.PrintInfo("Changes detected, rebuilding...")
			fmt.Println()

			build := exec.Command(os.Args[0], "build", "--quiet")
			build.Stdout = os.Stdout
			build.Stderr = os.Stderr
			build.Dir = dir
			build.Run()

			fmt.Println()
			ui.PrintInfo("Watching for changes...")
		}
	},
}

// hasChanges polls the watched set: every matched source file plus the
// project file itself. The config is reloaded each round so edits to it
// take effect without restarting.
func hasChanges(dir string, since time.Time) (bool, time.Time) {
	var latestMod time.Time
	changed := false

	checkFile := func(path string) {
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if info.ModTime().After(since) {
			changed = true
		}
		if info.ModTime().After(latestMod) {
			latestMod = info.ModTime()
		}
	}

	checkFile(filepath.Join(dir, config.ProjectFile))

	cfg, err := config.LoadProject(dir)
	if err != nil {
		return changed, latestMod
	}
	files, err := project.Expand(dir, cfg.Include, cfg.Exclude)
	if err != nil {
		return changed, latestMod
	}
	for _, rel := range files {
		// build outputs match the include globs too; watching them
		// would rebuild forever
		if strings.HasSuffix(rel, cfg.Suffix+".css") {
			continue
		}
		checkFile(filepath.Join(dir, rel))
	}

	return changed, latestMod
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
