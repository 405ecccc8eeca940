package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csspress/internal/ui"
	"csspress/internal/version"
)

// Version is set by ldflags during build
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "csspress",
	Short: "CSS minifier for build-time embedding",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n" + ui.VersionLine(Version) + "\n\n" + ui.Divider() + "\n\n  Minifies CSS: whitespace, comments, redundant semicolons and color literals"
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		v := Version
		if v == "dev" && version.IsGitRepo(".") {
			if gv, err := version.GetFromGit("."); err == nil {
				v = gv.String()
			}
		}
		fmt.Printf("csspress %s\n", v)
	},
}
