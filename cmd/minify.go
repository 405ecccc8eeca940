package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"csspress/internal/minifier"
	"csspress/internal/ui"
)

var (
	minifyOutput string
	minifyStdout bool
	minifyColors bool
)

var minifyCmd = &cobra.Command{
	Use:   "minify <file-or-css>",
	Short: "Minify a stylesheet",
	Long: "Minify a stylesheet. The argument is tried as a file path first; " +
		"if no such file exists it is treated as literal CSS and the result " +
		"is written to stdout.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := minifier.Options{CanonicalizeColors: minifyColors}

		// file path or literal CSS, the way the original include macro
		// resolves its argument
		source := args[0]
		data, err := os.ReadFile(source)
		isFile := err == nil
		if isFile {
			source = string(data)
		}

		result, warnings := minifier.MinifyWithOptions(source, opts)

		if !isFile || minifyStdout {
			// CSS on stdout, diagnostics on stderr
			for _, w := range warnings {
				ui.FprintWarning(os.Stderr, "%s", w.Message)
			}
			fmt.Println(result)
			return
		}

		for _, w := range warnings {
			ui.PrintWarning("%s: %s", args[0], w.Message)
		}

		out := minifyOutput
		if out == "" {
			out = strings.TrimSuffix(args[0], ".css") + ".min.css"
		}
		if err := os.WriteFile(out, []byte(result), 0644); err != nil {
			ui.PrintError("Failed to write %s: %v", out, err)
			os.Exit(1)
		}

		ui.PrintSuccess("%s → %s (%s)", args[0], out, savings(len(source), len(result)))
	},
}

// savings describes the size change of a minification run
func savings(before, after int) string {
	if before == 0 {
		return "0 B"
	}
	pct := 100 * (before - after) / before
	return fmt.Sprintf("%d B → %d B, −%d%%", before, after, pct)
}

func init() {
	minifyCmd.Flags().StringVarP(&minifyOutput, "output", "o", "", "output file (default: <name>.min.css)")
	minifyCmd.Flags().BoolVar(&minifyStdout, "stdout", false, "write the result to stdout")
	minifyCmd.Flags().BoolVar(&minifyColors, "colors", true, "canonicalize color literals")
	rootCmd.AddCommand(minifyCmd)
}
