package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csspress/internal/inspect"
	"csspress/internal/ui"
)

var (
	inspectFormat  string
	inspectVerbose bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a stylesheet",
	Long:  "Tokenize a stylesheet and report rule, selector, declaration and color counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			ui.PrintError("Failed to read %s: %v", args[0], err)
			os.Exit(1)
		}

		log := zap.NewNop()
		if inspectVerbose {
			if dev, err := zap.NewDevelopment(); err == nil {
				log = dev
			}
		}

		report := inspect.New(log).Inspect(data, args[0])

		switch inspectFormat {
		case "yaml":
			out, err := report.YAML()
			if err != nil {
				ui.PrintError("Failed to render report: %v", err)
				os.Exit(1)
			}
			fmt.Print(out)
		case "text":
			fmt.Println(ui.Header(args[0]))
			ui.PrintKeyValue("Bytes", fmt.Sprintf("%d", report.Bytes))
			ui.PrintKeyValue("Rules", fmt.Sprintf("%d", report.Rules))
			ui.PrintKeyValue("At-rules", fmt.Sprintf("%d", report.AtRules))
			ui.PrintKeyValue("Selectors", fmt.Sprintf("%d", report.Selectors))
			ui.PrintKeyValue("Declarations", fmt.Sprintf("%d", report.Declarations))
			ui.PrintKeyValue("Colors", fmt.Sprintf("%d", report.Colors))
			for _, w := range report.Warnings {
				ui.PrintWarning("%s", w)
			}
		default:
			ui.PrintError("Unknown format %q, use text or yaml", inspectFormat)
			os.Exit(1)
		}
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "output format: text or yaml")
	inspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(inspectCmd)
}
