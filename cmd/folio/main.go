package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio document compiler",
	Long:  `Folio turns TOML document descriptions into laid-out pages`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug-level logging")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
			color.NoColor = !isTerminal(os.Stdout)
		default:
			return fmt.Errorf("unsupported --color value %q (must be auto, on or off)", mode)
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
