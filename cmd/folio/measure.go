package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/docfile"
	"folio/internal/layout"
	"folio/internal/model"
	"folio/internal/world"
)

var measureCmd = &cobra.Command{
	Use:   "measure <file>",
	Short: "Report a document's natural size",
	Long:  "Lay a document out in an unbounded region and report its natural width and height.",
	Args:  cobra.ExactArgs(1),
	RunE:  measureExecution,
}

func init() {
	measureCmd.Flags().String("config", "", "style configuration file (TOML)")
}

func measureExecution(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	w := world.Builtin()
	if configPath != "" {
		lib, err := world.LoadLibrary(configPath)
		if err != nil {
			return err
		}
		w = world.NewWorld(lib)
	}

	content, err := docfile.Load(args[0])
	if err != nil {
		return err
	}
	size, err := layout.Measure(w, content, model.StyleChain{})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s x %s\n", size.W, size.H)
	return nil
}
