// Package main implements the folio CLI.
package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger creates a logger with timestamp formatting, writing to w and
// filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// commandLogger builds the logger for one command invocation, honoring
// the persistent --verbose flag.
func commandLogger(cmd *cobra.Command) (*log.Logger, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return newLogger(cmd.ErrOrStderr(), level), nil
}
