package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/studiomap/internal/adapters/twilio"
	"github.com/aretw0/studiomap/internal/logging"
)

// newLogger builds the command logger honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// newSource resolves the flow source: a local file when --flow-file is
// set, the Studio API otherwise.
func newSource(cmd *cobra.Command, logger *slog.Logger) (twilio.Source, error) {
	if flowFile, _ := cmd.Flags().GetString("flow-file"); flowFile != "" {
		return twilio.FileSource{Path: flowFile}, nil
	}
	return twilio.NewClient(twilio.WithLogger(logger))
}
