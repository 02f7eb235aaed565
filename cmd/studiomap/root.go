package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studiomap",
	Short: "Studiomap keeps Mermaid diagrams of Studio flows embedded in your docs",
	Long: `Studiomap renders Twilio Studio flows as Mermaid flowcharts and splices
them into Markdown documents between marker comments, so flow diagrams
stay current without hand-editing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("flow-file", "", "Read the flow definition from a local JSON export instead of the Studio API")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
