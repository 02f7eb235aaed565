package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/studiomap"
	"github.com/aretw0/studiomap/internal/overrides"
	"github.com/aretw0/studiomap/pkg/flow"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <trigger-type> <flow-sid>",
	Short: "Print a flow's Mermaid diagram to stdout",
	Long:  `Renders the Mermaid flowchart for the given trigger type without touching any document.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGraph(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("states-file", "", "Friendly-name override file (.json, .yaml or .yml)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	trigger, err := flow.ParseTriggerType(args[0])
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	source, err := newSource(cmd, logger)
	if err != nil {
		return err
	}

	def, err := source.FetchDefinition(context.Background(), args[1])
	if err != nil {
		return err
	}

	statesFile, _ := cmd.Flags().GetString("states-file")
	names, err := overrides.Load(statesFile)
	if err != nil {
		return err
	}

	gen := studiomap.New(studiomap.WithLogger(logger))
	diagram, err := gen.Generate(def, trigger, names)
	if err != nil {
		return err
	}

	fmt.Println(diagram)
	return nil
}
