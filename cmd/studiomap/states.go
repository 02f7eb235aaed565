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

// statesCmd represents the states command
var statesCmd = &cobra.Command{
	Use:   "states <trigger-type> <flow-sid>",
	Short: "Generate a friendly-name override template from a flow",
	Long: `Extracts the states reachable from the given trigger type and writes an
id-keyed template file. Edit the values into friendly names and pass the
file to 'update' or 'graph' via --states-file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStates(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	statesCmd.Flags().String("states-file", "", "Path of the template file to write (.json, .yaml or .yml)")
	statesCmd.MarkFlagRequired("states-file")
}

func runStates(cmd *cobra.Command, args []string) error {
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

	gen := studiomap.New(studiomap.WithLogger(logger))
	template, err := gen.StatesTemplate(def, trigger)
	if err != nil {
		return err
	}

	statesFile, _ := cmd.Flags().GetString("states-file")
	if err := overrides.Save(statesFile, template); err != nil {
		return err
	}

	fmt.Printf("Wrote %d states to %s\n", len(template), statesFile)
	return nil
}
