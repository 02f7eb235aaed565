package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/studiomap"
	"github.com/aretw0/studiomap/internal/overrides"
	"github.com/aretw0/studiomap/internal/presentation/tui"
	"github.com/aretw0/studiomap/pkg/flow"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <trigger-type> <flow-sid>",
	Short: "Render a flow diagram and splice it into a document",
	Long: `Renders the Mermaid flowchart for the given trigger type and replaces the
content between '<!-- {section}-start -->' and '<!-- {section}-end -->'
in the output file. Everything outside the markers is left untouched, and
re-running against an unchanged flow is a no-op.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpdate(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("output", "", "Path of the document to update")
	updateCmd.Flags().String("section", "", "Section identifier binding the marker pair")
	updateCmd.Flags().String("states-file", "", "Friendly-name override file (.json, .yaml or .yml)")
	updateCmd.Flags().Bool("preview", false, "Render the updated document to the terminal")
	updateCmd.MarkFlagRequired("output")
	updateCmd.MarkFlagRequired("section")
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	outputFile, _ := cmd.Flags().GetString("output")
	section, _ := cmd.Flags().GetString("section")

	doc, err := os.ReadFile(outputFile)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	// The full document is computed before anything touches disk, so a
	// splice error never leaves a partially written file.
	updated, err := studiomap.UpdateDocument(string(doc), section, diagram)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	logger.Info("document updated", "file", outputFile, "section", section)

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		render := tui.NewRenderer()
		out, err := render(updated)
		if err != nil {
			return fmt.Errorf("preview render: %w", err)
		}
		fmt.Print(out)
	}
	return nil
}
