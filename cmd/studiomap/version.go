package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/studiomap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of studiomap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studiomap version %s\n", strings.TrimSpace(studiomap.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
