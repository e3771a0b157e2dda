package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/vector"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vecscan version %s (float%d elements)\n", version, vector.ElementWidth*8)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
