package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/source"
)

var groupsInput string

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the groups of a SQLite collection",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsInput, "input", "i", "", "database path (default source.database_path)")
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path := groupsInput
	if path == "" {
		path = cfg.Source.DatabasePath
	}
	if path == "" {
		return fmt.Errorf("no database: pass --input or set source.database_path")
	}
	db, err := source.OpenSQLite(path, cfg.Source)
	if err != nil {
		return err
	}
	defer db.Close()

	groups, err := db.Groups(cmd.Context())
	if err != nil {
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), g); err != nil {
			return err
		}
	}
	return nil
}
