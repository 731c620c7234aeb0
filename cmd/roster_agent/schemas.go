package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/roster-reconciler/internal/observability"
	"github.com/jonathan/roster-reconciler/internal/registry"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the category schema table",
	Long:  "List every category tag with its source layout: sheets, identifier columns, skip rows, and flags. Loads an external table with --schema-table, otherwise shows the built-in one.",
	RunE:  runSchemas,
}

var schemasTablePath string

func init() {
	schemasCmd.Flags().StringVar(&schemasTablePath, "schema-table", "", "External schema-table JSON overriding built-in layouts")

	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(cmd *cobra.Command, args []string) error {
	table := registry.Builtin()
	if schemasTablePath != "" {
		loaded, err := registry.Load(schemasTablePath)
		if err != nil {
			return fmt.Errorf("failed to load schema table: %w", err)
		}
		table = loaded
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSchemaTable(table)
	return nil
}
