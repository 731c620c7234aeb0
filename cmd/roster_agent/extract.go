package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/roster-reconciler/internal/extract"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract records from a single workbook",
	Long:  "Extract records from one source in isolation: either the master roster or a single category source. Useful when an agency changes a layout and the schema table needs adjusting.",
	RunE:  runExtract,
}

var (
	extractRoster   string
	extractSource   string
	extractCategory string
	extractTable    string
	extractOut      string
)

func init() {
	extractCmd.Flags().StringVar(&extractRoster, "roster", "", "Path to the master roster workbook (mutually exclusive with --source)")
	extractCmd.Flags().StringVar(&extractSource, "source", "", "Path to a category source workbook (requires --category)")
	extractCmd.Flags().StringVar(&extractCategory, "category", "", "Category tag or label for --source")
	extractCmd.Flags().StringVar(&extractTable, "schema-table", "", "External schema-table JSON overriding built-in layouts")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write extracted records as JSON to this path")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Validate mutually exclusive flags
	if extractRoster == "" && extractSource == "" {
		return fmt.Errorf("either --roster or --source must be provided")
	}
	if extractRoster != "" && extractSource != "" {
		return fmt.Errorf("--roster and --source are mutually exclusive; provide only one")
	}

	var records interface{}
	var count int

	if extractRoster != "" {
		rosterRecords, err := extract.Roster(extractRoster)
		if err != nil {
			return fmt.Errorf("failed to extract roster: %w", err)
		}
		records = rosterRecords
		count = len(rosterRecords)
	} else {
		if extractCategory == "" {
			return fmt.Errorf("--category is required with --source")
		}
		tag, err := types.ParseTag(extractCategory)
		if err != nil {
			return err
		}
		table := registry.Builtin()
		if extractTable != "" {
			table, err = registry.Load(extractTable)
			if err != nil {
				return fmt.Errorf("failed to load schema table: %w", err)
			}
		}
		schema, err := table.SchemaFor(tag)
		if err != nil {
			return err
		}
		categoryRecords, err := extract.CategoryWithSchema(extractSource, tag, schema)
		if err != nil {
			return fmt.Errorf("failed to extract category source: %w", err)
		}
		records = categoryRecords
		count = len(categoryRecords)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d records\n", count)

	if extractOut != "" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		if err := os.WriteFile(extractOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Records: %s\n", extractOut)
	}

	return nil
}
