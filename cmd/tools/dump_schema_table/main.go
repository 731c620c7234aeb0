// Command dump_schema_table writes the built-in category schema table as JSON.
//
// The output is a valid starting point for the run command's --schema-table
// flag: when an agency changes its spreadsheet layout, dump the table, edit
// the entry that drifted, and pass the file back in.
//
// Usage:
//
//	go run cmd/tools/dump_schema_table/main.go [path]
//
// Writes to stdout when no path is given.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
)

func main() {
	table := registry.Builtin()

	entries := make(map[types.CategoryTag]registry.CategorySchema, len(table.Tags()))
	for _, tag := range table.Tags() {
		schema, err := table.SchemaFor(tag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		entries[tag] = schema
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to encode table: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if len(os.Args) > 1 {
		if err := os.WriteFile(os.Args[1], data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d schemas to %s\n", len(entries), os.Args[1])
		return
	}

	_, _ = os.Stdout.Write(data)
}
