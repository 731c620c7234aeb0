// Package schemas carries the JSON Schema documents for externally supplied
// configuration files, embedded so validation needs no filesystem lookup.
package schemas

import _ "embed"

// CategoryTable is the JSON Schema for external schema-table files
// (--schema-table).
//
//go:embed category_table.schema.json
var CategoryTable string
