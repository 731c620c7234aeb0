package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/roster-reconciler/internal/types"
	"github.com/jonathan/roster-reconciler/schemas"
)

// Load reads an external schema-table file and overlays its entries onto the
// built-in table. An entry replaces the built-in layout for its tag; tags the
// file does not mention keep the deployed layout. Unknown tags and malformed
// entries are rejected outright: a bad table is a configuration bug, and half
// a table must never run.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TableLoadError{Path: path, Message: "cannot read file", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.CategoryTable),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &TableLoadError{Path: path, Message: "schema validation failed during load", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("validation failed:")
		for i, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			sb.WriteString(fmt.Sprintf(" %d. %s: %s", i+1, field, desc.Description()))
		}
		return nil, &TableLoadError{Path: path, Message: sb.String()}
	}

	var entries map[string]CategorySchema
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &TableLoadError{Path: path, Message: "cannot parse file", Cause: err}
	}

	table := Builtin()
	for key, schema := range entries {
		tag, err := types.ParseTag(key)
		if err != nil {
			return nil, &TableLoadError{Path: path, Message: fmt.Sprintf("entry %q", key), Cause: err}
		}
		if err := schema.Validate(); err != nil {
			return nil, &TableLoadError{Path: path, Message: fmt.Sprintf("entry %q", key), Cause: err}
		}
		table.schemas[tag] = schema
	}
	return table, nil
}
