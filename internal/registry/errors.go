package registry

import (
	"fmt"

	"github.com/jonathan/roster-reconciler/internal/types"
)

// SchemaUnknownError reports a lookup for a tag outside the closed category
// set. It marks a configuration bug, not a data problem.
type SchemaUnknownError struct {
	Tag types.CategoryTag
}

func (e *SchemaUnknownError) Error() string {
	return fmt.Sprintf("no schema registered for category %q", string(e.Tag))
}

// TableLoadError reports a failure to read, parse, or validate an external
// schema-table file.
type TableLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TableLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema table %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema table %s: %s", e.Path, e.Message)
}

func (e *TableLoadError) Unwrap() error {
	return e.Cause
}
