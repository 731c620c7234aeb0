// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/roster-reconciler/internal/match"
	"github.com/jonathan/roster-reconciler/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Roster      string            `json:"roster,omitempty"`       // Path to the master roster workbook
	Sources     map[string]string `json:"sources,omitempty"`      // Category tag -> source workbook path
	OutJSON     string            `json:"out_json,omitempty"`     // Where to write the JSON report (optional)
	OutXLSX     string            `json:"out_xlsx,omitempty"`     // Where to write the workbook report (optional)
	SchemaTable string            `json:"schema_table,omitempty"` // External schema-table file (optional)

	// Behavior
	DuplicatePolicy string `json:"duplicate_policy,omitempty"` // last_wins (default) or first_wins
	Parallel        bool   `json:"parallel,omitempty"`         // Read category sources concurrently
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging. Input workbook paths are also not
// checked here: a missing source surfaces through the reader's error
// taxonomy at run time, where category sources are skipped rather than
// fatal.
func (c *Config) Validate() error {
	for key := range c.Sources {
		if _, err := types.ParseTag(key); err != nil {
			return fmt.Errorf("config error: 'sources' key %q: %w", key, err)
		}
	}

	if _, err := match.ParsePolicy(c.DuplicatePolicy); err != nil {
		return fmt.Errorf("config error: 'duplicate_policy': %w", err)
	}

	if c.SchemaTable != "" {
		if _, err := os.Stat(c.SchemaTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema table file not found: %s", c.SchemaTable)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Roster == "" {
		result.Roster = defaults.Roster
	}
	if result.OutJSON == "" {
		result.OutJSON = defaults.OutJSON
	}
	if result.OutXLSX == "" {
		result.OutXLSX = defaults.OutXLSX
	}
	if result.SchemaTable == "" {
		result.SchemaTable = defaults.SchemaTable
	}

	// Map fields: use defaults only when nothing is configured
	if len(result.Sources) == 0 {
		result.Sources = defaults.Sources
	}

	// Duplicate policy: fall back to the reference behavior
	if result.DuplicatePolicy == "" {
		if defaults.DuplicatePolicy != "" {
			result.DuplicatePolicy = defaults.DuplicatePolicy
		} else {
			result.DuplicatePolicy = match.LastWins.String()
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
