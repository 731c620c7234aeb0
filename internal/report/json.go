// Package report writes run results to files: a JSON payload for downstream
// tooling and a plain workbook for staff who review matches by hand.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jonathan/roster-reconciler/internal/types"
)

// SourceFailure records one category source that could not be read.
type SourceFailure struct {
	Tag   types.CategoryTag `json:"category"`
	Path  string            `json:"path"`
	Error string            `json:"error"`
}

// Payload is the JSON export: run identity, per-category counts, failed
// sources, and the full match list.
type Payload struct {
	RunID       string                    `json:"run_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Roster      string                    `json:"roster"`
	Total       int                       `json:"total"`
	Counts      map[types.CategoryTag]int `json:"counts"`
	Failed      []SourceFailure           `json:"failed_sources,omitempty"`
	Results     []types.MatchResult       `json:"results"`
}

// WriteJSON writes the payload as indented JSON.
func WriteJSON(path string, payload *Payload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}
