// Package match joins category records against an index of the master
// roster, keyed by normalized identifier.
package match

import (
	"fmt"

	"github.com/jonathan/roster-reconciler/internal/types"
)

// DuplicatePolicy decides which roster row wins when several rows share one
// normalized identifier. The roster itself is never deduplicated; the policy
// only picks the row the index keeps.
type DuplicatePolicy int

const (
	// LastWins keeps the roster row appearing last, the reference behavior.
	LastWins DuplicatePolicy = iota
	// FirstWins keeps the roster row appearing first.
	FirstWins
)

// String returns the policy's configuration spelling.
func (p DuplicatePolicy) String() string {
	switch p {
	case FirstWins:
		return "first_wins"
	default:
		return "last_wins"
	}
}

// ParsePolicy reads a policy from its configuration spelling. The empty
// string selects the default.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "last_wins":
		return LastWins, nil
	case "first_wins":
		return FirstWins, nil
	default:
		return LastWins, fmt.Errorf("unknown duplicate policy %q (want last_wins or first_wins)", s)
	}
}

// Index is a read-only lookup from normalized identifier to roster record.
// Build it once, then share it freely: matching never mutates it.
type Index map[string]types.RosterRecord

// BuildIndex builds the roster lookup in a single pass.
func BuildIndex(roster []types.RosterRecord, policy DuplicatePolicy) Index {
	index := make(Index, len(roster))
	for _, record := range roster {
		if policy == FirstWins {
			if _, exists := index[record.ID]; exists {
				continue
			}
		}
		index[record.ID] = record
	}
	return index
}

// Match returns one result per candidate whose identifier is present in the
// index, preserving candidate order. Candidates that miss are silently
// excluded.
func Match(index Index, candidates []types.CategoryRecord) []types.MatchResult {
	var results []types.MatchResult
	for _, candidate := range candidates {
		student, ok := index[candidate.ID]
		if !ok {
			continue
		}
		results = append(results, types.MatchResult{Student: student, Category: candidate})
	}
	return results
}

// MatchAll builds the index and matches in one call.
func MatchAll(roster []types.RosterRecord, candidates []types.CategoryRecord, policy DuplicatePolicy) []types.MatchResult {
	return Match(BuildIndex(roster, policy), candidates)
}
