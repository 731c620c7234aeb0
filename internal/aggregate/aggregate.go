// Package aggregate summarizes and filters match results. Every function is
// a pure linear scan over its input.
package aggregate

import (
	"strings"

	"github.com/jonathan/roster-reconciler/internal/types"
)

// CountByTag tallies results per category tag. Tags with no results are
// absent from the map.
func CountByTag(results []types.MatchResult) map[types.CategoryTag]int {
	counts := make(map[types.CategoryTag]int)
	for _, result := range results {
		counts[result.Category.Tag]++
	}
	return counts
}

// FilterByTag returns the results whose category matches tag, in input order.
func FilterByTag(results []types.MatchResult, tag types.CategoryTag) []types.MatchResult {
	var filtered []types.MatchResult
	for _, result := range results {
		if result.Category.Tag == tag {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// FilterByName returns the results whose roster name contains needle, in
// input order. An empty needle matches everything.
func FilterByName(results []types.MatchResult, needle string) []types.MatchResult {
	var filtered []types.MatchResult
	for _, result := range results {
		if strings.Contains(result.Student.Name, needle) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// Total returns the number of results.
func Total(results []types.MatchResult) int {
	return len(results)
}
