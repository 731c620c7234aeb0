// Package pipeline provides the high-level orchestration for a reconciliation run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/roster-reconciler/internal/aggregate"
	"github.com/jonathan/roster-reconciler/internal/extract"
	"github.com/jonathan/roster-reconciler/internal/match"
	"github.com/jonathan/roster-reconciler/internal/observability"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/report"
	"github.com/jonathan/roster-reconciler/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
}

// ProgressFunc is called when pipeline progress occurs
type ProgressFunc func(event ProgressEvent)

// Step names reported through ProgressFunc.
const (
	StepRoster  = "roster"
	StepSources = "sources"
	StepMatch   = "match"
	StepReports = "reports"
)

// Options holds configuration for running the pipeline
type Options struct {
	RosterPath string
	Sources    map[types.CategoryTag]string
	Table      *registry.Table // nil selects the built-in table
	OutJSON    string
	OutXLSX    string
	Policy     match.DuplicatePolicy
	Parallel   bool
	Verbose    bool
	OnProgress ProgressFunc
}

// SourceStatus records the outcome of reading one category source.
type SourceStatus struct {
	Tag     types.CategoryTag `json:"category"`
	Path    string            `json:"path"`
	Records int               `json:"records"`
	Err     error             `json:"-"`
}

// Outcome carries everything a run produced.
type Outcome struct {
	RunID   uuid.UUID
	Results []types.MatchResult
	Counts  map[types.CategoryTag]int
	Sources []SourceStatus
	Failed  []SourceStatus
}

// sourceRead pairs a status with the extracted rows; only the status outlives
// the matching step.
type sourceRead struct {
	status  SourceStatus
	records []types.CategoryRecord
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, runID uuid.UUID, step, category, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
		})
	}
}

// Run orchestrates the full reconciliation pipeline: load the master roster,
// read every configured category source, join on normalized identifiers, and
// write the requested reports. The roster is mandatory; a category source
// that cannot be read is recorded in Outcome.Failed and skipped.
func Run(ctx context.Context, opts Options) (*Outcome, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	runID := uuid.New()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run %s\n", runID)
	}

	table := opts.Table
	if table == nil {
		table = registry.Builtin()
	}
	if opts.Verbose {
		printer.PrintSchemaTable(table)
	}

	// Step 1: the master roster is mandatory; failure aborts the run.
	fmt.Printf("Step 1/4: Loading master roster from %s...\n", opts.RosterPath)
	roster, err := extract.Roster(opts.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("roster extraction failed: %w", err)
	}
	fmt.Printf("Loaded %d students.\n", len(roster))
	if opts.Verbose {
		printer.PrintRoster(opts.RosterPath, roster)
	}
	emitProgress(&opts, runID, StepRoster, "",
		fmt.Sprintf("Loaded %d students from %s", len(roster), filepath.Base(opts.RosterPath)))

	// Step 2: read the category sources in schema-table order. Map iteration
	// order must never leak into candidate order.
	ordered := orderedTags(table, opts.Sources)
	fmt.Printf("Step 2/4: Reading %d category sources...\n", len(ordered))
	reads := make([]sourceRead, len(ordered))
	if opts.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		for i, tag := range ordered {
			i, tag := i, tag
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				// Each goroutine writes only its own slot.
				reads[i] = readSource(table, tag, opts.Sources[tag])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, tag := range ordered {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			reads[i] = readSource(table, tag, opts.Sources[tag])
		}
	}

	var candidates []types.CategoryRecord
	var sources, failed []SourceStatus
	for _, read := range reads {
		status := read.status
		if status.Err != nil {
			fmt.Printf("Warning: skipping %s: %v\n", status.Tag.Label(), status.Err)
			failed = append(failed, status)
			emitProgress(&opts, runID, StepSources, status.Tag.String(),
				fmt.Sprintf("Skipped: %v", status.Err))
			continue
		}
		fmt.Printf("  %s: %d records (%s)\n", status.Tag.Label(), status.Records, filepath.Base(status.Path))
		sources = append(sources, status)
		candidates = append(candidates, read.records...)
		emitProgress(&opts, runID, StepSources, status.Tag.String(),
			fmt.Sprintf("Read %d records", status.Records))
	}

	// Step 3: join candidates against the roster index.
	fmt.Printf("Step 3/4: Matching %d candidate records against %d students...\n", len(candidates), len(roster))
	index := match.BuildIndex(roster, opts.Policy)
	results := match.Match(index, candidates)
	counts := aggregate.CountByTag(results)
	fmt.Printf("Matched %d of %d candidate records.\n", len(results), len(candidates))
	if opts.Verbose {
		printer.PrintMatches(results)
		printer.PrintCategoryCounts(counts)
		printer.PrintFailures(reportFailures(failed))
	}
	emitProgress(&opts, runID, StepMatch, "",
		fmt.Sprintf("Matched %d of %d candidate records", len(results), len(candidates)))

	// Step 4: write reports when asked.
	if opts.OutJSON == "" && opts.OutXLSX == "" {
		fmt.Printf("Step 4/4: No report paths configured, skipping write.\n")
	} else {
		fmt.Printf("Step 4/4: Writing reports...\n")
		if opts.OutJSON != "" {
			payload := &report.Payload{
				RunID:       runID.String(),
				GeneratedAt: time.Now().UTC(),
				Roster:      opts.RosterPath,
				Total:       aggregate.Total(results),
				Counts:      counts,
				Failed:      reportFailures(failed),
				Results:     results,
			}
			if err := report.WriteJSON(opts.OutJSON, payload); err != nil {
				return nil, fmt.Errorf("writing JSON report failed: %w", err)
			}
			fmt.Printf("  JSON report: %s\n", opts.OutJSON)
			emitProgress(&opts, runID, StepReports, "", "Wrote JSON report "+opts.OutJSON)
		}
		if opts.OutXLSX != "" {
			if err := report.WriteWorkbook(opts.OutXLSX, results); err != nil {
				return nil, fmt.Errorf("writing workbook report failed: %w", err)
			}
			fmt.Printf("  Workbook report: %s\n", opts.OutXLSX)
			emitProgress(&opts, runID, StepReports, "", "Wrote workbook report "+opts.OutXLSX)
		}
	}

	fmt.Printf("Done! %d matches across %d sources.\n", len(results), len(sources))
	return &Outcome{
		RunID:   runID,
		Results: results,
		Counts:  counts,
		Sources: sources,
		Failed:  failed,
	}, nil
}

// orderedTags lists the configured tags in schema-table order. Tags the table
// does not know sort last so the read step records them as failures instead
// of dropping them silently.
func orderedTags(table *registry.Table, sources map[types.CategoryTag]string) []types.CategoryTag {
	known := make(map[types.CategoryTag]bool, len(sources))
	ordered := make([]types.CategoryTag, 0, len(sources))
	for _, tag := range table.Tags() {
		if _, ok := sources[tag]; ok {
			ordered = append(ordered, tag)
			known[tag] = true
		}
	}
	if len(ordered) == len(sources) {
		return ordered
	}
	unknown := make([]types.CategoryTag, 0, len(sources)-len(ordered))
	for tag := range sources {
		if !known[tag] {
			unknown = append(unknown, tag)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(ordered, unknown...)
}

// readSource reads one category source end to end. Failures land in the
// status, never abort the run.
func readSource(table *registry.Table, tag types.CategoryTag, path string) sourceRead {
	status := SourceStatus{Tag: tag, Path: path}
	schema, err := table.SchemaFor(tag)
	if err != nil {
		status.Err = err
		return sourceRead{status: status}
	}
	records, err := extract.CategoryWithSchema(path, tag, schema)
	if err != nil {
		status.Err = err
		return sourceRead{status: status}
	}
	status.Records = len(records)
	return sourceRead{status: status, records: records}
}

// reportFailures converts failed statuses into the report payload's shape.
func reportFailures(failed []SourceStatus) []report.SourceFailure {
	if len(failed) == 0 {
		return nil
	}
	out := make([]report.SourceFailure, 0, len(failed))
	for _, status := range failed {
		out = append(out, report.SourceFailure{
			Tag:   status.Tag,
			Path:  status.Path,
			Error: status.Err.Error(),
		})
	}
	return out
}
