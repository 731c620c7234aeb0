package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/roster-reconciler/internal/config"
	"github.com/jonathan/roster-reconciler/internal/match"
	"github.com/jonathan/roster-reconciler/internal/pipeline"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full reconciliation pipeline end-to-end",
	Long: `Orchestrates the entire reconciliation: load the master roster, read every
configured category source, join on normalized identifiers, and write reports.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runReconcileCmd,
}

var (
	runConfigPath  string
	runRoster      string
	runSources     []string
	runOutJSON     string
	runOutXLSX     string
	runSchemaTable string
	runPolicy      string
	runParallel    bool
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRoster, "roster", "r", "", "Path to the master roster workbook")
	runCommand.Flags().StringArrayVarP(&runSources, "source", "s", nil, "Category source as tag=path (repeatable)")
	runCommand.Flags().StringVar(&runOutJSON, "out-json", "", "Write the JSON report to this path")
	runCommand.Flags().StringVar(&runOutXLSX, "out-xlsx", "", "Write the workbook report to this path")
	runCommand.Flags().StringVar(&runSchemaTable, "schema-table", "", "External schema-table JSON overriding built-in layouts")
	runCommand.Flags().StringVar(&runPolicy, "duplicate-policy", "", "Duplicate roster identifier policy: last_wins or first_wins")
	runCommand.Flags().BoolVar(&runParallel, "parallel", false, "Read category sources concurrently")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed summaries")

	rootCmd.AddCommand(runCommand)
}

func runReconcileCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("roster") {
		cfg.Roster = runRoster
	}
	if cmd.Flags().Changed("source") {
		entries, err := parseSourceFlags(runSources)
		if err != nil {
			return err
		}
		if cfg.Sources == nil {
			cfg.Sources = make(map[string]string, len(entries))
		}
		for key, path := range entries {
			cfg.Sources[key] = path
		}
	}
	if cmd.Flags().Changed("out-json") {
		cfg.OutJSON = runOutJSON
	}
	if cmd.Flags().Changed("out-xlsx") {
		cfg.OutXLSX = runOutXLSX
	}
	if cmd.Flags().Changed("schema-table") {
		cfg.SchemaTable = runSchemaTable
	}
	if cmd.Flags().Changed("duplicate-policy") {
		cfg.DuplicatePolicy = runPolicy
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = runParallel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		DuplicatePolicy: match.LastWins.String(),
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Roster == "" {
		return fmt.Errorf("--roster is required (via flag or config)")
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("at least one --source tag=path is required (via flag or config)")
	}

	// Step 5: Resolve the schema table
	table := registry.Builtin()
	if cfg.SchemaTable != "" {
		loaded, err := registry.Load(cfg.SchemaTable)
		if err != nil {
			return fmt.Errorf("failed to load schema table: %w", err)
		}
		table = loaded
	}

	// Step 6: Resolve source keys to category tags
	policy, err := match.ParsePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}
	sources := make(map[types.CategoryTag]string, len(cfg.Sources))
	for key, path := range cfg.Sources {
		tag, err := types.ParseTag(key)
		if err != nil {
			return fmt.Errorf("invalid source key %q: %w", key, err)
		}
		sources[tag] = path
	}

	opts := pipeline.Options{
		RosterPath: cfg.Roster,
		Sources:    sources,
		Table:      table,
		OutJSON:    cfg.OutJSON,
		OutXLSX:    cfg.OutXLSX,
		Policy:     policy,
		Parallel:   cfg.Parallel,
		Verbose:    cfg.Verbose,
	}

	_, err = pipeline.Run(ctx, opts)
	return err
}

// parseSourceFlags splits repeated tag=path entries.
func parseSourceFlags(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, path, ok := strings.Cut(entry, "=")
		if !ok || key == "" || path == "" {
			return nil, fmt.Errorf("invalid --source %q: want tag=path", entry)
		}
		out[key] = path
	}
	return out, nil
}
