// ABOUTME: Entry point for recgen, the bulk synthetic service-record generator.
// ABOUTME: Wires config, reference data, the completion client, sinks and the table API into CLI commands.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/2389/recgen/internal/api"
	"github.com/2389/recgen/internal/batch"
	"github.com/2389/recgen/internal/config"
	"github.com/2389/recgen/internal/llm"
	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
	"github.com/2389/recgen/internal/sink"
	"github.com/2389/recgen/internal/store"
	"github.com/2389/recgen/internal/synth"
)

// generateFlags holds flag values; they only override config when set.
type generateFlags struct {
	configPath  string
	output      string
	count       int
	batchSize   int
	table       string
	model       string
	apiKey      string
	closed      int
	split       bool
	provider    string
	baseURL     string
	concurrency int
	pause       time.Duration
	rps         float64
	refData     string
	dbPath      string
	verbose     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()
	f := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "recgen",
		Short: "Generate realistic synthetic service-desk records in bulk",
		Long: `recgen synthesizes incidents, customer cases, HR cases, change requests and
knowledge articles with cross-referenced callers, groups, services and CIs, and
model-written descriptions and close notes.

Output format follows the file extension:
  .csv                  comma-separated values
  .db, .sqlite          SQLite database (browse it with 'recgen serve')
  anything else         Excel workbook

Quick Start:
  recgen -t incident -c 500 -o incidents.xlsx
  recgen -t case -c 2000 --closed 60 --split -o cases.csv
  recgen serve --db records.db

Environment Variables:
  OPENROUTER_API_KEY    Credential for the default provider
  OPENAI_API_KEY        Credential when --provider openai
  ANTHROPIC_API_KEY     Credential when --provider anthropic
  RECGEN_CONFIG         YAML config file (same keys as --config)`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	fl := rootCmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file (default $RECGEN_CONFIG)")
	fl.StringVarP(&f.output, "output", "o", defaults.Output, "Output file; extension picks the format")
	fl.IntVarP(&f.count, "count", "c", defaults.Count, "Number of records to generate")
	fl.IntVarP(&f.batchSize, "batch", "b", defaults.BatchSize, "Records per batch written to the output")
	fl.StringVarP(&f.table, "table", "t", defaults.Table, "Record kind: "+kindList())
	fl.StringVarP(&f.model, "model", "m", "", "Model identifier for the provider")
	fl.StringVarP(&f.apiKey, "apiKey", "k", "", "Provider API key")
	fl.StringVar(&f.apiKey, "api-key", "", "Provider API key")
	fl.IntVar(&f.closed, "closed", defaults.ClosedPercentage, "Percentage of records in a resolved/closed state (negative: uniform)")
	fl.BoolVar(&f.split, "split", false, "Write closed and open records to separate files")
	fl.StringVar(&f.provider, "provider", defaults.LLM.Provider, "Completion provider: openrouter, openai or anthropic")
	fl.StringVar(&f.baseURL, "base-url", "", "Override the provider endpoint")
	fl.IntVar(&f.concurrency, "concurrency", defaults.Concurrency, "Maximum completion calls in flight")
	fl.DurationVar(&f.pause, "pause", defaults.Pause, "Idle time between concurrency windows (negative disables)")
	fl.Float64Var(&f.rps, "rps", 0, "Cap completion requests per second (0: unlimited)")
	fl.StringVar(&f.refData, "refdata", "", "YAML file extending the built-in reference data")
	fl.StringVar(&f.dbPath, "db", "", "Record the run in this SQLite database's ledger")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log per-window and per-call diagnostics")
	fl.MarkHidden("api-key")

	defaultDBPath := getDefaultDBPath()
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a SQLite output through the table API",
		Long: `Start an HTTP server exposing generated records stored in a SQLite database.

Endpoints:
  GET  /healthz
  GET  /api/now/table/{table}            list; field=value filters, sysparm_limit,
                                         sysparm_offset, sysparm_number_prefix
  POST /api/now/table/{table}            create from a JSON object
  GET  /api/now/table/{table}/{sys_id}   fetch one record
  GET  /api/runs                         generation run ledger
  GET  /api/requests                     request log

Environment Variables:
  RECGEN_PORT       Server port (default: 9000)
  RECGEN_DB_PATH    Database path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, dbPathFlag(cmd), port)
		},
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", getEnv("RECGEN_PORT", "9000"), "Port to listen on")
	serveCmd.Flags().StringP("db", "d", defaultDBPath, "Database path")

	var runsLimit int
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, dbPathFlag(cmd), runsLimit)
		},
	}
	runsCmd.Flags().StringP("db", "d", defaultDBPath, "Database path")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Number of runs to show")

	rootCmd.AddCommand(serveCmd, runsCmd)
	return rootCmd
}

func kindList() string {
	names := make([]string, 0, len(record.Kinds()))
	for _, k := range record.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func dbPathFlag(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("db")
	return p
}

// loadConfig layers explicitly set flags over config.Load.
func loadConfig(cmd *cobra.Command, f *generateFlags) (config.Config, error) {
	path := f.configPath
	if path == "" {
		path = os.Getenv("RECGEN_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output = f.output
	}
	if set("count") {
		cfg.Count = f.count
	}
	if set("batch") {
		cfg.BatchSize = f.batchSize
	}
	if set("table") {
		cfg.Table = f.table
	}
	if set("closed") {
		cfg.ClosedPercentage = f.closed
	}
	if set("split") {
		cfg.Split = f.split
	}
	if set("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if set("pause") {
		cfg.Pause = f.pause
	}
	if set("refdata") {
		cfg.RefData = f.refData
	}
	if set("db") {
		cfg.DBPath = f.dbPath
	}
	if set("verbose") {
		cfg.Verbose = f.verbose
	}
	if set("provider") && f.provider != cfg.LLM.Provider {
		cfg.LLM.Provider = f.provider
		// The key read for the old provider does not carry over.
		cfg.LLM.APIKey = os.Getenv(config.APIKeyEnv(f.provider))
	}
	if set("model") {
		cfg.LLM.Model = f.model
	}
	if set("base-url") {
		cfg.LLM.BaseURL = f.baseURL
	}
	if set("rps") {
		cfg.LLM.RequestsPerSecond = f.rps
	}
	if set("apiKey") || set("api-key") {
		cfg.LLM.APIKey = f.apiKey
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, f *generateFlags) (err error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, err := record.ParseKind(cfg.Table)
	if err != nil {
		return err
	}

	refs, err := refdata.Open(cfg.RefData)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	client, err := llm.New(cfg.LLM)
	if err != nil {
		return err
	}
	client.SetVerbose(cfg.Verbose)

	syn, err := synth.New(kind, refs, client, synth.Options{ClosedPercentage: cfg.ClosedPercentage})
	if err != nil {
		return err
	}

	ledger, out, err := openOutputs(cfg, kind)
	if err != nil {
		return err
	}
	if ledger != nil {
		defer ledger.Close()
	}

	ctx := cmd.Context()
	var runID int64
	if ledger != nil {
		if runID, err = ledger.StartRun(ctx, kind.String(), cfg.Output, cfg.Count); err != nil {
			out.Close()
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	log.Printf("Generating %d %s records into %s (batch %d, concurrency %d, %d%% closed)",
		cfg.Count, kind, cfg.Output, cfg.BatchSize, cfg.Concurrency, cfg.ClosedPercentage)

	orch := batch.New(syn, batch.Options{
		BatchSize:   cfg.BatchSize,
		Concurrency: cfg.Concurrency,
		Pause:       cfg.Pause,
		Verbose:     cfg.Verbose,
	})
	summary, runErr := orch.Run(ctx, cfg.Count, out)
	if closeErr := out.Close(); closeErr != nil && runErr == nil {
		runErr = fmt.Errorf("failed to finalize output: %w", closeErr)
	}

	if ledger != nil {
		// The run context may already be canceled; the ledger still needs the outcome.
		if err := ledger.FinishRun(context.WithoutCancel(ctx), runID, summary.Generated, summary.Degraded, runErr); err != nil {
			log.Printf("Warning: failed to record run outcome: %v", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	stats := client.Stats()
	log.Printf("Done! Generated %d %s records (%d degraded) in %d batches, %s",
		summary.Generated, kind, summary.Degraded, summary.Batches, summary.Elapsed.Round(time.Millisecond))
	log.Printf("Completion calls: %d (%d fell back)", stats.Calls, stats.Fallbacks)
	if cfg.Split {
		closedPath, openPath := sink.SplitPaths(cfg.Output)
		log.Printf("Output: %s, %s", closedPath, openPath)
	} else {
		log.Printf("Output: %s", cfg.Output)
	}
	return nil
}

// openOutputs opens the sink and, when one is configured, the run ledger. An
// unsplit SQLite output shares one store with the ledger unless --db points
// elsewhere.
func openOutputs(cfg config.Config, kind record.Kind) (*store.Store, sink.Sink, error) {
	sqliteOut := sink.FormatFor(cfg.Output) == sink.FormatSQLite && !cfg.Split
	ledgerPath := cfg.DBPath
	if ledgerPath == "" && sqliteOut {
		ledgerPath = cfg.Output
	}

	var ledger *store.Store
	if ledgerPath != "" {
		p, err := validateAndCleanDBPath(ledgerPath)
		if err != nil {
			return nil, nil, err
		}
		if ledger, err = openStore(p); err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
	}

	if sqliteOut && ledger != nil && filepath.Clean(cfg.Output) == filepath.Clean(ledgerPath) {
		return ledger, sink.NewSQLite(ledger, kind), nil
	}

	out, err := sink.Open(cfg.Output, kind, sink.Options{Split: cfg.Split})
	if err != nil {
		if ledger != nil {
			ledger.Close()
		}
		return nil, nil, fmt.Errorf("failed to open output: %w", err)
	}
	return ledger, out, nil
}

// validateAndCleanDBPath validates and cleans a database path.
// Handles Unix/Linux, macOS, and Windows paths (including UNC and drive letters).
func validateAndCleanDBPath(path string) (string, error) {
	cleanPath := strings.TrimSpace(path)
	cleanPath = filepath.Clean(cleanPath)

	// Reject empty and root-like paths
	if cleanPath == "" || cleanPath == "." || cleanPath == "/" {
		return "", fmt.Errorf("database path cannot be empty, '.', or '/'")
	}

	// Windows: reject bare drive letters (e.g., "C:", "D:")
	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", fmt.Errorf("database path cannot be a bare drive letter")
	}

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("database path cannot contain '..'")
	}

	// Reject known problematic patterns
	badPatterns := []string{
		".git",
		".svn",
		"node_modules",
		".env",
		"credentials",
		"secret",
	}
	lowerPath := strings.ToLower(cleanPath)
	for _, pattern := range badPatterns {
		if strings.Contains(lowerPath, pattern) {
			return "", fmt.Errorf("database path cannot contain '%s' directory", pattern)
		}
	}

	return cleanPath, nil
}

func runServe(cmd *cobra.Command, dbPath, port string) error {
	dbPath, err := validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	handler, s, err := newServer(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := &http.Server{Addr: ":" + port, Handler: handler}
	go func() {
		<-cmd.Context().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("recgen server listening on %s", srv.Addr)
	log.Printf("Database: %s", dbPath)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openStore opens dbPath, creating its parent directory first.
func openStore(dbPath string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return store.New(dbPath)
}

func newServer(dbPath string) (http.Handler, *store.Store, error) {
	s, err := openStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return api.New(s).Handler(), s, nil
}

func runRuns(cmd *cobra.Command, dbPath string, limit int) error {
	dbPath, err := validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}
	s, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTABLE\tSTATUS\tREQUESTED\tGENERATED\tDEGRADED\tSTARTED\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.ID, r.Table, r.Status, r.Requested, r.Generated, r.Degraded,
			r.StartedAt.Local().Format(synth.DateLayout), r.Output)
	}
	return tw.Flush()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getDefaultDBPath returns the default database path following XDG Base Directory spec
// Priority: RECGEN_DB_PATH env var > ./recgen.db > XDG_DATA_HOME/recgen/recgen.db
func getDefaultDBPath() string {
	if envPath := os.Getenv("RECGEN_DB_PATH"); envPath != "" {
		envPath = filepath.Clean(strings.TrimSpace(envPath))
		if envPath == "" || envPath == "." {
			log.Printf("Warning: RECGEN_DB_PATH is invalid (empty or '.'), using default path")
		} else {
			return envPath
		}
	}

	cwdPath := "./recgen.db"
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" || homeDir == "/" {
			return cwdPath
		}
		if runtime.GOOS == "windows" {
			dataHome = os.Getenv("LOCALAPPDATA")
			if dataHome == "" {
				dataHome = filepath.Join(homeDir, "AppData", "Local")
			}
		} else {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(dataHome, "recgen", "recgen.db")
}
