package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"intf-report/internal/config"
	"intf-report/internal/exporter"
	"intf-report/internal/filter"
	"intf-report/internal/influx"
	"intf-report/internal/ipfabric"
	"intf-report/internal/logger"
	"intf-report/internal/metrics"
	"intf-report/internal/model"
	"intf-report/internal/report"
	"intf-report/internal/ui"
)

const (
	appName    = "Interfaces Report"
	appVersion = "1.0.0"
	appDesc    = "Per-device interface utilisation report from an IP Fabric snapshot"
)

var (
	configPath  string
	envFile     string
	verbose     bool
	quiet       bool
	showVersion bool
	outputDir   string
	formats     string
	csvOutput   bool
	xlsxOutput  bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&envFile, "env-file", "", "Path to a .env file (default: search upward from the working directory)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&quiet, "quiet", false, "Hide progress bars")
	flag.BoolVar(&quiet, "q", false, "Hide progress bars (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (xlsx,csv,html,docx,json)")
	flag.BoolVar(&csvOutput, "csv", false, "Write the CSV report")
	flag.BoolVar(&xlsxOutput, "xlsx", false, "Write the Excel report")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	if !quiet {
		printBanner()
	}

	// 1. Initialize
	envPath, err := config.LoadEnvFile(envFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if err := applyFlags(cfg); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "intf_report.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if envPath != "" {
		logger.Debug("Loaded environment from %s", envPath)
	}
	logger.Debug("Writing log to %s", logger.GetLogFilePath())
	if logger.IsVerbose() {
		cfg.Print()
	}

	generated := time.Now()
	cfg.Stamp(generated)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths, err := runReport(ctx, cfg, generated)
	for _, p := range paths {
		logger.InfoClean("  📄 %s", p)
	}
	if err != nil {
		var recErr *report.RecordError
		if errors.As(err, &recErr) {
			logger.LogRecordError(recErr.Index, err, recErr.Record.String())
		}
		logger.Error("Report failed: %v (details in %s)", err, logger.GetLogFilePath())
		return 1
	}

	logger.Info("✅ Report complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// applyFlags overrides the loaded configuration with command line flags
func applyFlags(cfg *config.Config) error {
	if outputDir != "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}
		cfg.Output.Dir = abs
	}

	var selected []string
	if xlsxOutput {
		selected = append(selected, "xlsx")
	}
	if csvOutput {
		selected = append(selected, "csv")
	}
	if formats != "" {
		selected = append(selected, strings.Split(formats, ",")...)
	}
	if len(selected) > 0 {
		cfg.SetFormats(selected...)
	}
	return nil
}

func runReport(ctx context.Context, cfg *config.Config, generated time.Time) ([]string, error) {
	exporters, unknown := exporter.GetExporters(cfg.Output.Formats)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown output formats %s", model.ErrConfiguration, strings.Join(unknown, ", "))
	}

	rule, err := filter.Compile(cfg.Report.ExcludePattern, cfg.Report.CaseSensitive)
	if err != nil {
		return nil, err
	}

	client, err := ipfabric.NewClient(ipfabric.Options{
		BaseURL:    cfg.IPFabric.URL,
		Token:      cfg.IPFabric.Token,
		APIVersion: cfg.IPFabric.APIVersion,
		Snapshot:   cfg.IPFabric.Snapshot,
		Verify:     cfg.IPFabric.Verify,
		Timeout:    cfg.IPFabric.Timeout,
		PageSize:   cfg.IPFabric.PageSize,
	})
	if err != nil {
		return nil, err
	}

	publishing := cfg.Output.MetricsFile != "" || cfg.InfluxDB.URL != ""
	phases := []ui.Phase{ui.PhaseFetching, ui.PhaseFiltering, ui.PhaseGenerating}
	if publishing {
		phases = append(phases, ui.PhasePublishing)
	}
	pipeline := ui.NewPipeline(phases)
	if quiet {
		pipeline.Disable()
	}
	defer pipeline.Finish()

	// --- Phase 1: Fetching ---
	logger.Info("Phase 1: Fetching interfaces from %s (snapshot %s)...", cfg.IPFabric.URL, cfg.IPFabric.Snapshot)
	count, err := client.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count interfaces: %w", err)
	}
	logger.Info("Found %d interfaces in the snapshot", count)
	if count == 0 {
		count = -1
	}
	fetchBar := pipeline.NextPhase(count)
	records, err := client.Interfaces(ctx, fetchBar.Track)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interfaces: %w", err)
	}

	// --- Phase 2: Filtering ---
	logger.Info("Phase 2: Filtering %d interfaces...", len(records))
	filterBar := pipeline.NextPhase(len(records))
	result, err := report.Build(records, rule, report.Options{
		AdminDownReasons: cfg.Report.AdminDownReasons,
		RequireKept:      cfg.Report.FailOnEmpty,
	})
	if err != nil {
		return nil, err
	}
	filterBar.Set(len(records))

	logger.WithFields(logger.Fields{
		"kept":     result.Summary.Total,
		"excluded": result.Excluded,
		"devices":  len(result.Summary.Devices),
	}).Info("Kept %d interfaces on %d devices, excluded %d", result.Summary.Total, len(result.Summary.Devices), result.Excluded)
	if result.Summary.Total == 0 {
		logger.Warn("No interface left after exclusion, the report will be empty")
	}

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating Reports...")
	genBar := pipeline.NextPhase(len(exporters))

	var paths []string
	var outputErrors []error
	for _, exp := range exporters {
		path, err := exp.Export(result, cfg)
		if err != nil {
			logger.Error("%s export failed: %v", exp.Format(), err)
			outputErrors = append(outputErrors, err)
		} else {
			paths = append(paths, path)
		}
		genBar.Describe(exp.Format())
		genBar.Increment()
	}

	// --- Phase 4: Publishing ---
	if publishing {
		logger.Info("Phase 4: Publishing metrics...")
		pubBar := pipeline.NextPhase(2)

		if cfg.Output.MetricsFile != "" {
			pubBar.Describe("textfile")
			if err := metrics.WriteTextfile(cfg.Output.MetricsFile, result, generated); err != nil {
				logger.Error("%v", err)
				outputErrors = append(outputErrors, err)
			} else {
				paths = append(paths, cfg.Output.MetricsFile)
			}
		}
		pubBar.Increment()

		pubBar.Describe("influxdb")
		if err := influx.Publish(ctx, cfg.InfluxDB, result, generated); err != nil {
			logger.Error("%v", err)
			outputErrors = append(outputErrors, err)
		}
		pubBar.Increment()
	}

	if len(outputErrors) > 0 {
		return paths, fmt.Errorf("one or more outputs failed: %w", errors.Join(outputErrors...))
	}

	return paths, nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                  INTERFACES REPORT v1.0.0                 ║
║          Port utilisation from IP Fabric snapshots        ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
