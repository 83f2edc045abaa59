package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-ini/ini"

	"github.com/minuteman3/log-extract/internal/logfile"
)

const defaultConfigFile = ".log-extract.ini"

type config struct {
	File          string
	OutputDir     string
	TailWindow    int
	LookbackYears int
}

func printHelp() {
	helpText := `
Log Extract - Extract all records for a single date from a large sorted log file

Usage:
  log-extract [flags] DATE

Arguments:
  DATE                  Date to extract (format: YYYY-MM-DD)

Flags:
  --file=PATH           Path to the log file (default: logs_2024.log)
  --output-dir=DIR      Directory for output files (default: output)
  --config=FILE         Path to configuration file (default: .log-extract.ini)
  --help                Display this help message

Configuration file format (.ini):
  [extract]
  file = /var/log/app/logs_2024.log
  output_dir = output

  [probe]
  tail_window = 50000
  lookback_years = 3

Example:
  log-extract 2024-07-01
  log-extract --file=/var/log/app.log --output-dir=/tmp/out 2024-07-01
  log-extract --config=my-config.ini 2024-07-01
`
	fmt.Println(helpText)
}

func loadConfig(filepath string) (*config, error) {
	cfg := &config{
		File:          "logs_2024.log",
		OutputDir:     "output",
		TailWindow:    50000,
		LookbackYears: 3,
	}

	// Check if config file exists
	if _, err := os.Stat(filepath); err == nil {
		iniFile, err := ini.Load(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}

		// Extract section
		extractSection := iniFile.Section("extract")
		if extractSection != nil {
			cfg.File = extractSection.Key("file").MustString(cfg.File)
			cfg.OutputDir = extractSection.Key("output_dir").MustString(cfg.OutputDir)
		}

		// Probe section
		probeSection := iniFile.Section("probe")
		if probeSection != nil {
			cfg.TailWindow = probeSection.Key("tail_window").MustInt(cfg.TailWindow)
			cfg.LookbackYears = probeSection.Key("lookback_years").MustInt(cfg.LookbackYears)
		}
	}

	return cfg, nil
}

func main() {
	// Define command line flags
	configFile := flag.String("config", getDefaultConfigPath(), "Path to configuration file")
	help := flag.Bool("help", false, "Display help message")
	logPath := flag.String("file", "", "Path to the log file")
	outputDir := flag.String("output-dir", "", "Directory for output files")
	flag.Parse()

	// Check if help flag is set or no arguments provided
	if *help || len(os.Args) == 1 {
		printHelp()
		os.Exit(0)
	}

	// Load config from file
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Override config with command line flags if provided
	if *logPath != "" {
		cfg.File = *logPath
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	// Validate the target date
	dateArg := flag.Arg(0)
	if dateArg == "" {
		log.Fatal("Date is required. Pass it as the first argument in YYYY-MM-DD format.")
	}
	targetDate, err := time.Parse(logfile.DateLayout, dateArg)
	if err != nil {
		log.Fatalf("Invalid date format %q, expected YYYY-MM-DD: %v", dateArg, err)
	}

	// The missing-file case is the one fatal error; everything past this
	// point degrades toward best-effort extraction.
	if _, err := os.Stat(cfg.File); err != nil {
		log.Fatalf("Error: file %s does not exist", cfg.File)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	outputPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("output_%s.txt", dateArg))

	fmt.Printf("Extracting logs for %s from %s\n", dateArg, cfg.File)

	f, err := logfile.Open(cfg.File)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("Error closing log file: %v", cerr)
		}
	}()

	fmt.Printf("Log file size: %.2f GB\n", float64(f.Size())/(1<<30))

	probeCfg := logfile.DefaultProbeConfig()
	probeCfg.TailWindow = cfg.TailWindow
	probeCfg.Lookback = time.Duration(cfg.LookbackYears) * 365 * 24 * time.Hour
	bounds := logfile.ProbeBounds(f, probeCfg)
	fmt.Printf("Log date range: %s to %s\n",
		bounds.Earliest.Format(logfile.DateLayout), bounds.Latest.Format(logfile.DateLayout))

	if !bounds.Contains(targetDate) {
		log.Printf("Warning: target date %s is outside the log date range", dateArg)
	}

	fmt.Println("Searching for target date position...")
	approx := logfile.FindStart(f, targetDate, bounds)
	startPos := logfile.RefineStart(f, approx, targetDate, bounds)
	fmt.Printf("Starting extraction from position %d\n", startPos)

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Printf("Error closing output file: %v", cerr)
		}
	}()

	count, err := logfile.Extract(f, startPos, targetDate, out)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	fmt.Printf("Extracted %d log entries for %s\n", count, dateArg)
	fmt.Printf("Results saved to %s\n", outputPath)
}

// getDefaultConfigPath returns the path to the default config file in the user's home directory
func getDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFile
	}
	return filepath.Join(homeDir, defaultConfigFile)
}
