package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daylog/internal/config"
	"daylog/internal/report"
	"daylog/internal/scoring"
	"daylog/internal/service"
	"daylog/internal/store"
	"daylog/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nAn example config was written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("Set athlete.max_hr to your maximum heart rate (220 minus your age works).")
		fmt.Println("Then run 'daylog ingest <file.csv>' to load your first activity log.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Build the scoring config: defaults, athlete settings, then the
	// optional YAML threshold overrides.
	scoringCfg := scoring.DefaultConfig()
	scoringCfg.Inference.MaxHR = cfg.Athlete.MaxHR
	scoringCfg, err = scoring.LoadConfigFile(cfg.Paths.ScoringFile, scoringCfg)
	if err != nil {
		return fmt.Errorf("loading scoring config: %w", err)
	}

	// Open database
	db, err := store.Open(cfg.Paths.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	args := os.Args[1:]
	if len(args) == 0 {
		return runTUI(db, scoringCfg)
	}

	switch args[0] {
	case "ingest":
		return runIngest(db, scoringCfg, args[1:])
	case "report":
		return runReport(db, scoringCfg, cfg.Paths.ReportsDir, args[1:])
	default:
		return fmt.Errorf("unknown command %q (try: daylog, daylog ingest <file.csv>, daylog report weekly|monthly)", args[0])
	}
}

func runTUI(db *store.DB, scoringCfg scoring.Config) error {
	querySvc := service.NewQueryService(db, scoringCfg)

	app := tui.NewApp(db, querySvc)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runIngest(db *store.DB, scoringCfg scoring.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: daylog ingest <file.csv>")
	}

	svc := service.NewIngestService(db, scoringCfg)
	result, err := svc.IngestFile(args[0])
	if err != nil {
		return err
	}

	if result.Ingested == 0 {
		fmt.Println("No rows found in the log.")
		return nil
	}
	fmt.Printf("Ingested %d days (%s to %s)\n", result.Ingested, result.First, result.Last)
	return nil
}

func runReport(db *store.DB, scoringCfg scoring.Config, defaultDir string, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: daylog report weekly|monthly")
	}

	querySvc := service.NewQueryService(db, scoringCfg)

	switch args[0] {
	case "weekly":
		fs := flag.NewFlagSet("report weekly", flag.ContinueOnError)
		endFlag := fs.String("end", "", "last day of the 7-day window (YYYY-MM-DD, default: latest logged day)")
		outFlag := fs.String("out", defaultDir, "directory to write the report into")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		end, err := resolveEnd(querySvc, *endFlag)
		if err != nil {
			return err
		}

		days, err := querySvc.WindowEnding(end, 7)
		if err != nil {
			return err
		}

		path, err := report.WriteWeekly(*outFlag, days, end)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil

	case "monthly":
		fs := flag.NewFlagSet("report monthly", flag.ContinueOnError)
		monthFlag := fs.String("month", "", "month to report on (YYYY-MM, default: month of the latest logged day)")
		outFlag := fs.String("out", defaultDir, "directory to write the report into")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		var anchor time.Time
		if *monthFlag != "" {
			var err error
			anchor, err = time.Parse("2006-01", *monthFlag)
			if err != nil {
				return fmt.Errorf("invalid -month %q, want YYYY-MM", *monthFlag)
			}
		} else {
			var err error
			anchor, err = querySvc.LatestDate()
			if err != nil {
				return err
			}
			if anchor.IsZero() {
				return errors.New("no days logged yet, nothing to report on")
			}
		}

		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := start.AddDate(0, 1, -1)
		days, err := querySvc.WindowEnding(monthEnd, monthEnd.Day())
		if err != nil {
			return err
		}

		path, err := report.WriteMonthly(*outFlag, days, anchor)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown report type %q (want weekly or monthly)", args[0])
	}
}

// resolveEnd picks the weekly window's last day: the -end flag when
// given, otherwise the latest logged day.
func resolveEnd(querySvc *service.QueryService, endFlag string) (time.Time, error) {
	if endFlag != "" {
		end, err := time.Parse("2006-01-02", endFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -end %q, want YYYY-MM-DD", endFlag)
		}
		return end, nil
	}

	end, err := querySvc.LatestDate()
	if err != nil {
		return time.Time{}, err
	}
	if end.IsZero() {
		return time.Time{}, errors.New("no days logged yet, nothing to report on")
	}
	return end, nil
}
