// Command ls-almanac is a terminal almanac: rise/set times, twilight
// windows and live sky positions for the Sun, the Moon and the planets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/report"
	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/track"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
	eventsMode    bool
	dateStr       string
)

const (
	minRefresh = 1 * time.Second
	maxRefresh = 10 * time.Minute
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Config file path (INI)")
	site := flag.String("site", "", "Site name (overrides config)")
	lat := flag.Float64("lat", 999, "Site latitude in degrees (overrides config)")
	lon := flag.Float64("lon", 999, "Site longitude in degrees (overrides config)")
	refresh := flag.Duration("refresh", 0, "Recompute interval (e.g., 30s, 1m)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 60s)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON day plan to file (use - for stdout)")
	flag.BoolVar(&eventsMode, "events", false, "Show rise/set event log")
	flag.StringVar(&dateStr, "date", "", "Compute for a specific UTC date (YYYY-MM-DD) instead of now")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *site != "" {
		cfg.Site.Name = *site
	}
	if *lat != 999 {
		cfg.Site.Latitude = *lat
	}
	if *lon != 999 {
		cfg.Site.Longitude = *lon
	}
	if *logLevel != "" {
		cfg.Display.LogLevel = *logLevel
	}

	interval := cfg.RefreshInterval()
	if *refresh != 0 {
		interval = *refresh
	}
	if interval < minRefresh {
		interval = minRefresh
	} else if interval > maxRefresh {
		interval = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(cfg.Display.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = interval
	stateMgr := state.NewManager(cfg.Observer(), stateCfg)

	computer := track.New(ephem.NewComputed())

	when := time.Now()
	if dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q (want YYYY-MM-DD)\n", dateStr)
			os.Exit(1)
		}
		// Noon keeps the instant well inside the requested civil day.
		when = d.Add(12 * time.Hour)
	}

	// A fixed date only makes sense headless.
	headless := summaryMode || snapshotPath != "" || eventsMode || dateStr != ""
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output gets the summary, not TUI control sequences.
		summaryMode = true
		headless = true
	}
	if headless {
		runHeadless(ctx, computer, stateMgr, when, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, computer, stateMgr, p, logger.WithPrefix("track"))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runComputeLoop(ctx context.Context, computer *track.Computer, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doCompute(ctx, computer, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(ctx, computer, stateMgr, p, logger)
		}
	}
}

func doCompute(ctx context.Context, computer *track.Computer, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	logger.Debug("Computing sky state...")

	result := computer.Compute(ctx, stateMgr.Snapshot(), time.Now())

	if result.Error != nil {
		logger.Error("Compute failed: %v", result.Error)
		stateMgr.Update(nil, result.Solar, nil, result.Duration, result.Error)
		p.Send(ui.ErrorMsg{Error: result.Error})
		return
	}

	logger.Debug("Compute complete: %d bodies in %v", len(result.Bodies), result.Duration)

	stateMgr.Update(result.Plan, result.Solar, result.Bodies, result.Duration, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, computer *track.Computer, stateMgr *state.Manager, when time.Time, logger *logging.Logger) {
	outputOnce := func(t time.Time) error {
		result := computer.Compute(ctx, stateMgr.Snapshot(), t)
		if result.Error != nil {
			return result.Error
		}
		logger.Debug("Computed %d bodies in %v", len(result.Bodies), result.Duration)

		stateMgr.Update(result.Plan, result.Solar, result.Bodies, result.Duration, nil)
		snap := stateMgr.Snapshot()

		if snapshotPath != "" {
			export := report.ExportPlan(snap)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			report.WriteSummaryTable(os.Stdout, snap)
		}

		if eventsMode {
			fmt.Println()
			report.WriteEvents(os.Stdout, snap.Events, 10)
		}

		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(when); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: recompute at the wall clock, ignoring -date.
	if err := outputOnce(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(time.Now()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
