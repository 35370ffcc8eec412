// Command topoview draws a network snapshot as an interactive tree in the
// terminal: drag nodes, pan, zoom, and open details for the selection.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/topoview/pkg/config"
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/snapshot"
	"github.com/dd0wney/topoview/pkg/viewport"
)

func main() {
	var (
		configFile   = flag.String("config", "topoview.yaml", "Configuration file")
		snapshotFile = flag.String("snapshot", "", "Snapshot file (overrides config)")
		logLevel     = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	if err := run(*configFile, *snapshotFile, *logLevel); err != nil {
		log.Fatalf("topoview: %v", err)
	}
}

func run(configFile, snapshotFile, logLevel string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if snapshotFile != "" {
		cfg.Snapshot.Path = snapshotFile
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if cfg.Snapshot.Path == "" {
		return errors.New("no snapshot file: pass -snapshot or set snapshot.path")
	}

	logger, closer, err := logging.Open(cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetDefaultLogger(logger)

	registry := metrics.DefaultRegistry()
	controller := viewport.New(cfg.ViewportConfig(), logger, registry)
	source := snapshot.NewFileSource(cfg.Snapshot.Path, logger, registry)

	if cfg.Metrics.Addr != "" {
		checker := newHealthChecker(source, staleAfter*cfg.Snapshot.RefreshInterval)
		srv := serveMetrics(cfg.Metrics.Addr, registry, checker, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	logger.Info("starting",
		logging.Path(source.Path()),
		logging.Duration("refresh", cfg.Snapshot.RefreshInterval))

	p := tea.NewProgram(
		initialModel(controller, source, cfg.Snapshot.RefreshInterval, logger, registry),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}
