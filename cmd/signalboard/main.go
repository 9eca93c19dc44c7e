// Command signalboard is the terminal dashboard over the five content streams.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/signalboard/internal/config"
	"github.com/abelbrown/signalboard/internal/coord"
	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "signalboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logging.Init(config.DataDir(), cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	src, closeSrc, err := fetch.Open(cfg.Source.Kind, cfg.Source.Path)
	if err != nil {
		return err
	}
	defer closeSrc()
	logging.Info("source opened", "source", src.Name())

	coordinator := coord.New(src, coord.Options{
		Interval: cfg.Reload.Interval.Std(),
		MinGap:   cfg.Reload.MinGap.Std(),
	})

	app := ui.NewApp(
		func() tea.Cmd { return coordinator.LoadCmd(ctx) },
		func() tea.Cmd { return coordinator.ReloadCmd(ctx) },
		ui.Options{ShowClock: cfg.UI.ShowClock},
	)

	program := tea.NewProgram(app, tea.WithAltScreen())

	coordinator.Start(ctx, program)

	// Run UI (blocks until quit)
	_, runErr := program.Run()
	if runErr != nil {
		logging.Error("program exited", "err", runErr)
	}

	// Graceful shutdown
	cancel()
	coordinator.Wait()
	return runErr
}
