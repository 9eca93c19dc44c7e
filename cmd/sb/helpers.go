package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/config"
	"github.com/abelbrown/signalboard/internal/coord"
	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
)

// sourceFlags are shared by every command.
type sourceFlags struct {
	kind *string
	path *string
}

// addSourceFlags registers -source and -path with config values as defaults.
func addSourceFlags(fs *flag.FlagSet, cfg *config.Config) sourceFlags {
	return sourceFlags{
		kind: fs.String("source", cfg.Source.Kind, "Source kind: dir or sqlite"),
		path: fs.String("path", cfg.Source.Path, "Data directory or database file"),
	}
}

// loadConfig loads config and starts file logging, or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	if err := logging.Init(config.DataDir(), cfg.Log.Level); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// loadBoard runs one load cycle against the flagged source. Offline streams
// are reported on stderr and shown as empty.
func loadBoard(sf sourceFlags) (*board.Board, fetch.Result) {
	src, closeSrc, err := fetch.Open(*sf.kind, *sf.path)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeSrc()

	res := coord.New(src, coord.Options{}).Load(context.Background())
	for _, t := range signal.StreamOrder {
		if err, ok := res.Offline[t]; ok {
			fmt.Fprintf(os.Stderr, "warning: %s offline: %v\n", t, err)
		}
	}
	return board.New(res.Streams, res.Offline), res
}

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logging.Error(msg)
	logging.Close()
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
