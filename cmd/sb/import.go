package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abelbrown/signalboard/internal/config"
	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/store"
	"github.com/abelbrown/signalboard/internal/timefmt"
)

func runImport() {
	cfg := loadConfig()
	defer logging.Close()

	defaultDB := filepath.Join(config.DataDir(), "signalboard.db")
	if cfg.Source.Kind == config.SourceSQLite {
		defaultDB = cfg.Source.Path
	}

	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Snapshot database to write")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sb import [flags] <dir>")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	dir := fs.Arg(0)

	st, err := store.Open(*dbPath)
	if err != nil {
		fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	src := fetch.NewDir(dir)
	log := logging.WithPrefix("import")

	for _, t := range signal.StreamOrder {
		raws, err := src.Raw(ctx, t)
		if errors.Is(err, fetch.ErrStreamUnavailable) {
			fmt.Printf("%-10s missing, left as is\n", t)
			log.Warn("stream file missing", "stream", t, "dir", dir)
			continue
		}
		if err != nil {
			fatalf("%s: %v", t, err)
		}
		if err := st.Put(ctx, t, raws); err != nil {
			fatalf("%s: %v", t, err)
		}
		log.Info("stream imported", "stream", t, "records", len(raws))
		fmt.Printf("%-10s %d records\n", t, len(raws))
	}

	imports, err := st.Imports(ctx)
	if err != nil {
		fatalf("list imports: %v", err)
	}
	fmt.Printf("\nSnapshot %s:\n", *dbPath)
	for _, imp := range imports {
		fmt.Printf("  %-10s %6d records  imported %s\n", imp.Stream, imp.Records, timefmt.Absolute(imp.ImportedAt))
	}
}
