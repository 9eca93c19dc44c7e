package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/search"
	"github.com/abelbrown/signalboard/internal/ui/palette"
)

func runSearch() {
	cfg := loadConfig()
	defer logging.Close()

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	sf := addSourceFlags(fs, cfg)
	verbose := fs.Bool("v", false, "Print the haystack each result matched on")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sb search [flags] <query>")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fs.Usage()
		os.Exit(1)
	}

	b, _ := loadBoard(sf)
	snap := b.Snapshot(board.NewState().WithQuery(query))

	logging.Info("search", "query", snap.State.Query, "results", len(snap.Results))

	if len(snap.Results) == 0 {
		fmt.Println(palette.EmptyMessage)
		return
	}
	printSignals(snap.Results, time.Now())

	if *verbose {
		fmt.Println()
		for _, s := range snap.Results {
			fmt.Printf("%-9s %q\n", s.Type, search.Haystack(s))
		}
	}
}
