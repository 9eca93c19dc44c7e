package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
)

func runTags() {
	cfg := loadConfig()
	defer logging.Close()

	fs := flag.NewFlagSet("tags", flag.ExitOnError)
	sf := addSourceFlags(fs, cfg)
	fs.Parse(os.Args[1:])

	b, _ := loadBoard(sf)

	if len(b.Facets()) == 0 {
		fmt.Println("No tags.")
		return
	}

	// Show how many records each facet would leave per stream.
	fmt.Printf("%-20s %6s %9s %7s %7s %7s\n", "TAG", "NEWS", "RESEARCH", "MODEL", "VIDEO", "SOCIAL")
	for _, tag := range b.Facets() {
		snap := b.Snapshot(board.NewState().ToggleTag(tag))
		fmt.Printf("%-20s %6d %9d %7d %7d %7d\n", tag,
			snap.Count(signal.TypeNews), snap.Count(signal.TypeResearch), snap.Count(signal.TypeModel),
			snap.Count(signal.TypeVideo), snap.Count(signal.TypeSocial))
	}
}
