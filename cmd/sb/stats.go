package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/timefmt"
)

func runStats() {
	cfg := loadConfig()
	defer logging.Close()

	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	sf := addSourceFlags(fs, cfg)
	fs.Parse(os.Args[1:])

	b, res := loadBoard(sf)
	sum := b.Summary()

	fmt.Printf("Source:                %s\n", res.Source)
	fmt.Printf("Load time:             %dms\n", res.Took.Milliseconds())
	fmt.Printf("Total records:         %d\n", sum.Total)
	if sum.HasRecent() {
		fmt.Printf("Last sync:             %s\n", timefmt.Absolute(sum.MostRecent))
	} else {
		fmt.Printf("Last sync:             —\n")
	}
	fmt.Printf("Signals:               %d\n", len(b.Signals()))
	fmt.Printf("Facets:                %d\n", len(b.Facets()))

	fmt.Printf("\n%-10s %8s %8s %12s  %s\n", "STREAM", "RECORDS", "SKIPPED", "UNDECODABLE", "STATUS")
	for _, t := range signal.StreamOrder {
		status := "ok"
		if err := b.Offline(t); err != nil {
			status = "offline: " + err.Error()
		}
		fmt.Printf("%-10s %8d %8d %12d  %s\n", t, res.Streams.Count(t), b.Skipped(t), res.Undecodable[t], status)
	}
}
