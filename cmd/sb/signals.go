package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/signalboard/internal/filter"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/timefmt"
)

var typeStyle = lipgloss.NewStyle().Bold(true).Width(9)

func runSignals() {
	cfg := loadConfig()
	defer logging.Close()

	fs := flag.NewFlagSet("signals", flag.ExitOnError)
	sf := addSourceFlags(fs, cfg)
	tag := fs.String("tag", "", "Only signals carrying this tag")
	typ := fs.String("type", "", "Only one stream: NEWS, RESEARCH, MODEL, VIDEO, SOCIAL")
	fs.Parse(os.Args[1:])

	if *typ != "" && !signal.Type(strings.ToUpper(*typ)).Valid() {
		fatalf("unknown stream %q", *typ)
	}

	b, _ := loadBoard(sf)

	var out []signal.Signal
	for _, s := range filter.Signals(b.Signals(), *tag) {
		if *typ != "" && s.Type != signal.Type(strings.ToUpper(*typ)) {
			continue
		}
		out = append(out, s)
	}
	printSignals(out, time.Now())

	for _, t := range signal.StreamOrder {
		if n := b.Skipped(t); n > 0 {
			fmt.Fprintf(os.Stderr, "skipped %d malformed %s records\n", n, t)
		}
	}
}

// printSignals writes one line per signal: type, title, subtitle, age.
func printSignals(signals []signal.Signal, now time.Time) {
	for _, s := range signals {
		fmt.Printf("%s %s %s %s\n",
			typeStyle.Render(string(s.Type)),
			runewidth.FillRight(runewidth.Truncate(s.Title, 50, "…"), 50),
			runewidth.FillRight(runewidth.Truncate(s.Subtitle, 28, "…"), 28),
			timefmt.Relative(s.Timestamp, now))
	}
	fmt.Printf("\n%d signals\n", len(signals))
}
