// Command sb is the signalboard maintenance CLI.
//
// Usage:
//
//	sb                      Show help
//	sb signals              List every canonical signal in stream order
//	sb search <query>       Run the palette search
//	sb tags                 List the facet tags
//	sb stats                Header stats and per-stream counts
//	sb import <dir>         Copy a data directory into the SQLite snapshot
package main

import (
	"fmt"
	"os"
)

const usage = `sb - signalboard maintenance CLI

Usage:
  sb <command> [flags]

Commands:
  signals     List every canonical signal in stream order
  search      Run the palette search over all signals
  tags        List the facet tags
  stats       Header stats and per-stream counts
  import      Copy a data directory into the SQLite snapshot

Flags (every command):
  -source     dir or sqlite (default from config)
  -path       data directory or database file (default from config)

Environment:
  SIGNALBOARD_SOURCE, SIGNALBOARD_PATH, SIGNALBOARD_LOG_LEVEL, SIGNALBOARD_RELOAD

Run 'sb <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "signals":
		runSignals()
	case "search":
		runSearch()
	case "tags":
		runTags()
	case "stats":
		runStats()
	case "import":
		runImport()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "sb: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
