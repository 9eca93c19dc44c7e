// Package search implements the palette's live search over combined signals.
//
// Matching is plain substring containment on a lower-cased haystack. There is
// no tokenising, no fuzzy matching and no scoring; results keep the order of
// the input sequence.
package search

import (
	"strings"

	"github.com/abelbrown/signalboard/internal/signal"
)

// Normalize turns raw user input into a query: trimmed and lower-cased.
// Signals expects its query to have been through Normalize already.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Haystack is the lower-cased text a query is matched against:
// title, summary and tags joined by single spaces.
func Haystack(s signal.Signal) string {
	return strings.ToLower(s.Title + " " + s.Summary + " " + strings.Join(s.Tags, " "))
}

// Signals returns the signals whose haystack contains query. An empty query
// returns the input unchanged. The query is used as given.
func Signals(signals []signal.Signal, query string) []signal.Signal {
	if query == "" {
		return signals
	}

	result := make([]signal.Signal, 0, len(signals))
	for _, s := range signals {
		if strings.Contains(Haystack(s), query) {
			result = append(result, s)
		}
	}

	return result
}
