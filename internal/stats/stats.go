// Package stats aggregates headline numbers across all streams.
package stats

import (
	"time"

	"github.com/abelbrown/signalboard/internal/signal"
)

// Summary is the header readout: how many records are loaded and the newest
// timestamp among them.
type Summary struct {
	Total      int
	MostRecent time.Time // zero when there are no records
}

// HasRecent reports whether MostRecent holds a value.
func (s Summary) HasRecent() bool {
	return !s.MostRecent.IsZero()
}

// Aggregate counts every record in every collection and finds the newest
// timestamp. Tag filtering never applies here; pass unfiltered collections.
func Aggregate(collections ...[]signal.Record) Summary {
	var sum Summary
	for _, records := range collections {
		sum.Total += len(records)
		for _, rec := range records {
			if ts := rec.Time(); ts.After(sum.MostRecent) {
				sum.MostRecent = ts
			}
		}
	}
	return sum
}
