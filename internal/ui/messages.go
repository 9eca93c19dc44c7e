// Package ui provides the Bubble Tea dashboard for signalboard.
package ui

import (
	"time"

	"github.com/abelbrown/signalboard/internal/fetch"
)

// StreamsLoaded is sent when a load cycle finishes. Err is set only when no
// cycle ran (a throttled reload); per-stream failures live in Result.Offline.
type StreamsLoaded struct {
	Result fetch.Result
	Err    error
}

// ClockTick advances the header clock and relative timestamps.
type ClockTick struct {
	Time time.Time
}
