// Package board composes the pure components into what a dashboard shows for
// one load cycle and one view state.
//
// New does the per-load work once (combine, facets, stats). Snapshot does the
// per-transition work (tag filter per panel, palette search) and is cheap to
// call on every keystroke.
package board

import (
	"github.com/abelbrown/signalboard/internal/facet"
	"github.com/abelbrown/signalboard/internal/filter"
	"github.com/abelbrown/signalboard/internal/search"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/stats"
)

// FacetScanOrder is the order streams are scanned for facets. With more than
// facet.Cap distinct tags, earlier streams win.
var FacetScanOrder = signal.StreamOrder

// Board holds one load cycle's derived data. It is immutable after New.
type Board struct {
	streams signal.Streams
	signals []signal.Signal
	skipped map[signal.Type]int
	facets  []string
	summary stats.Summary
	offline map[signal.Type]error
}

// New derives signals, facets and stats from streams. offline carries the
// load error of every stream that is missing; those streams must already be
// empty in streams.
func New(streams signal.Streams, offline map[signal.Type]error) *Board {
	signals, skipped := signal.Combine(streams)

	scan := make([][]signal.Record, 0, len(FacetScanOrder))
	for _, t := range FacetScanOrder {
		scan = append(scan, streams.Records(t))
	}

	off := make(map[signal.Type]error, len(offline))
	for t, err := range offline {
		off[t] = err
	}

	return &Board{
		streams: streams,
		signals: signals,
		skipped: signal.SkipCounts(skipped),
		facets:  facet.Extract(scan...),
		summary: stats.Aggregate(streams.Collections()...),
		offline: off,
	}
}

// Signals returns the combined canonical sequence.
func (b *Board) Signals() []signal.Signal { return b.signals }

// Facets returns the capped facet list.
func (b *Board) Facets() []string { return b.facets }

// Summary returns the header stats.
func (b *Board) Summary() stats.Summary { return b.summary }

// Streams returns the raw collections the board was built from.
func (b *Board) Streams() signal.Streams { return b.streams }

// Skipped returns how many records of stream t failed to map.
func (b *Board) Skipped(t signal.Type) int { return b.skipped[t] }

// Offline returns the load error for stream t, or nil.
func (b *Board) Offline(t signal.Type) error { return b.offline[t] }

// Snapshot is everything a frame renders for one State.
type Snapshot struct {
	State   State
	Facets  []string
	Summary stats.Summary

	// Per-panel raw records after the tag filter.
	News     []signal.NewsRecord
	Research []signal.ResearchRecord
	Models   []signal.ModelRecord
	Videos   []signal.VideoRecord
	Social   []signal.SocialRecord

	// Palette results for State.Query, in stream order.
	Results []signal.Signal

	Skipped map[signal.Type]int
	Offline map[signal.Type]error
}

// Snapshot applies state to the board.
func (b *Board) Snapshot(state State) Snapshot {
	tag := state.ActiveTag
	return Snapshot{
		State:    state,
		Facets:   b.facets,
		Summary:  b.summary,
		News:     filter.ByTag(b.streams.News, tag),
		Research: filter.ByTag(b.streams.Research, tag),
		Models:   filter.ByTag(b.streams.Models, tag),
		Videos:   filter.ByTag(b.streams.Videos, tag),
		Social:   filter.ByTag(b.streams.Social, tag),
		Results:  search.Signals(b.signals, state.Query),
		Skipped:  b.skipped,
		Offline:  b.offline,
	}
}

// Count returns how many records panel t shows in this snapshot.
func (s Snapshot) Count(t signal.Type) int {
	switch t {
	case signal.TypeNews:
		return len(s.News)
	case signal.TypeResearch:
		return len(s.Research)
	case signal.TypeModel:
		return len(s.Models)
	case signal.TypeVideo:
		return len(s.Videos)
	case signal.TypeSocial:
		return len(s.Social)
	}
	return 0
}
