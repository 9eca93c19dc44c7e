// Package filter provides pure filter functions for raw stream records.
// All functions are simple: []R in, []R out. No side effects.
package filter

import (
	"slices"

	"github.com/abelbrown/signalboard/internal/signal"
)

// ByTag keeps only records whose tag list (tags, or domains for models)
// contains tag. Matching is exact and case-sensitive.
//
// An empty tag means no tag is active: the input slice is returned as is.
// No match yields an empty, non-nil slice.
func ByTag[R signal.Record](records []R, tag string) []R {
	if tag == "" {
		return records
	}

	result := make([]R, 0, len(records))
	for _, rec := range records {
		if HasTag(rec, tag) {
			result = append(result, rec)
		}
	}

	return result
}

// HasTag reports whether rec carries tag.
func HasTag(rec signal.Record, tag string) bool {
	return Tagged(rec.TagList(), tag)
}

// Signals is ByTag for mapped signals, with the same empty-tag and no-match
// behavior.
func Signals(signals []signal.Signal, tag string) []signal.Signal {
	if tag == "" {
		return signals
	}

	result := make([]signal.Signal, 0, len(signals))
	for _, s := range signals {
		if Tagged(s.Tags, tag) {
			result = append(result, s)
		}
	}

	return result
}

// Tagged is the one tag-matching rule: exact, case-sensitive membership.
func Tagged(tags []string, tag string) bool {
	return slices.Contains(tags, tag)
}
