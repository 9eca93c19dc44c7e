// Package facet derives the tag facets offered as filter controls.
package facet

import "github.com/abelbrown/signalboard/internal/signal"

// Cap is the maximum number of facets shown.
const Cap = 10

// Extract returns the distinct tags of every record, in first-seen order
// across collections, truncated to Cap. Tags are ranked by scan order, not
// frequency, so the caller's collection order decides which tags make the cut
// when more than Cap exist. The empty tag is never a facet, since it stands
// for no active tag.
func Extract(collections ...[]signal.Record) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0, Cap)

	for _, records := range collections {
		for _, rec := range records {
			for _, tag := range rec.TagList() {
				if tag == "" || seen[tag] {
					continue
				}
				seen[tag] = true
				tags = append(tags, tag)
				if len(tags) == Cap {
					return tags
				}
			}
		}
	}

	return tags
}

// Toggle applies a click on tag to the active selection. Clicking the active
// tag clears it; clicking any other tag replaces it. The empty string means
// no tag is active.
func Toggle(active, tag string) string {
	if active == tag {
		return ""
	}
	return tag
}
