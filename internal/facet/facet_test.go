package facet

import (
	"fmt"
	"testing"

	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/google/go-cmp/cmp"
)

func TestExtractScenario(t *testing.T) {
	news := []signal.NewsRecord{{Title: "n", Tags: []string{"policy"}}}
	research := []signal.ResearchRecord{{Title: "r", Tags: []string{"policy", "infra"}}}

	got := Extract(signal.AsRecords(news), signal.AsRecords(research))

	if diff := cmp.Diff([]string{"policy", "infra"}, got); diff != "" {
		t.Errorf("facets mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractUsesModelDomains(t *testing.T) {
	models := []signal.ModelRecord{{Name: "m", Domains: []string{"code", "vision"}}}
	news := []signal.NewsRecord{{Title: "n", Tags: []string{"vision", "policy"}}}

	got := Extract(signal.AsRecords(models), signal.AsRecords(news))

	if diff := cmp.Diff([]string{"code", "vision", "policy"}, got); diff != "" {
		t.Errorf("facets mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCapAndDistinct(t *testing.T) {
	var news []signal.NewsRecord
	for i := 0; i < 8; i++ {
		news = append(news, signal.NewsRecord{
			Title: fmt.Sprintf("n%d", i),
			Tags:  []string{fmt.Sprintf("tag-%d", i), fmt.Sprintf("tag-%d", i+1), "shared"},
		})
	}

	got := Extract(signal.AsRecords(news))

	if len(got) != Cap {
		t.Fatalf("expected %d facets, got %d", Cap, len(got))
	}
	seen := make(map[string]bool)
	for _, tag := range got {
		if seen[tag] {
			t.Errorf("duplicate facet %q", tag)
		}
		seen[tag] = true
	}
	// First-seen order: tag-0, tag-1, shared, tag-2, ...
	want := []string{"tag-0", "tag-1", "shared", "tag-2", "tag-3", "tag-4", "tag-5", "tag-6", "tag-7", "tag-8"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("facets mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractEmpty(t *testing.T) {
	got := Extract()
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 facets, got %d", len(got))
	}

	got = Extract(signal.AsRecords([]signal.SocialRecord{{Author: "a", Handle: "h"}}))
	if len(got) != 0 {
		t.Errorf("expected 0 facets for untagged records, got %v", got)
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		active, tag, want string
	}{
		{"", "policy", "policy"},
		{"policy", "policy", ""},
		{"policy", "infra", "infra"},
	}
	for _, tt := range tests {
		if got := Toggle(tt.active, tt.tag); got != tt.want {
			t.Errorf("Toggle(%q, %q): expected %q, got %q", tt.active, tt.tag, tt.want, got)
		}
	}
}

func TestExtractSkipsEmptyTag(t *testing.T) {
	news := []signal.NewsRecord{{Title: "n", Tags: []string{"", "policy"}}}
	social := []signal.SocialRecord{{Author: "a", Tags: []string{""}}}

	got := Extract(signal.AsRecords(news), signal.AsRecords(social))

	if diff := cmp.Diff([]string{"policy"}, got); diff != "" {
		t.Errorf("facets mismatch (-want +got):\n%s", diff)
	}
}
