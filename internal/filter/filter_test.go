package filter

import (
	"testing"

	"github.com/abelbrown/signalboard/internal/signal"
)

func newsFixture() []signal.NewsRecord {
	return []signal.NewsRecord{
		{Title: "Item 1", Source: "Wire", Tags: []string{"policy", "chips"}},
		{Title: "Item 2", Source: "Wire", Tags: []string{"infra"}},
		{Title: "Item 3", Source: "Ledger", Tags: []string{"policy"}},
		{Title: "Item 4", Source: "Ledger"},
	}
}

func TestByTagNoActiveTag(t *testing.T) {
	items := newsFixture()

	result := ByTag(items, "")

	if len(result) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(result))
	}
	for i := range items {
		if result[i].Title != items[i].Title {
			t.Errorf("position %d: expected %q, got %q", i, items[i].Title, result[i].Title)
		}
	}
	// Identity: same backing array, no copy.
	if &result[0] != &items[0] {
		t.Error("expected input slice to be returned unchanged")
	}
}

func TestByTag(t *testing.T) {
	items := newsFixture()

	result := ByTag(items, "policy")

	if len(result) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result))
	}
	if result[0].Title != "Item 1" || result[1].Title != "Item 3" {
		t.Errorf("expected items 1 and 3 in order, got %q and %q", result[0].Title, result[1].Title)
	}

	// Every excluded item lacks the tag.
	kept := map[string]bool{}
	for _, item := range result {
		kept[item.Title] = true
		if !HasTag(item, "policy") {
			t.Errorf("kept %q without tag", item.Title)
		}
	}
	for _, item := range items {
		if !kept[item.Title] && HasTag(item, "policy") {
			t.Errorf("dropped %q although it carries the tag", item.Title)
		}
	}
}

func TestByTagCaseSensitive(t *testing.T) {
	result := ByTag(newsFixture(), "Policy")
	if len(result) != 0 {
		t.Errorf("expected 0 items for differently-cased tag, got %d", len(result))
	}
}

func TestByTagNoMatch(t *testing.T) {
	result := ByTag(newsFixture(), "weather")
	if result == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("expected 0 items, got %d", len(result))
	}

	result = ByTag([]signal.NewsRecord(nil), "policy")
	if result == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestByTagModelDomains(t *testing.T) {
	models := []signal.ModelRecord{
		{Name: "Orion-2", Domains: []string{"vision", "code"}},
		{Name: "Tern", Domains: []string{"speech"}},
	}

	result := ByTag(models, "code")

	if len(result) != 1 || result[0].Name != "Orion-2" {
		t.Errorf("expected only Orion-2, got %+v", result)
	}
}

func TestSignalsMatchesByTag(t *testing.T) {
	news := newsFixture()
	signals, _ := signal.Combine(signal.Streams{News: news})

	for _, tag := range []string{"policy", "infra", "Policy", "weather"} {
		records := ByTag(news, tag)
		got := Signals(signals, tag)
		if len(got) != len(records) {
			t.Errorf("%q: expected %d signals, got %d", tag, len(records), len(got))
			continue
		}
		for i := range records {
			if got[i].Title != records[i].Title {
				t.Errorf("%q position %d: expected %q, got %q", tag, i, records[i].Title, got[i].Title)
			}
		}
		if got == nil {
			t.Errorf("%q: expected empty slice, got nil", tag)
		}
	}

	if all := Signals(signals, ""); len(all) != len(signals) {
		t.Errorf("expected all %d signals with no active tag, got %d", len(signals), len(all))
	}
}
