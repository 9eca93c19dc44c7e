package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/signal"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

// mockCmd tracks whether a command function was called.
type mockCmd struct {
	loadCalled   bool
	reloadCalled bool
}

func (m *mockCmd) load() tea.Cmd {
	m.loadCalled = true
	return func() tea.Msg {
		return StreamsLoaded{Result: testResult()}
	}
}

func (m *mockCmd) reload() tea.Cmd {
	m.reloadCalled = true
	return func() tea.Msg {
		return StreamsLoaded{Result: testResult()}
	}
}

func testResult() fetch.Result {
	res := fetch.NewResult("dir:/data")
	res.Streams = signal.Streams{
		News: []signal.NewsRecord{
			{Title: "Chip export rules tighten", Source: "Wire", Region: "US", Tags: []string{"policy"}, Timestamp: now.Add(-5 * time.Minute)},
			{Title: "Datacenter power deals", Source: "Ledger", Tags: []string{"infra"}, Timestamp: now.Add(-2 * time.Hour)},
		},
		Research: []signal.ResearchRecord{
			{Title: "Sparse attention at scale", Organization: "Lab One", Tags: []string{"policy", "infra"}, Timestamp: now.Add(-3 * time.Hour)},
		},
		Models: []signal.ModelRecord{
			{Name: "Orion-2", Provider: "Acme", Params: "70B", Context: "128k", Domains: []string{"vision"}, Timestamp: now.Add(-4 * time.Hour)},
		},
	}
	res.Offline[signal.TypeVideo] = fetch.ErrStreamUnavailable
	res.Took = 12 * time.Millisecond
	return res
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loadedApp returns an App that has received one load cycle.
func loadedApp(t *testing.T) App {
	t.Helper()
	app := NewApp(nil, nil, Options{Now: fixedNow, ShowClock: true})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	model, _ = model.(App).Update(StreamsLoaded{Result: testResult()})
	return model.(App)
}

func press(t *testing.T, app App, msgs ...tea.KeyMsg) App {
	t.Helper()
	for _, m := range msgs {
		model, _ := app.Update(m)
		app = model.(App)
	}
	return app
}

func TestAppInit(t *testing.T) {
	mock := &mockCmd{}
	app := NewApp(mock.load, mock.reload, Options{})

	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	if !mock.loadCalled {
		t.Error("Init should call load")
	}
}

func TestAppInitNilLoad(t *testing.T) {
	app := NewApp(nil, nil, Options{})

	// Only the clock tick.
	if cmd := app.Init(); cmd == nil {
		t.Error("Init should still start the clock")
	}
}

func TestAppStreamsLoaded(t *testing.T) {
	app := loadedApp(t)
	snap := app.Snapshot()

	if snap.Summary.Total != 4 {
		t.Errorf("expected 4 records, got %d", snap.Summary.Total)
	}
	want := []string{"policy", "infra", "vision"}
	if strings.Join(snap.Facets, ",") != strings.Join(want, ",") {
		t.Errorf("expected facets %v, got %v", want, snap.Facets)
	}
	if len(snap.Results) != 4 {
		t.Errorf("expected 4 palette results, got %d", len(snap.Results))
	}
	if snap.Offline[signal.TypeVideo] == nil {
		t.Error("expected videos offline")
	}
}

func TestAppToggleTag(t *testing.T) {
	app := loadedApp(t)

	// Focus "infra" and toggle it.
	app = press(t, app, runeKey('l'), tea.KeyMsg{Type: tea.KeySpace})
	if app.State().ActiveTag != "infra" {
		t.Fatalf("expected active tag 'infra', got %q", app.State().ActiveTag)
	}
	snap := app.Snapshot()
	if len(snap.News) != 1 || snap.News[0].Title != "Datacenter power deals" {
		t.Errorf("expected only the infra news, got %+v", snap.News)
	}
	if len(snap.Research) != 1 {
		t.Errorf("expected 1 research record, got %d", len(snap.Research))
	}
	if len(snap.Models) != 0 {
		t.Errorf("expected models filtered out, got %d", len(snap.Models))
	}

	// Toggling the same tag again clears it.
	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	if app.State().ActiveTag != "" {
		t.Errorf("expected no active tag, got %q", app.State().ActiveTag)
	}
}

func TestAppClearTag(t *testing.T) {
	app := press(t, loadedApp(t), tea.KeyMsg{Type: tea.KeyEnter}, runeKey('x'))
	if app.State().ActiveTag != "" {
		t.Errorf("expected x to clear the tag, got %q", app.State().ActiveTag)
	}
}

func TestAppFacetCursorBounds(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, runeKey('h'))
	if app.FacetCursor() != 0 {
		t.Errorf("h at first facet should stay at 0, got %d", app.FacetCursor())
	}
	app = press(t, app, runeKey('l'), runeKey('l'), runeKey('l'), runeKey('l'))
	if app.FacetCursor() != 2 {
		t.Errorf("l past the end should stop at 2, got %d", app.FacetCursor())
	}
}

func TestAppPanelChips(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, runeKey('4'))
	if app.State().Panel != board.PanelModels {
		t.Errorf("expected models panel, got %s", app.State().Panel)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.State().Panel != board.PanelVideos {
		t.Errorf("expected tab to move to videos, got %s", app.State().Panel)
	}

	app = press(t, app, runeKey('1'))
	if app.State().Panel != board.PanelAll {
		t.Errorf("expected all panels, got %s", app.State().Panel)
	}
}

func TestAppPaletteSearch(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyCtrlK})
	if !app.PaletteActive() {
		t.Fatal("ctrl+k should open the palette")
	}

	for _, r := range "ORION" {
		app = press(t, app, runeKey(r))
	}
	if app.State().Query != "orion" {
		t.Errorf("expected normalized query 'orion', got %q", app.State().Query)
	}
	results := app.Snapshot().Results
	if len(results) != 1 || results[0].Title != "Orion-2 (Acme)" {
		t.Errorf("expected the Orion model, got %+v", results)
	}

	// Keys that would toggle panels go to the input while the palette is open.
	if app.State().Panel != board.PanelAll {
		t.Errorf("expected panel unchanged, got %s", app.State().Panel)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.PaletteActive() {
		t.Error("esc should close the palette")
	}
	if app.State().Query != "" {
		t.Errorf("esc should clear the query, got %q", app.State().Query)
	}
	if len(app.Snapshot().Results) != 4 {
		t.Errorf("expected all results after close, got %d", len(app.Snapshot().Results))
	}
}

func TestAppPaletteKeepsTag(t *testing.T) {
	app := press(t, loadedApp(t), tea.KeyMsg{Type: tea.KeySpace}, runeKey('/'))
	for _, r := range "rules" {
		app = press(t, app, runeKey(r))
	}
	if app.State().ActiveTag != "policy" {
		t.Errorf("expected tag to survive search, got %q", app.State().ActiveTag)
	}
	// The search runs over every signal, independent of the tag.
	if len(app.Snapshot().Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(app.Snapshot().Results))
	}
}

func TestAppReload(t *testing.T) {
	mock := &mockCmd{}
	app := NewApp(mock.load, mock.reload, Options{Now: fixedNow})

	_, cmd := app.Update(runeKey('r'))
	if !mock.reloadCalled {
		t.Error("r should call reload")
	}
	if cmd == nil {
		t.Error("r should return a command")
	}
}

func TestAppReloadKeepsState(t *testing.T) {
	app := press(t, loadedApp(t), runeKey('2'), tea.KeyMsg{Type: tea.KeySpace})

	model, _ := app.Update(StreamsLoaded{Result: testResult()})
	app = model.(App)

	if app.State().Panel != board.PanelNews || app.State().ActiveTag != "policy" {
		t.Errorf("expected view state to survive reload, got %+v", app.State())
	}
}

func TestAppThrottledReload(t *testing.T) {
	app := loadedApp(t)

	model, _ := app.Update(StreamsLoaded{Err: errors.New("reload throttled")})
	app = model.(App)

	if app.Snapshot().Summary.Total != 4 {
		t.Errorf("expected board kept after throttled reload, got total %d", app.Snapshot().Summary.Total)
	}
	if !strings.Contains(app.View(), "reload throttled") {
		t.Error("expected error in view")
	}
}

func TestAppQuit(t *testing.T) {
	app := NewApp(nil, nil, Options{})

	_, cmd := app.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestAppQuitCtrlC(t *testing.T) {
	app := NewApp(nil, nil, Options{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestAppClockTick(t *testing.T) {
	app := loadedApp(t)
	later := now.Add(7 * time.Minute)

	model, cmd := app.Update(ClockTick{Time: later})
	app = model.(App)
	if cmd == nil {
		t.Error("ClockTick should schedule the next tick")
	}
	if !strings.Contains(app.View(), "12:07 UTC") {
		t.Error("expected header clock to advance")
	}
}

func TestAppViewNotReady(t *testing.T) {
	app := NewApp(nil, nil, Options{})
	if app.View() != "Loading..." {
		t.Errorf("expected 'Loading...', got %q", app.View())
	}
}

func TestAppView(t *testing.T) {
	out := loadedApp(t).View()

	for _, want := range []string{
		"4 signals",
		"last sync 14 Mar, 11:55",
		"12:00 UTC",
		"Chip export rules tighten",
		"5m ago",
		"Wire • US",
		"Orion-2",
		OfflineMessage,
		"12ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestAppViewEmptyTag(t *testing.T) {
	// "vision" only matches the model card.
	app := press(t, loadedApp(t), runeKey('l'), runeKey('l'), tea.KeyMsg{Type: tea.KeySpace})
	if !strings.Contains(app.View(), "No news matches that tag.") {
		t.Error("expected empty news message")
	}
}

func TestAppViewMutedPanels(t *testing.T) {
	app := press(t, loadedApp(t), runeKey('4'))
	out := app.View()
	if !strings.Contains(out, "News · 2 briefs") {
		t.Error("expected collapsed news heading")
	}
	if strings.Contains(out, "Chip export rules tighten") {
		t.Error("expected muted news body to be hidden")
	}
}
