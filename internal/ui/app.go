package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/ui/palette"
)

// clockInterval is how often the header clock and relative ages refresh.
const clockInterval = 30 * time.Second

// Options configure an App.
type Options struct {
	ShowClock bool
	Now       func() time.Time // defaults to time.Now
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT read streams itself. It receives them via messages.
type App struct {
	load   func() tea.Cmd
	reload func() tea.Cmd
	now    func() time.Time

	board *board.Board
	state board.State
	snap  board.Snapshot
	info  LoadInfo

	palette     palette.Palette
	spinner     spinner.Model
	facetCursor int
	scroll      int
	showClock   bool
	clock       time.Time

	status  string
	err     error
	width   int
	height  int
	ready   bool
	loading bool
}

// NewApp creates a new App with the given command functions.
// load: returns a Cmd that runs the initial load cycle
// reload: returns a Cmd that runs a manual (possibly throttled) reload
func NewApp(load, reload func() tea.Cmd, opts Options) App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	a := App{
		load:      load,
		reload:    reload,
		now:       now,
		board:     board.New(signal.Streams{}, nil),
		state:     board.NewState(),
		palette:   palette.New(),
		spinner:   s,
		showClock: opts.ShowClock,
		clock:     now(),
		loading:   load != nil,
	}
	a.snap = a.board.Snapshot(a.state)
	return a
}

// Init starts the initial load and the clock.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.tickClock()}
	if a.load != nil {
		cmds = append(cmds, a.load(), a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (a App) tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return ClockTick{Time: t}
	})
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.palette.IsActive() {
			return a.handlePaletteKey(msg)
		}
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.palette.SetWidth(msg.Width)
		return a, nil

	case StreamsLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.applyResult(msg.Result)
		return a, nil

	case ClockTick:
		a.clock = msg.Time
		return a, a.tickClock()

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// applyResult rebuilds the board from a finished load cycle. View state
// survives the reload.
func (a *App) applyResult(res fetch.Result) {
	a.board = board.New(res.Streams, res.Offline)
	a.err = nil
	a.clock = a.now()

	undecodable := 0
	for _, n := range res.Undecodable {
		undecodable += n
	}
	a.info = LoadInfo{
		Source:      res.Source,
		Took:        res.Took,
		Offline:     len(res.Offline),
		Undecodable: undecodable,
		Loaded:      true,
	}

	if n := len(a.board.Facets()); a.facetCursor >= n {
		a.facetCursor = max(n-1, 0)
	}
	a.refresh()
}

// refresh recomputes the snapshot after a state change.
func (a *App) refresh() {
	a.snap = a.board.Snapshot(a.state)
}

func (a *App) setState(s board.State) {
	a.state = s
	a.refresh()
}

// handlePaletteKey routes input to the open palette.
func (a App) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	var action palette.Action
	a.palette, cmd, action = a.palette.Update(msg, len(a.snap.Results))

	switch action {
	case palette.ActionQuery:
		a.setState(a.state.WithQuery(a.palette.Value()))
	case palette.ActionClose:
		a.setState(a.state.WithQuery(""))
	case palette.ActionSelect:
		if i := a.palette.Cursor(); i < len(a.snap.Results) {
			sel := a.snap.Results[i]
			a.status = string(sel.Type) + " · " + sel.Title
			if sel.Link != "" {
				a.status += " · " + sel.Link
			}
		}
	}
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = nil
	a.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Palette):
		cmd := a.palette.Activate()
		return a, cmd

	case key.Matches(msg, keys.Reload):
		if a.reload != nil {
			a.loading = true
			return a, tea.Batch(a.reload(), a.spinner.Tick)
		}
		return a, nil

	case key.Matches(msg, keys.Panel):
		idx := int(msg.Runes[0] - '1')
		if idx >= 0 && idx < len(board.Panels) {
			a.setState(a.state.WithPanel(board.Panels[idx]))
			a.scroll = 0
		}
		return a, nil

	case key.Matches(msg, keys.NextPanel):
		a.setState(a.state.NextPanel())
		a.scroll = 0
		return a, nil

	case key.Matches(msg, keys.FacetLeft):
		if a.facetCursor > 0 {
			a.facetCursor--
		}
		return a, nil

	case key.Matches(msg, keys.FacetRight):
		if a.facetCursor < len(a.snap.Facets)-1 {
			a.facetCursor++
		}
		return a, nil

	case key.Matches(msg, keys.ToggleTag):
		if a.facetCursor < len(a.snap.Facets) {
			a.setState(a.state.ToggleTag(a.snap.Facets[a.facetCursor]))
			a.scroll = 0
		}
		return a, nil

	case key.Matches(msg, keys.ClearTag):
		a.setState(a.state.ClearTag())
		return a, nil

	case key.Matches(msg, keys.Down):
		a.scroll++
		return a, nil

	case key.Matches(msg, keys.Up):
		if a.scroll > 0 {
			a.scroll--
		}
		return a, nil

	case key.Matches(msg, keys.Top):
		a.scroll = 0
		return a, nil

	case key.Matches(msg, keys.Bottom):
		a.scroll = 1 << 30
		return a, nil
	}

	return a, nil
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	busy := ""
	if a.loading {
		busy = a.spinner.View()
	}

	var b strings.Builder
	b.WriteString(RenderHeader(a.snap.Summary, a.clock, a.showClock, a.width, busy))
	b.WriteString("\n")
	b.WriteString(RenderChips(a.snap))
	b.WriteString("\n")
	b.WriteString(RenderFacets(a.snap.Facets, a.state.ActiveTag, a.facetCursor, a.width))
	b.WriteString("\n")

	// header, chips, facets, status bar
	contentHeight := a.height - 4
	if a.err != nil {
		contentHeight--
	}
	contentHeight = max(contentHeight, 1)

	if a.palette.IsActive() {
		b.WriteString(a.palette.View(a.snap.Results, a.clock))
		b.WriteString("\n")
	} else {
		b.WriteString(window(RenderPanels(a.snap, a.clock, a.width), a.scroll, contentHeight))
	}

	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + a.err.Error() + " (press any key to dismiss)"))
		b.WriteString("\n")
	}

	b.WriteString(RenderStatusBar(a.info, a.status, a.width))
	return b.String()
}

// window returns at most height lines starting at offset, clamped so the
// last page stays full.
func window(lines []string, offset, height int) string {
	if offset > len(lines)-height {
		offset = len(lines) - height
	}
	offset = max(offset, 0)
	end := min(offset+height, len(lines))

	var b strings.Builder
	for _, l := range lines[offset:end] {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// State returns the current view state (for testing).
func (a App) State() board.State {
	return a.state
}

// Snapshot returns the current snapshot (for testing).
func (a App) Snapshot() board.Snapshot {
	return a.snap
}

// FacetCursor returns the focused facet index (for testing).
func (a App) FacetCursor() int {
	return a.facetCursor
}

// PaletteActive reports whether the search overlay is open.
func (a App) PaletteActive() bool {
	return a.palette.IsActive()
}
