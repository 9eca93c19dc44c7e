package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/signalboard/internal/board"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/stats"
	"github.com/abelbrown/signalboard/internal/timefmt"
)

// OfflineMessage heads a panel whose stream failed to load.
const OfflineMessage = "Stream offline"

// panelMeta describes how a stream's panel is labelled.
type panelMeta struct {
	title string
	unit  string // counter noun: "3 briefs"
	empty string // body when the tag filter leaves nothing
}

var panelMetas = map[signal.Type]panelMeta{
	signal.TypeNews:     {"News", "briefs", "No news matches that tag."},
	signal.TypeResearch: {"Research", "drops", "No research items for this tag."},
	signal.TypeModel:    {"Models", "tracked", "No models match that tag."},
	signal.TypeVideo:    {"Videos", "explainers", "No videos match that tag."},
	signal.TypeSocial:   {"Social", "posts", "No posts match that tag."},
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderHeader renders the top line: totals, last sync and the UTC clock.
func RenderHeader(sum stats.Summary, now time.Time, showClock bool, width int, busy string) string {
	lastSync := "—"
	if sum.HasRecent() {
		lastSync = timefmt.Absolute(sum.MostRecent)
	}

	left := fmt.Sprintf("SIGNALBOARD  %d signals · last sync %s", sum.Total, lastSync)
	if busy != "" {
		left += "  " + busy
	}

	right := ""
	if showClock {
		right = timefmt.Clock(now)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return Header.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// RenderChips renders the panel chip row with per-panel counts.
func RenderChips(snap board.Snapshot) string {
	chips := make([]string, 0, len(board.Panels))
	for i, p := range board.Panels {
		label := fmt.Sprintf("%d %s", i+1, chipLabel(p, snap))
		if p == snap.State.Panel {
			chips = append(chips, ActiveChip.Render(label))
		} else {
			chips = append(chips, Chip.Render(label))
		}
	}
	return strings.Join(chips, "")
}

func chipLabel(p board.Panel, snap board.Snapshot) string {
	if p == board.PanelAll {
		return "All"
	}
	for _, t := range signal.StreamOrder {
		if board.PanelFor(t) == p {
			return fmt.Sprintf("%s (%d)", panelMetas[t].title, snap.Count(t))
		}
	}
	return string(p)
}

// RenderFacets renders the tag row. cursor is the facet under focus.
func RenderFacets(facets []string, activeTag string, cursor, width int) string {
	active := activeTag
	if active == "" {
		active = "None"
	}
	prefix := MetaText.Render("Tags") + " "
	suffix := " " + MetaText.Render("active: "+active)

	if len(facets) == 0 {
		return prefix + EmptyState.Render("no tags yet") + suffix
	}

	parts := make([]string, 0, len(facets))
	for i, tag := range facets {
		switch {
		case tag == activeTag:
			parts = append(parts, ActiveChip.Render(tag))
		case i == cursor:
			parts = append(parts, FocusedChip.Render(tag))
		default:
			parts = append(parts, Chip.Render(tag))
		}
	}
	row := prefix + strings.Join(parts, "") + suffix
	if lipgloss.Width(row) > width && width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

// RenderPanels renders every stream panel in stream order as lines. Panels
// outside the selected chip collapse to their heading.
func RenderPanels(snap board.Snapshot, now time.Time, width int) []string {
	var lines []string
	for _, t := range signal.StreamOrder {
		lines = append(lines, renderPanel(snap, t, now, width)...)
	}
	return lines
}

func renderPanel(snap board.Snapshot, t signal.Type, now time.Time, width int) []string {
	meta := panelMetas[t]
	heading := fmt.Sprintf("%s · %d %s", meta.title, snap.Count(t), meta.unit)

	if snap.State.Muted(t) {
		return []string{MutedPanel.Render(heading)}
	}

	lines := []string{"", PanelTitle.Render(meta.title) + " " + PanelCount.Render(fmt.Sprintf("%d %s", snap.Count(t), meta.unit))}

	if err := snap.Offline[t]; err != nil {
		lines = append(lines,
			OfflineStyle.Render(OfflineMessage),
			MetaText.Render(truncate(err.Error(), width-4)),
		)
		return lines
	}

	if snap.Count(t) == 0 {
		body := meta.empty
		if snap.State.ActiveTag == "" {
			body = "Nothing in this stream yet."
		}
		lines = append(lines, EmptyState.Render(body))
	} else {
		lines = append(lines, renderRecords(snap, t, now, width)...)
	}

	if n := snap.Skipped[t]; n > 0 {
		noun := "records"
		if n == 1 {
			noun = "record"
		}
		lines = append(lines, MetaText.Render(fmt.Sprintf("%d malformed %s skipped", n, noun)))
	}
	return lines
}

func renderRecords(snap board.Snapshot, t signal.Type, now time.Time, width int) []string {
	var lines []string
	textWidth := width - 4

	headline := func(title string, ts time.Time) string {
		age := timefmt.Relative(ts, now)
		return NormalItem.Render(truncate(title, textWidth-len(age)-3)) + " " + MetaText.Render(age)
	}
	body := func(s string) string {
		return MetaText.Render(truncate(s, textWidth))
	}
	tags := func(ts []string) string {
		if len(ts) == 0 {
			return ""
		}
		return "  " + TagText.Render(truncate("#"+strings.Join(ts, " #"), textWidth))
	}
	appendIf := func(s string) {
		if s != "" {
			lines = append(lines, s)
		}
	}

	switch t {
	case signal.TypeNews:
		for _, r := range snap.News {
			lines = append(lines, headline(r.Title, r.Timestamp))
			lines = append(lines, body(joinMeta(r.Source, r.Region)))
			appendIf(summaryLine(r.Summary, body))
			appendIf(tags(r.Tags))
		}
	case signal.TypeResearch:
		for _, r := range snap.Research {
			lines = append(lines, headline(r.Title, r.Timestamp))
			lines = append(lines, body(joinMeta(strings.Join(r.Authors, ", "), r.Organization)))
			appendIf(summaryLine(r.Abstract, body))
			appendIf(tags(r.Tags))
		}
	case signal.TypeModel:
		for _, r := range snap.Models {
			row := fmt.Sprintf("%-18s %-12s %-6s %-6s %-16s %5.1f%%  %s",
				truncate(r.Name, 18), truncate(r.Provider, 12), r.Params, r.Context,
				truncate(strings.Join(r.Modalities, " / "), 16), r.Benchmarks.MMLU, r.Efficiency)
			lines = append(lines, NormalItem.Render(truncate(row, textWidth)))
		}
	case signal.TypeVideo:
		for _, r := range snap.Videos {
			lines = append(lines, headline(r.Title, r.Timestamp))
			lines = append(lines, body(joinMeta(r.Channel, r.Duration)))
			appendIf(summaryLine(r.Summary, body))
			appendIf(tags(r.Tags))
		}
	case signal.TypeSocial:
		for _, r := range snap.Social {
			lines = append(lines, headline(fmt.Sprintf("%s (@%s)", r.Author, r.Handle), r.Timestamp))
			appendIf(summaryLine(r.Content, body))
			lines = append(lines, body(fmt.Sprintf("%d likes · %d reposts", r.Stats.Likes, r.Stats.Reposts)))
			appendIf(tags(r.Tags))
		}
	}
	return lines
}

func summaryLine(s string, render func(string) string) string {
	if s == "" {
		return ""
	}
	return render(s)
}

// joinMeta joins non-empty byline parts with a bullet.
func joinMeta(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}

// RenderStatusBar renders the bottom bar: load info on the left, key hints
// on the right. status overrides the load info when set.
func RenderStatusBar(res LoadInfo, status string, width int) string {
	left := status
	if left == "" {
		left = res.String()
	}
	left = " " + left + " "

	hints := make([]string, 0, len(hintBindings))
	for _, b := range hintBindings {
		h := b.Help()
		hints = append(hints, StatusBarKey.Render(h.Key)+StatusBarText.Render(":"+h.Desc))
	}
	keyHints := strings.Join(hints, " ")

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(keyHints)-2, 0)
	bar := left + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}

// LoadInfo summarizes the last load cycle for the status bar.
type LoadInfo struct {
	Source      string
	Took        time.Duration
	Offline     int
	Undecodable int
	Loaded      bool
}

func (l LoadInfo) String() string {
	if !l.Loaded {
		return "Loading..."
	}
	s := fmt.Sprintf("%s · %dms", l.Source, l.Took.Milliseconds())
	if l.Offline > 0 {
		s += fmt.Sprintf(" · %d offline", l.Offline)
	}
	if l.Undecodable > 0 {
		s += fmt.Sprintf(" · %d undecodable", l.Undecodable)
	}
	return s
}
