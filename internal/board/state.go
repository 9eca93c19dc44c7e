package board

import (
	"github.com/abelbrown/signalboard/internal/facet"
	"github.com/abelbrown/signalboard/internal/search"
	"github.com/abelbrown/signalboard/internal/signal"
)

// Panel is the panel filter chip the user has selected.
type Panel string

const (
	PanelAll      Panel = "all"
	PanelNews     Panel = "news"
	PanelResearch Panel = "research"
	PanelModels   Panel = "models"
	PanelVideos   Panel = "videos"
	PanelSocial   Panel = "social"
)

// Panels lists the chips in display order.
var Panels = []Panel{PanelAll, PanelNews, PanelResearch, PanelModels, PanelVideos, PanelSocial}

// PanelFor returns the panel that shows stream t.
func PanelFor(t signal.Type) Panel {
	switch t {
	case signal.TypeNews:
		return PanelNews
	case signal.TypeResearch:
		return PanelResearch
	case signal.TypeModel:
		return PanelModels
	case signal.TypeVideo:
		return PanelVideos
	case signal.TypeSocial:
		return PanelSocial
	}
	return PanelAll
}

// State is the whole of the session's view state. It is a value: every
// transition returns a new State and the caller keeps the one it wants.
type State struct {
	ActiveTag string // "" when no tag is active
	Query     string // normalized; "" when the palette is unfiltered
	Panel     Panel
}

// NewState returns the initial state: every panel, no tag, no query.
func NewState() State {
	return State{Panel: PanelAll}
}

// ToggleTag applies a facet click.
func (s State) ToggleTag(tag string) State {
	s.ActiveTag = facet.Toggle(s.ActiveTag, tag)
	return s
}

// ClearTag drops the active tag.
func (s State) ClearTag() State {
	s.ActiveTag = ""
	return s
}

// WithQuery sets the palette query from raw input.
func (s State) WithQuery(raw string) State {
	s.Query = search.Normalize(raw)
	return s
}

// WithPanel selects a panel chip.
func (s State) WithPanel(p Panel) State {
	s.Panel = p
	return s
}

// NextPanel cycles to the following chip, wrapping around.
func (s State) NextPanel() State {
	for i, p := range Panels {
		if p == s.Panel {
			s.Panel = Panels[(i+1)%len(Panels)]
			return s
		}
	}
	s.Panel = PanelAll
	return s
}

// Muted reports whether stream t is outside the selected panel.
func (s State) Muted(t signal.Type) bool {
	if s.Panel == PanelAll || s.Panel == "" {
		return false
	}
	return PanelFor(t) != s.Panel
}
