// Package palette is the ctrl+k search overlay: a query input over the
// combined signal list.
package palette

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/timefmt"
)

// EmptyMessage is shown when no signal matches the query.
const EmptyMessage = "No signals found. Try a broader query."

// maxVisible is how many results fit in the overlay at once.
const maxVisible = 8

// Action tells the caller what a key press meant.
type Action int

const (
	ActionNone   Action = iota
	ActionQuery         // input text changed
	ActionClose         // esc: palette closed and query cleared
	ActionSelect        // enter on a result
)

// Palette is the search overlay. It owns the raw input text; the caller owns
// the normalized query and the result list.
type Palette struct {
	input  textinput.Model
	cursor int
	width  int
	active bool
}

// New creates a new palette
func New() Palette {
	ti := textinput.New()
	ti.Placeholder = "Search signals..."
	ti.Prompt = "⌕ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9"))
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff"))
	ti.CharLimit = 120

	return Palette{input: ti}
}

// Activate shows the palette, keeping any text already typed.
func (p *Palette) Activate() tea.Cmd {
	p.active = true
	p.input.Focus()
	return textinput.Blink
}

// Deactivate hides the palette and clears the input.
func (p *Palette) Deactivate() {
	p.active = false
	p.input.SetValue("")
	p.input.Blur()
	p.cursor = 0
}

// IsActive returns whether palette is showing
func (p Palette) IsActive() bool {
	return p.active
}

// Value returns the raw input text.
func (p Palette) Value() string {
	return p.input.Value()
}

// Cursor returns the highlighted result index.
func (p Palette) Cursor() int {
	return p.cursor
}

// SetWidth sets the palette width
func (p *Palette) SetWidth(w int) {
	p.width = w
	p.input.Width = w - 10
}

// Update handles input. n is the current result count, used to bound the
// cursor.
func (p Palette) Update(msg tea.Msg, n int) (Palette, tea.Cmd, Action) {
	if !p.active {
		return p, nil, ActionNone
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.Deactivate()
			return p, nil, ActionClose

		case "enter":
			if n == 0 {
				return p, nil, ActionNone
			}
			return p, nil, ActionSelect

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, ActionNone

		case "down", "ctrl+n":
			if p.cursor < n-1 {
				p.cursor++
			}
			return p, nil, ActionNone
		}
	}

	oldValue := p.input.Value()

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if p.input.Value() != oldValue {
		p.cursor = 0
		return p, cmd, ActionQuery
	}
	return p, cmd, ActionNone
}

// View renders the palette over results. now drives relative timestamps.
func (p Palette) View(results []signal.Signal, now time.Time) string {
	if !p.active {
		return ""
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#30363d")).
		Padding(0, 1).
		Width(max(p.width-4, 20))

	itemStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c9d1d9")).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#58a6ff")).
		Background(lipgloss.Color("#21262d")).
		Bold(true).
		Padding(0, 1)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8b949e"))

	typeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#484f58")).
		Width(9)

	var b strings.Builder

	b.WriteString(p.input.View())
	b.WriteString("\n")

	dividerWidth := max(p.width-8, 0)
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#30363d")).
		Render(strings.Repeat("─", dividerWidth)))
	b.WriteString("\n")

	if len(results) == 0 {
		b.WriteString(descStyle.Render("  " + EmptyMessage))
		b.WriteString("\n")
	}

	cursor := min(p.cursor, max(len(results)-1, 0))
	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(results))

	if start > 0 {
		b.WriteString(descStyle.Render("  ↑ more above"))
		b.WriteString("\n")
	}

	titleWidth := max(p.width-40, 16)
	for i := start; i < end; i++ {
		s := results[i]
		title := runewidth.Truncate(s.Title, titleWidth, "…")
		age := timefmt.Relative(s.Timestamp, now)

		var name string
		if i == cursor {
			name = selectedStyle.Render("› " + title)
		} else {
			name = itemStyle.Render("  " + title)
		}
		line := typeStyle.Render(string(s.Type)) + name + descStyle.Render(" "+s.Subtitle)

		padding := p.width - 10 - lipgloss.Width(line) - lipgloss.Width(age)
		if padding > 0 {
			line += strings.Repeat(" ", padding) + descStyle.Render(age)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(results) {
		b.WriteString(descStyle.Render(fmt.Sprintf("  ↓ %d more", len(results)-end)))
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#484f58")).
		Render("↑↓ navigate  enter select  esc close")
	b.WriteString(help)

	return containerStyle.Render(b.String())
}
