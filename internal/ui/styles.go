package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarn      = lipgloss.Color("214") // Amber
)

// Header style for the top line (brand, totals, clock).
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// Chip style for an unselected panel chip or facet.
var Chip = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// ActiveChip style for the selected panel chip or the active tag.
var ActiveChip = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// FocusedChip style for the facet under the cursor.
var FocusedChip = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Underline(true).
	Padding(0, 1)

// PanelTitle style for a panel heading.
var PanelTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// PanelCount style for the "3 briefs" counter next to a heading.
var PanelCount = lipgloss.NewStyle().
	Foreground(colorSecondary)

// MutedPanel style for panels outside the selected chip.
var MutedPanel = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// NormalItem style for a record title.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// MetaText style for bylines and timestamps.
var MetaText = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// TagText style for inline tags.
var TagText = lipgloss.NewStyle().
	Foreground(colorSuccess)

// EmptyState style for "nothing here" panel bodies.
var EmptyState = lipgloss.NewStyle().
	Foreground(colorMuted).
	Italic(true).
	Padding(0, 1)

// OfflineStyle for a stream that failed to load.
var OfflineStyle = lipgloss.NewStyle().
	Foreground(colorWarn).
	Bold(true).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)
