// Package tui implements the read-only task board.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tasklink/tasklink/internal/domain"
)

// Colors defines the color palette for the board.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color

	Draft      lipgloss.Color
	InProgress lipgloss.Color
	InReview   lipgloss.Color
	Paused     lipgloss.Color
	Done       lipgloss.Color
	Abandoned  lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Selected: lipgloss.Color("#FFEAA7"), // Yellow

	Draft:      lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	InReview:   lipgloss.Color("#A29BFE"), // Lavender
	Paused:     lipgloss.Color("#B2BEC3"), // Light gray
	Done:       lipgloss.Color("#00B894"), // Green
	Abandoned:  lipgloss.Color("#636E72"), // Gray
}

// Styles contains the lipgloss styles for the board.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style

	statuses map[domain.Status]lipgloss.Style
}

// DefaultStyles returns the default board styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(Colors.Selected),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#DFE6E9")),
		Muted:    lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		statuses: map[domain.Status]lipgloss.Style{
			domain.StatusDraft:      lipgloss.NewStyle().Foreground(Colors.Draft),
			domain.StatusInProgress: lipgloss.NewStyle().Foreground(Colors.InProgress),
			domain.StatusInReview:   lipgloss.NewStyle().Foreground(Colors.InReview),
			domain.StatusPaused:     lipgloss.NewStyle().Foreground(Colors.Paused),
			domain.StatusDone:       lipgloss.NewStyle().Foreground(Colors.Done),
			domain.StatusAbandoned:  lipgloss.NewStyle().Foreground(Colors.Abandoned),
		},
	}
}

// Status returns the style for a status badge.
func (s Styles) Status(status domain.Status) lipgloss.Style {
	if st, ok := s.statuses[status]; ok {
		return st
	}
	return s.Muted
}
