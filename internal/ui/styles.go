package ui

import (
	"github.com/charmbracelet/lipgloss"

	"procview/internal/app"
)

// Theme colors used throughout the UI
const (
	ColorAccent         = "86"  // Cyan/green - titles
	ColorMuted          = "241" // Gray - hints, captions
	ColorDanger         = "196" // Red - exit notice, errors
	ColorKey            = "39"  // Blue - key names in the caption
	ColorGaugePrimary   = "42"  // Green - default gauge fill
	ColorGaugeSecondary = "220" // Yellow - toggled gauge fill
	ColorGaugeTrack     = "238" // Dark gray - unfilled gauge track
)

// Styles contains shared style definitions for the dashboard.
type Styles struct {
	Title   lipgloss.Style // main title region
	Heading lipgloss.Style // panel heading
	Panel   lipgloss.Style // bordered gauge panel
	Label   lipgloss.Style // gauge percentage label
	Hint    lipgloss.Style // caption text
	Key     lipgloss.Style // key names inside the caption
	Notice  lipgloss.Style // exit notice
	Track   lipgloss.Style // unfilled gauge cells
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		Label: lipgloss.NewStyle(),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorKey)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)),
		Track: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGaugeTrack)),
	}
}

// GaugeFill returns the fill style mapped from the state machine's color.
func (s Styles) GaugeFill(c app.GaugeColor) lipgloss.Style {
	if c == app.ColorSecondary {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGaugeSecondary))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGaugePrimary))
}
