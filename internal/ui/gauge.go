package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

const gaugeTrackRune = '░'

// gaugeCells builds the bar's filled and track portions as plain runes.
// The returned strings concatenate to exactly width cells.
func gaugeCells(ratio float64, width int) (filled, track string) {
	if width <= 0 {
		return "", ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	totalUnits := width * 8
	filledUnits := int(math.Round(ratio * float64(totalUnits)))

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	trackCells := width - fullCells
	if partialEighths > 0 {
		trackCells--
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(string(gaugeBlocks[8]), fullCells))
	if partialEighths > 0 {
		b.WriteRune(gaugeBlocks[partialEighths])
	}
	return b.String(), strings.Repeat(string(gaugeTrackRune), trackCells)
}

// renderGauge colors the bar: fill style for the filled cells, track style
// for the rest.
func renderGauge(ratio float64, width int, fill, track lipgloss.Style) string {
	f, t := gaugeCells(ratio, width)
	return fill.Render(f) + track.Render(t)
}
