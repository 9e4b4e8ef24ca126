package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-bandmeter/analysis"
	"github.com/cwbudde/algo-bandmeter/meter"
)

const segmentGlyph = "██████"

// segmentColors runs from the lowest segment (green) to the top (red).
var segmentColors = []lipgloss.AdaptiveColor{
	{Light: "#1B8A3A", Dark: "#4CD964"},
	{Light: "#4E9A06", Dark: "#8AE234"},
	{Light: "#A5A500", Dark: "#E5E500"},
	{Light: "#C47A00", Dark: "#FFB000"},
	{Light: "#C45500", Dark: "#FF7A1A"},
	{Light: "#A00000", Dark: "#FF4040"},
}

var (
	labelStyle = lipgloss.NewStyle().
			Width(len([]rune(segmentGlyph))).
			Align(lipgloss.Center).
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	columnGap = strings.Repeat(" ", 2)
)

// renderer draws one vertical segment bar per band.
type renderer struct {
	thresholds []float64
	labels     []string
	styles     []lipgloss.Style
	blank      string
	showDB     bool
}

func newRenderer(bands analysis.Bands, thresholds []float64, showDB bool) *renderer {
	r := &renderer{
		thresholds: thresholds,
		labels:     make([]string, len(bands)),
		styles:     make([]lipgloss.Style, len(thresholds)),
		blank:      strings.Repeat(" ", len([]rune(segmentGlyph))),
		showDB:     showDB,
	}

	for i, b := range bands {
		r.labels[i] = bandLabel(b)
	}

	for i := range r.styles {
		r.styles[i] = lipgloss.NewStyle().Foreground(segmentColors[min(i, len(segmentColors)-1)])
	}

	return r
}

// bandLabel abbreviates a band to its lower edge, e.g. "250" or "2k".
func bandLabel(b analysis.Band) string {
	if b.Low >= 1000 {
		return fmt.Sprintf("%gk", b.Low/1000)
	}
	return fmt.Sprintf("%g", b.Low)
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.1f dBFS", db)
}

// column renders one band bar, top segment first.
func (r *renderer) column(percent float64) string {
	lit := meter.Segments(percent, r.thresholds)

	rows := make([]string, len(r.thresholds))
	for seg := range r.thresholds {
		row := len(r.thresholds) - 1 - seg
		if seg < lit {
			rows[row] = r.styles[seg].Render(segmentGlyph)
		} else {
			rows[row] = r.blank
		}
	}

	return strings.Join(rows, "\n")
}

// Render draws the frame as a block of text.
func (r *renderer) Render(f meter.Frame) string {
	cols := make([]string, 0, 2*len(f.Percent))
	for i, p := range f.Percent {
		if i > 0 {
			cols = append(cols, columnGap)
		}

		label := ""
		if i < len(r.labels) {
			label = r.labels[i]
		}

		col := r.column(p) + "\n" + labelStyle.Render(label)
		if r.showDB {
			col += "\n" + labelStyle.Render(fmt.Sprintf("%.0f", f.DB[i]))
		}
		cols = append(cols, col)
	}

	out := lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)

	status := fmt.Sprintf("peak %s  rms %s  blocks %d", formatDB(f.Level.PeakDB), formatDB(f.Level.RMSDB), f.Blocks)
	if f.Silent {
		status += "  silent"
	}

	return out + "\n" + statusStyle.Render(status)
}
