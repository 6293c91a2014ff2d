package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/smallworld/experiment"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - healthy values
	colorRed   = lipgloss.Color("167") // Soft red - undefined values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - borders
)

var (
	// StyleTitle for table titles.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// formatFloat renders x with 4 decimals, or "n/a" for NaN.
func formatFloat(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", x)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header row
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// printConnectivity writes the connectivity table for n-vertex samples.
func printConnectivity(w io.Writer, n int, pts []experiment.ConnectivityPoint) {
	t := newTable("p", "connected", "trials", "rate", "giant")
	for _, pt := range pts {
		t.Row(
			fmt.Sprintf("%g", pt.P),
			fmt.Sprintf("%d", pt.Connected),
			fmt.Sprintf("%d", pt.Trials),
			formatFloat(pt.Rate),
			formatFloat(pt.GiantFraction),
		)
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("G(n,p) connectivity, n=%d", n)))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("threshold ln(n)/n = %s", formatFloat(experiment.ConnectivityThreshold(n)))))
	fmt.Fprintln(w, t.Render())
}

// printSweep writes the Watts–Strogatz sweep table.
func printSweep(w io.Writer, n, k int, pts []experiment.SweepPoint) {
	t := newTable("p", "C(p)", "L(p)", "C(p)/C(0)", "L(p)/L(0)", "disconnected")
	for _, pt := range pts {
		disc := fmt.Sprintf("%d", pt.Disconnected)
		if pt.Disconnected > 0 {
			disc = lipgloss.NewStyle().Foreground(colorRed).Render(disc)
		} else {
			disc = lipgloss.NewStyle().Foreground(colorGreen).Render(disc)
		}
		t.Row(
			fmt.Sprintf("%g", pt.P),
			formatFloat(pt.C),
			formatFloat(pt.L),
			formatFloat(pt.CRatio),
			formatFloat(pt.LRatio),
			disc,
		)
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Watts–Strogatz sweep, n=%d k=%d", n, k)))
	fmt.Fprintln(w, t.Render())
}
