package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/asdesign/internal/geometry"
)

// ASCIIColumnCurve plots φNcx and φNcy against length for the terminal
func ASCIIColumnCurve(data *ColumnCurveData, height int) string {
	if height <= 0 {
		height = 15
	}
	graph := asciigraph.PlotMany(
		[][]float64{data.PhiNcx, data.PhiNcy},
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.LowerBound(0),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("φNcx", "φNcy"),
		asciigraph.Caption(fmt.Sprintf("%s  φNc (kN), l = 0 to %.0f mm", data.Title, data.Lengths[len(data.Lengths)-1])),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  COLUMN CURVE\n")
	sb.WriteString("  ────────────\n\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIISection rasterises the section outline into rows characters high
func DrawASCIISection(sec *geometry.Section, rows int) string {
	if rows <= 0 {
		rows = 16
	}
	rings := sec.Outline()
	minX, maxX, minY, maxY := ringBounds(rings)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return ""
	}
	// Terminal cells are about twice as tall as wide
	cols := int(math.Round(float64(rows) * 2 * w / h))
	cols = max(4, min(cols, 72))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", sec.Name))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(sec.Name)))))
	for r := 0; r < rows; r++ {
		y := maxY - (float64(r)+0.5)*h/float64(rows)
		sb.WriteString("  ")
		for c := 0; c < cols; c++ {
			x := minX + (float64(c)+0.5)*w/float64(cols)
			if inside(rings, x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\n  d = %.1f mm, b = %.1f mm\n", h, w))
	return sb.String()
}

// inside applies the even-odd rule across all rings, so inner rings cut holes
func inside(rings [][]geometry.Point, x, y float64) bool {
	in := false
	for _, ring := range rings {
		n := len(ring)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

func ringBounds(rings [][]geometry.Point) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	return minX, maxX, minY, maxY
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; fmt widths count bytes
func pad(s string, n int) string {
	if k := n - len([]rune(s)); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
