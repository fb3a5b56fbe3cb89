package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/asdesign/internal/geometry"
)

// ExportColumnCurve exports φNc against length about both axes to an image file
func ExportColumnCurve(data *ColumnCurveData, filename string) error {
	p := plot.New()
	p.Title.Text = "Column Curve " + data.Title
	p.X.Label.Text = "Member length (mm)"
	p.Y.Label.Text = "φNc (kN)"
	p.Y.Min = 0
	p.Legend.Top = true

	series := []struct {
		name  string
		ys    []float64
		color color.Color
	}{
		{"φNcx", data.PhiNcx, color.RGBA{R: 0, G: 0, B: 139, A: 255}},
		{"φNcy", data.PhiNcy, color.RGBA{R: 200, G: 0, B: 0, A: 255}},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(data.Lengths))
		for i, l := range data.Lengths {
			pts[i] = plotter.XY{X: l, Y: s.ys[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = s.color
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	// Section capacity reference line
	ns, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.PhiNs},
		{X: data.Lengths[len(data.Lengths)-1], Y: data.PhiNs},
	})
	if err != nil {
		return err
	}
	ns.LineStyle.Width = vg.Points(1)
	ns.LineStyle.Color = color.Gray{Y: 128}
	ns.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ns)
	p.Legend.Add("φNs", ns)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionOutline exports the section outline with its centroid
func ExportSectionOutline(sec *geometry.Section, filename string) error {
	p := plot.New()
	p.Title.Text = sec.Name
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	rings := sec.Outline()
	xyers := make([]plotter.XYer, len(rings))
	for i, ring := range rings {
		xys := make(plotter.XYs, len(ring))
		for j, v := range ring {
			xys[j] = plotter.XY{X: v.X, Y: v.Y}
		}
		xyers[i] = xys
	}
	poly, err := plotter.NewPolygon(xyers...)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	minX, maxX, minY, maxY := ringBounds(rings)
	cx, cy := centroid(sec, minX, maxX, minY, maxY)
	c, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
	if err != nil {
		return err
	}
	c.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	c.GlyphStyle.Radius = vg.Points(4)
	c.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(c)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: cx, Y: cy}},
		Labels: []string{fmt.Sprintf("  A=%.0fmm²", sec.Ag)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	// Equal axis scales
	span := max(maxX-minX, maxY-minY) * 1.1
	mx, my := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = mx-span/2, mx+span/2
	p.Y.Min, p.Y.Max = my-span/2, my+span/2

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// centroid places the elastic centroid in outline coordinates
func centroid(sec *geometry.Section, minX, maxX, minY, maxY float64) (float64, float64) {
	switch sec.Type {
	case geometry.Custom:
		return sec.Xc, sec.Yc
	case geometry.PFC:
		return sec.Xc, (minY + maxY) / 2
	case geometry.BT, geometry.CT:
		return (minX + maxX) / 2, maxY - sec.Yc
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// save writes png, svg or pdf by extension, png when there is none
func save(p *plot.Plot, w, h vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	case "":
		return p.Save(w, h, filename+".png")
	}
	return fmt.Errorf("unsupported image format %q", filepath.Ext(filename))
}
