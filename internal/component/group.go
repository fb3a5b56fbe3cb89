package component

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/report"
)

// BoltGroup is a rectangular bolt group of Rows bolts parallel to the
// force at Pitch and Cols columns at Gauge. Forces in kN, lengths in mm.
type BoltGroup struct {
	Name  string
	Bolt  *Bolt
	Rows  int     // n_p
	Cols  int     // n_g
	Pitch float64 // s_p
	Gauge float64 // s_g

	N        int
	DepthMin float64 // Minimum ply depth for the edge distance
	PhiVdf   float64 // Concentric shear capacity
}

// NewBoltGroup checks spacing against the bolt minimum pitch
func NewBoltGroup(b *Bolt, rows, cols int, pitch, gauge float64) (*BoltGroup, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("bolt group: %d x %d: need at least one row and column", rows, cols)
	}
	if rows > 1 && pitch < b.PitchMin {
		return nil, fmt.Errorf("bolt group: pitch %g below minimum %g", pitch, b.PitchMin)
	}
	if cols > 1 && gauge < b.PitchMin {
		return nil, fmt.Errorf("bolt group: gauge %g below minimum %g", gauge, b.PitchMin)
	}
	g := &BoltGroup{
		Name:  fmt.Sprintf("%d x %d (%gp x %gg) %s", rows, cols, pitch, gauge, b.Name),
		Bolt:  b,
		Rows:  rows,
		Cols:  cols,
		Pitch: pitch,
		Gauge: gauge,
		N:     rows * cols,
	}
	g.DepthMin = 2*b.EdgeMin + g.DepthBetweenHoles()
	g.PhiVdf = float64(g.N) * b.PhiVf
	return g, nil
}

// DepthBetweenHoles is the centre to centre depth of the outer rows
func (g *BoltGroup) DepthBetweenHoles() float64 { return float64(g.Rows-1) * g.Pitch }

// WidthBetweenHoles is the centre to centre width of the outer columns
func (g *BoltGroup) WidthBetweenHoles() float64 { return float64(g.Cols-1) * g.Gauge }

// PolarMoment is Σ(x² + y²) of the bolt centres about the group centroid
func (g *BoltGroup) PolarMoment() float64 {
	np, ng := float64(g.Rows), float64(g.Cols)
	return ng * np / 12 * (sq(g.Pitch)*(np*np-1) + sq(g.Gauge)*(ng*ng-1))
}

// EccentricityFactor is Z_b, the ratio of the eccentric to the concentric
// group capacity for a force parallel to the rows at eccentricity e,
// by the elastic method
func (g *BoltGroup) EccentricityFactor(e float64) float64 {
	if e == 0 {
		return 1
	}
	ip := g.PolarMoment()
	if ip == 0 {
		return 0
	}
	n := float64(g.N)
	xMax, yMax := g.WidthBetweenHoles()/2, g.DepthBetweenHoles()/2
	return 1 / math.Hypot(1+n*e*xMax/ip, n*e*yMax/ip)
}

// PhiVdfEccentric is the group shear capacity at eccentricity e
func (g *BoltGroup) PhiVdfEccentric(e float64) float64 {
	return g.EccentricityFactor(e) * g.PhiVdf
}

// VerticalTearOutFactor is Z_ev for ply tear-out parallel to the force
func (g *BoltGroup) VerticalTearOutFactor(e float64) float64 {
	ip := g.PolarMoment()
	if e == 0 {
		return 1
	}
	if ip == 0 {
		return 0
	}
	return 1 / (1 + float64(g.Rows)*e*g.Gauge/ip)
}

// HorizontalTearOutFactor is Z_eh for ply tear-out across the force
func (g *BoltGroup) HorizontalTearOutFactor(e float64) float64 {
	if g.Rows == 1 || e == 0 {
		return 0
	}
	return g.PolarMoment() / (e * g.DepthBetweenHoles() * float64(g.Rows))
}

// TearOutLengths are the ply tear-out lengths from the bolt centres for
// edge distances aev (parallel to the force) and aeh (across it)
func (g *BoltGroup) TearOutLengths(aev, aeh float64) (ay, ax float64) {
	ay = math.Min(aev-1, g.Pitch-g.Bolt.Hole/2-1)
	ax = math.Min(aeh-1, g.Gauge-g.Bolt.Hole/2-1)
	if g.Rows == 1 {
		ay = aev - 1
	}
	if g.Cols == 1 {
		ax = aeh - 1
	}
	return ay, ax
}

// BlockShearPaths returns the shear (parallel) and tension (across) path
// lengths for block shear of a ply with edge distances aev and aeh
func (g *BoltGroup) BlockShearPaths(aev, aeh float64) (lv, lt float64) {
	lv = aev + g.DepthBetweenHoles()
	lt = aeh + g.WidthBetweenHoles() - (float64(g.Cols)-0.5)*g.Bolt.Hole
	return lv, lt
}

// Attributes lists the group values
func (g *BoltGroup) Attributes() []report.Attribute {
	return append(g.Bolt.Attributes(),
		report.Str("group", g.Name, "bolt group"),
		report.Num("n_b", float64(g.N), "", "number of bolts", ""),
		report.Num("d_i,min", g.DepthMin, "mm", "minimum ply depth", "9.6.2"),
		report.Num("I_bp", g.PolarMoment(), "mm²", "polar moment of bolt centres", ""),
		report.Num("φV_df", g.PhiVdf, "kN", "design group shear capacity", "9.3.2.1"),
	)
}
