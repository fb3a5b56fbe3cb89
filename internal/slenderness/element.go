package slenderness

import (
	"math"

	"github.com/alexiusacademia/asdesign/internal/as4100"
)

// Element is one plate or ring element of a cross-section
// AS4100 Cl 5.2.2 and 6.2.3
type Element struct {
	Name    string
	B       float64 // Clear width, or outside diameter for a ring (mm)
	T       float64 // Thickness (mm)
	Fy      float64
	Edge    as4100.EdgeSupport
	Loading as4100.Loading
	Ring    bool
	Limits  as4100.PlateLimits

	LamE  float64 // Element slenderness λe
	Ratio float64 // λe / λey
	Be    float64 // Effective width, or effective diameter for a ring
	Av    float64 // Ineffective area removed in compression (mm²)
}

// Plate builds a flat plate element
func Plate(name string, b, t, fy float64, edge as4100.EdgeSupport, loading as4100.Loading, rs as4100.ResidualStress) Element {
	e := Element{
		Name:    name,
		B:       b,
		T:       t,
		Fy:      fy,
		Edge:    edge,
		Loading: loading,
		Limits:  as4100.PlateLimitsFor(edge, loading, rs),
	}
	if t <= 0 || b <= 0 {
		e.Be = math.Max(b, 0)
		return e
	}
	e.LamE = b / t * math.Sqrt(fy/250)
	e.Ratio = e.LamE / e.Limits.Ey
	// Cl 6.2.4
	e.Be = math.Min(1, e.Limits.Ey/e.LamE) * b
	e.Av = (b - e.Be) * t
	return e
}

// Ring builds a circular hollow section element of outside diameter d
func Ring(d, t, fy float64, rs as4100.ResidualStress) Element {
	e := Element{
		Name:   "wall",
		B:      d,
		T:      t,
		Fy:     fy,
		Edge:   as4100.BothEdges,
		Ring:   true,
		Limits: as4100.RingLimitsFor(rs),
	}
	e.LamE = d / t * (fy / 250)
	e.Ratio = e.LamE / e.Limits.Ey
	// Cl 6.2.4(c)
	eyc := e.Limits.CompressionYield
	e.Be = d * math.Min(1, math.Min(math.Sqrt(eyc/e.LamE), math.Pow(3*eyc/e.LamE, 2)))
	ag := math.Pi * (d - t) * t
	e.Av = ag - math.Pi*(e.Be-t)*t
	if e.Av < 0 {
		e.Av = 0
	}
	return e
}

// slenderType selects the Cl 5.2.5 equation when the element governs
func (e Element) slenderType() int {
	switch {
	case e.Ring:
		return 3
	case e.Edge == as4100.OneEdge && e.Loading == as4100.CompressionToTension:
		return 2
	}
	return 1
}
