package as4100

import (
	"math"
	"strings"
)

// AS4100 Section 5 member bending helpers

// ReferenceBucklingMoment calculates Mo (N·mm) for an effective length le (mm)
// AS4100 Cl 5.6.1.1 Eq 5.6.1.1(3)
func ReferenceBucklingMoment(le, iy, j, iw float64) float64 {
	if le <= 0 {
		return math.Inf(1)
	}
	pey := math.Pi * math.Pi * E * iy / (le * le)
	return math.Sqrt(pey * (G*j + math.Pi*math.Pi*E*iw/(le*le)))
}

// SlendernessReduction calculates αs from the section and reference moments
// AS4100 Cl 5.6.1.1 Eq 5.6.1.1(2)
func SlendernessReduction(ms, mo float64) float64 {
	if math.IsInf(mo, 1) {
		return 1
	}
	if mo <= 0 {
		return 0
	}
	q := ms / mo
	return math.Min(0.6*(math.Sqrt(q*q+3)-q), 1)
}

// Restraint is the cross-section restraint at a segment end, AS4100 Cl 5.4
type Restraint int

const (
	Full         Restraint = iota // F
	Partial                       // P
	Lateral                       // L
	Unrestrained                  // U
)

func (r Restraint) String() string {
	switch r {
	case Full:
		return "F"
	case Partial:
		return "P"
	case Lateral:
		return "L"
	case Unrestrained:
		return "U"
	}
	return "?"
}

// ParseRestraint accepts the single-letter restraint codes F, P, L and U
func ParseRestraint(s string) (Restraint, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F", "FULL":
		return Full, true
	case "P", "PARTIAL":
		return Partial, true
	case "L", "LATERAL":
		return Lateral, true
	case "U", "UNRESTRAINED":
		return Unrestrained, true
	}
	return 0, false
}

// TwistRestraintFactor returns kt of Table 5.6.3(1) for a segment with end
// restraints a and b, clear web depth d1, segment length l and nw webs
func TwistRestraintFactor(a, b Restraint, d1, tf, tw, l float64, nw int) float64 {
	if l <= 0 || tw <= 0 || nw <= 0 {
		return 1
	}
	corr := (d1 / l) * math.Pow(tf/(2*tw), 3) / float64(nw)
	partial := 0
	if a == Partial {
		partial++
	}
	if b == Partial {
		partial++
	}
	return 1 + float64(partial)*corr
}
