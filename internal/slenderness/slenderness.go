// Package slenderness evaluates AS4100 section slenderness, effective
// section moduli, form factor and web shear slenderness.
package slenderness

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// Compactness classifies a section for bending, AS4100 Cl 5.2.2
type Compactness int

const (
	Compact Compactness = iota
	NonCompact
	Slender
)

func (c Compactness) String() string {
	switch c {
	case Compact:
		return "C"
	case NonCompact:
		return "N"
	}
	return "S"
}

// Axis is the bending slenderness about one principal axis
type Axis struct {
	Elements    []Element
	Governing   string  // Name of the element with the greatest λe/λey
	LamS        float64 // Section slenderness λs
	LamSP       float64 // Section plasticity limit λsp
	LamSY       float64 // Section yield limit λsy
	Class       Compactness
	SlenderType int
	Ze          float64 // Effective section modulus (mm³)
}

// Result holds the section slenderness evaluation
type Result struct {
	Section string
	Grade   string

	X, Y        Axis
	Compression []Element

	Ae     float64 // Effective area, Cl 6.2.2
	Kf     float64 // Form factor
	AlphaB float64 // Member section constant, Table 6.3.3

	WebShearRatio        float64 // (82/√(fyw/250)) / (dp/tw)
	WebShearYieldGoverns bool
	AlphaV               float64 // Cl 5.11.5.1
}

// Evaluate computes section slenderness for a steel section.
// Plates and custom polygons have no element provisions and are treated
// as compact with kf = 1.
func Evaluate(sec *geometry.Section, mat *material.Steel) (*Result, error) {
	x, y, c, err := components(sec, mat)
	if err != nil {
		return nil, err
	}

	r := &Result{Section: sec.Name, Grade: mat.Grade, Compression: c}
	r.X = governing(x)
	r.Y = governing(y)
	r.X.Ze = effectiveModulus(r.X, sec.Zx, sec.Sx, sec, mat, true)
	r.Y.Ze = effectiveModulus(r.Y, sec.Zy, sec.Sy, sec, mat, false)

	r.Ae = sec.Ag
	for _, e := range c {
		r.Ae -= e.Av
	}
	r.Kf = r.Ae / sec.Ag
	r.AlphaB = MemberSectionConstant(sec.Type, sec.Tf, r.Kf)

	r.WebShearRatio = webShearRatio(sec, mat)
	r.WebShearYieldGoverns = r.WebShearRatio > 1
	r.AlphaV = math.Min(r.WebShearRatio*r.WebShearRatio, 1)
	return r, nil
}

func components(sec *geometry.Section, mat *material.Steel) (x, y, c []Element, err error) {
	rs := mat.ResidualStress
	fy := mat.Fy
	one, both := as4100.OneEdge, as4100.BothEdges
	uni, c2t := as4100.UniformCompression, as4100.CompressionToTension

	switch sec.Type {
	case geometry.UB, geometry.UC, geometry.WB, geometry.WC, geometry.PFC:
		flangeX := Plate("flange", sec.Bff(), sec.Tf, fy, one, uni, rs)
		webX := Plate("web", sec.D1(), sec.Tw, fy, both, c2t, rs)
		flangeY := Plate("flange", sec.Bff(), sec.Tf, fy, one, c2t, rs)
		webC := Plate("web", sec.D1(), sec.Tw, fy, both, uni, rs)
		flanges := 4
		if sec.Type == geometry.PFC {
			flanges = 2
		}
		c = []Element{webC}
		for i := 0; i < flanges; i++ {
			c = append(c, flangeX)
		}
		return []Element{flangeX, webX}, []Element{flangeY}, c, nil

	case geometry.BT, geometry.CT:
		webX := Plate("stem", sec.D1(), sec.Tw, fy, one, c2t, rs)
		flangeY := Plate("flange", sec.Bff(), sec.Tf, fy, one, c2t, rs)
		webC := Plate("stem", sec.D1(), sec.Tw, fy, one, uni, rs)
		flangeC := Plate("flange", sec.Bff(), sec.Tf, fy, one, uni, rs)
		return []Element{webX}, []Element{flangeY}, []Element{webC, flangeC, flangeC}, nil

	case geometry.SHS, geometry.RHS:
		flangeX := Plate("flange", sec.Bff(), sec.T, fy, both, uni, rs)
		webX := Plate("web", sec.D1(), sec.T, fy, both, c2t, rs)
		flangeY := Plate("flange", sec.Bff(), sec.T, fy, both, c2t, rs)
		webY := Plate("web", sec.D1(), sec.T, fy, both, uni, rs)
		return []Element{flangeX, webX}, []Element{flangeY, webY}, []Element{webY, webY, flangeX, flangeX}, nil

	case geometry.CHS:
		ring := Ring(sec.D, sec.T, fy, rs)
		return []Element{ring}, []Element{ring}, []Element{ring}, nil

	case geometry.RectPlate, geometry.Custom:
		return nil, nil, nil, nil
	}
	return nil, nil, nil, &geometry.ConfigError{Section: sec.Name, Err: geometry.ErrUnsupportedShape}
}

func governing(elements []Element) Axis {
	a := Axis{Elements: elements, SlenderType: 1}
	maxRatio := 0.0
	for _, e := range elements {
		if e.Ratio > maxRatio {
			maxRatio = e.Ratio
			a.Governing = e.Name
			a.LamS = e.LamE
			a.LamSP = e.Limits.Ep
			a.LamSY = e.Limits.Ey
			a.SlenderType = e.slenderType()
		}
	}
	switch {
	case a.LamS <= a.LamSP:
		a.Class = Compact
	case a.LamS <= a.LamSY:
		a.Class = NonCompact
	default:
		a.Class = Slender
	}
	return a
}

// effectiveModulus applies Cl 5.2.3 to 5.2.5
func effectiveModulus(a Axis, z, s float64, sec *geometry.Section, mat *material.Steel, major bool) float64 {
	zc := math.Min(s, 1.5*z)
	switch a.Class {
	case Compact:
		return zc
	case NonCompact:
		return z + (a.LamSY-a.LamS)/(a.LamSY-a.LamSP)*(zc-z)
	}
	switch {
	case a.SlenderType == 3:
		return math.Min(z*math.Sqrt(a.LamSY/a.LamS), z*math.Pow(2*a.LamSY/a.LamS, 2))
	case a.SlenderType == 2:
		return z * math.Pow(a.LamSY/a.LamS, 2)
	case sec.Type == geometry.SHS || sec.Type == geometry.RHS:
		return hollowEffectiveModulus(sec, mat.Fy, major)
	}
	return z * a.LamSY / a.LamS
}

// hollowEffectiveModulus removes the ineffective width of the compression
// flange of a slender RHS/SHS, after BS 5950-1 Cl 3.6.2
func hollowEffectiveModulus(sec *geometry.Section, fy float64, major bool) float64 {
	d, b, i := sec.D, sec.B, sec.Ix
	if !major {
		d, b, i = sec.B, sec.D, sec.Iy
	}
	t, area := sec.T, sec.Ag
	eps := math.Sqrt(275 / fy)
	k := b - 35*t*eps - 5*t
	if k <= 0 {
		return i / (d / 2)
	}
	yEff := (area*d - k*t*t) / (2 * (area - k*t))
	aEff := area - k*t
	iEff := i - k*t*t*t/12 - k*t*(d/2-t/2)*(d/2-t/2) - aEff*(yEff-d/2)*(yEff-d/2)
	return iEff / yEff
}

// MemberSectionConstant returns αb from Table 6.3.3(A) (kf = 1) or
// Table 6.3.3(B) (kf < 1)
func MemberSectionConstant(st geometry.ShapeType, tf, kf float64) float64 {
	if kf < 1 {
		switch st {
		case geometry.SHS, geometry.RHS, geometry.CHS:
			return -0.5
		case geometry.UB, geometry.UC:
			if tf <= 40 {
				return 0
			}
			return 0.5
		case geometry.WB, geometry.WC:
			if tf <= 40 {
				return 0.5
			}
			return 1
		}
		return 1
	}
	switch st {
	case geometry.SHS, geometry.RHS, geometry.CHS:
		return -1
	case geometry.UB, geometry.UC:
		if tf <= 40 {
			return 0
		}
		return 1
	case geometry.PFC, geometry.BT, geometry.CT:
		return 0.5
	case geometry.WB, geometry.WC:
		return 0
	}
	return 0.5
}

// webShearRatio is the Cl 5.11.2 limit over the web panel slenderness.
// CHS webs do not buckle in shear.
func webShearRatio(sec *geometry.Section, mat *material.Steel) float64 {
	tw := sec.WebThickness()
	if sec.Type == geometry.CHS || tw <= 0 {
		return math.Inf(1)
	}
	fyw := mat.Fyw
	if fyw == 0 {
		fyw = mat.Fy
	}
	limit := 82 / math.Sqrt(fyw/250)
	return limit / (sec.Dp() / tw)
}

// Attributes lists the slenderness results
func (r *Result) Attributes() []report.Attribute {
	attrs := []report.Attribute{
		report.Str("compact_x", r.X.Class.String(), "section compactness about x"),
		report.Str("compact_y", r.Y.Class.String(), "section compactness about y"),
		report.Num("λ_s,x", r.X.LamS, "", "section slenderness about x", "5.2.2"),
		report.Num("λ_sp,x", r.X.LamSP, "", "plasticity limit about x", "5.2.2"),
		report.Num("λ_sy,x", r.X.LamSY, "", "yield limit about x", "5.2.2"),
		report.Num("λ_s,y", r.Y.LamS, "", "section slenderness about y", "5.2.2"),
		report.Num("λ_sp,y", r.Y.LamSP, "", "plasticity limit about y", "5.2.2"),
		report.Num("λ_sy,y", r.Y.LamSY, "", "yield limit about y", "5.2.2"),
		report.Num("Z_ex", r.X.Ze, "mm³", "effective section modulus about x", "5.2"),
		report.Num("Z_ey", r.Y.Ze, "mm³", "effective section modulus about y", "5.2"),
		report.Num("A_e", r.Ae, "mm²", "effective area", "6.2.2"),
		report.Num("k_f", r.Kf, "", "form factor", "6.2.2"),
		report.Num("α_b", r.AlphaB, "", "compression member section constant", "6.3.3"),
		report.Str("web_yield", fmt.Sprint(r.WebShearYieldGoverns), "web shear yield governs"),
		report.Num("α_v", r.AlphaV, "", "web shear buckling factor", "5.11.5.1"),
	}
	return attrs
}
