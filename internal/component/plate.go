package component

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// Plate is a connection plate of width b and thickness t (mm).
// Capacities in kN and kNm.
type Plate struct {
	Name      string
	Width     float64
	Thickness float64
	Grade     string
	Fy        float64
	Fu        float64
}

// NewPlate resolves AS3678 strengths for the plate thickness
func NewPlate(width, thickness float64, grade string) (*Plate, error) {
	if width <= 0 || thickness <= 0 {
		return nil, fmt.Errorf("plate %gx%g: dimensions must be positive", width, thickness)
	}
	fy, err := as4100.YieldStress(as4100.HotRolledPlate, grade, thickness)
	if err != nil {
		return nil, fmt.Errorf("plate: %w", err)
	}
	fu, err := as4100.TensileStrength(as4100.HotRolledPlate, grade, thickness)
	if err != nil {
		return nil, fmt.Errorf("plate: %w", err)
	}
	return &Plate{
		Name:      fmt.Sprintf("%gmm x %gmm %s", width, thickness, grade),
		Width:     width,
		Thickness: thickness,
		Grade:     grade,
		Fy:        fy,
		Fu:        fu,
	}, nil
}

// PlyBearing is the local bearing capacity of n bolts of diameter df, Cl 9.3.2.4(1)
func (p *Plate) PlyBearing(n int, df float64) float64 {
	return float64(n) * as4100.PhiPly * 3.2 * df * p.Thickness * p.Fu / 1e3
}

// TearOut is the ply tear-out capacity of n bolts at tear-out length ae, Cl 9.3.2.4(2)
func (p *Plate) TearOut(n int, ae float64) float64 {
	return float64(n) * as4100.PhiPly * ae * p.Thickness * p.Fu / 1e3
}

// Shear is the plate shear capacity over depth d, Cl 5.11 with a
// non-uniform stress distribution
func (p *Plate) Shear(d float64) float64 {
	return as4100.PhiMember * 0.5 * p.Fy * d * p.Thickness / 1e3
}

// Moment is the plastic moment capacity (kNm) over depth d, Cl 5.2.1
func (p *Plate) Moment(d float64) float64 {
	return as4100.PhiMember * p.Fy * p.Thickness * d * d / 4 / 1e6
}

// EccentricShear is the shear (kN) the plate moment capacity allows at eccentricity e (mm)
func (p *Plate) EccentricShear(d, e float64) float64 {
	if e <= 0 {
		return p.Shear(d)
	}
	return p.Moment(d) * 1e3 / e
}

// BlockShear is the capacity for a net tension path lt and a gross shear
// path lv (mm), AISC 360-16 J4.3 with shear yielding
func (p *Plate) BlockShear(lt, lv float64) float64 {
	vbs := (lt*p.Thickness*p.Fu + 0.6*lv*p.Thickness*p.Fy) / 1e3
	return as4100.PhiBlockShear * vbs
}

// Attributes lists the plate values and its capacities over the full width
func (p *Plate) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("plate", p.Name, "plate designation"),
		report.Num("f_y", p.Fy, "MPa", "yield stress", "2.1"),
		report.Num("f_u", p.Fu, "MPa", "tensile strength", "2.1"),
		report.Num("φV_v", p.Shear(p.Width), "kN", "design shear capacity", "5.11"),
		report.Num("φM_s", p.Moment(p.Width), "kNm", "design moment capacity", "5.2.1"),
	}
}
