package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// Nominal tensile strength of weld metal (MPa), AS4100 Table 9.7.3.10(1)
var weldMetal = map[string]float64{
	"E41XX": 410,
	"W40X":  410,
	"E48XX": 480,
	"W50X":  480,
}

// Weld is a continuous fillet weld. Capacities per unit length in kN/mm.
type Weld struct {
	Name     string
	Leg      float64 // t_w (mm)
	Category string  // SP or GP
	Class    string

	Throat float64 // t_t, Cl 9.7.3.1
	Fuw    float64
	Kr     float64 // Lap length reduction factor, Table 9.7.3.10(2)
	Phi    float64

	Vw    float64
	PhiVw float64
}

// NewWeld resolves a fillet weld of leg size leg
func NewWeld(leg float64, category, class string) (*Weld, error) {
	if leg <= 0 {
		return nil, fmt.Errorf("weld leg %g: %w", leg, ErrUnknownWeld)
	}
	cat := strings.ToUpper(strings.TrimSpace(category))
	var phi float64
	switch cat {
	case "SP":
		phi = as4100.PhiWeldSP
	case "GP":
		phi = as4100.PhiWeldGP
	default:
		return nil, fmt.Errorf("weld category %q: %w", category, ErrUnknownWeld)
	}
	cls := strings.ToUpper(strings.TrimSpace(class))
	fuw, ok := weldMetal[cls]
	if !ok {
		return nil, fmt.Errorf("weld class %q: %w", class, ErrUnknownWeld)
	}

	w := &Weld{
		Name:     fmt.Sprintf("%gmm CFW %s %s", leg, cat, cls),
		Leg:      leg,
		Category: cat,
		Class:    cls,
		Throat:   leg / math.Sqrt2,
		Fuw:      fuw,
		Kr:       1,
		Phi:      phi,
	}
	// Cl 9.7.3.10
	w.Vw = 0.6 * w.Fuw * w.Kr * w.Throat / 1e3
	w.PhiVw = w.Phi * w.Vw
	return w, nil
}

// PlateCapacity is the capacity (kN) of welds down both faces of a plate of depth d
func (w *Weld) PlateCapacity(d float64) float64 {
	return w.PhiVw * 2 * d
}

// EccentricPlateCapacity reduces PlateCapacity for a load at eccentricity e
func (w *Weld) EccentricPlateCapacity(d, e float64) float64 {
	if d <= 0 {
		return 0
	}
	return w.PlateCapacity(d) / math.Sqrt(1+sq(6*e/d))
}

// Attributes lists the weld values
func (w *Weld) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("weld", w.Name, "weld designation"),
		report.Num("t_t", w.Throat, "mm", "design throat thickness", "9.7.3.1"),
		report.Num("f_uw", w.Fuw, "MPa", "weld metal tensile strength", "9.7.3.10"),
		report.Num("φ", w.Phi, "", "capacity factor", "3.4"),
		report.Num("v_w", w.Vw, "kN/mm", "nominal capacity per unit length", "9.7.3.10"),
		report.Num("φv_w", w.PhiVw, "kN/mm", "design capacity per unit length", "9.7.3.10"),
	}
}
