// Package diagram draws column curves and section outlines, as ASCII for
// the terminal and as png/svg/pdf images.
package diagram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/member"
)

// ColumnCurveData holds φNc about each axis against member length
type ColumnCurveData struct {
	Title   string
	Lengths []float64 // mm
	PhiNcx  []float64 // kN
	PhiNcy  []float64 // kN
	PhiNs   float64   // kN
}

// ColumnCurve resolves copies of m at samples lengths from 0 to maxLength,
// keeping its effective length factors. m itself is not changed.
func ColumnCurve(m *member.SteelMember, maxLength float64, samples int) (*ColumnCurveData, error) {
	if samples < 2 {
		return nil, fmt.Errorf("column curve: need at least 2 samples, got %d", samples)
	}
	if maxLength <= 0 {
		return nil, fmt.Errorf("column curve: max length %g must be positive", maxLength)
	}

	data := &ColumnCurveData{
		Lengths: floats.Span(make([]float64, samples), 0, maxLength),
		PhiNcx:  make([]float64, samples),
		PhiNcy:  make([]float64, samples),
	}
	for i, l := range data.Lengths {
		in := m.Inputs()
		in.Lx, in.Ly = l, l
		// Bending inputs do not affect compression
		in.Segment = 0
		c, err := resolveCopy(m, in)
		if err != nil {
			return nil, err
		}
		data.Title = c.Name
		data.PhiNs = c.PhiNs
		data.PhiNcx[i] = c.Inputs.Phi * c.Ncx
		data.PhiNcy[i] = c.Inputs.Phi * c.Ncy
	}
	return data, nil
}

func resolveCopy(m *member.SteelMember, in member.SteelInputs) (*member.SteelCapacities, error) {
	cp, err := member.NewSteelMember(m.Section(), m.Material(), in)
	if err != nil {
		return nil, err
	}
	return cp.Resolve()
}

// Governing returns min(φNcx, φNcy) at each sampled length
func (d *ColumnCurveData) Governing() []float64 {
	out := make([]float64, len(d.Lengths))
	for i := range out {
		out[i] = floats.Min([]float64{d.PhiNcx[i], d.PhiNcy[i]})
	}
	return out
}
