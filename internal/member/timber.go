package member

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/material"
)

// TimberInputs are the design inputs of a rectangular timber member.
// Lengths in mm.
type TimberInputs struct {
	Duration as1720.Duration
	Category as1720.Category

	Lay        float64 // Spacing of lateral restraints to the compression edge in bending
	Continuous bool    // Compression edge continuously restrained
	Lx, Ly     float64 // Restraint spacing against buckling about x (in d) and y (in b)

	BearingLength float64 // Length of bearing perpendicular to grain
	K6            float64 // Temperature factor
	K9            float64 // Strength sharing factor
	CreepRatio    float64 // r of Appendix E2
}

// DefaultTimberInputs returns permanent loading on a category 1 member
func DefaultTimberInputs() TimberInputs {
	return TimberInputs{
		Duration:   as1720.Permanent,
		Category:   as1720.Category1,
		K6:         1,
		K9:         1,
		CreepRatio: as1720.DefaultCreepRatio,
	}
}

// TimberCapacities is a resolved snapshot. Forces in kN, moments in kNm.
type TimberCapacities struct {
	Name   string
	Inputs TimberInputs

	Phi, K1, K4, K6, K9, K11 float64

	S1         float64
	RhoB       float64
	K12Bending float64
	PhiM       float64
	PhiV       float64

	S3, S4     float64
	RhoC       float64
	K12x, K12y float64
	PhiNcx     float64
	PhiNcy     float64
	PhiNc      float64

	PhiNt float64
	K7    float64
	PhiNp float64
}

// TimberMember is a sawn or glulam rectangular member
type TimberMember struct {
	section  *geometry.Section
	material *material.Timber
	inputs   TimberInputs

	snapshot *TimberCapacities
	stale    bool
}

// NewTimberMember accepts Board and RectPlate sections
func NewTimberMember(sec *geometry.Section, mat *material.Timber, in TimberInputs) (*TimberMember, error) {
	if sec.Type != geometry.Board && sec.Type != geometry.RectPlate {
		return nil, &geometry.ConfigError{Section: sec.Name, Err: geometry.ErrUnsupportedShape}
	}
	return &TimberMember{section: sec, material: mat, inputs: in, stale: true}, nil
}

func (m *TimberMember) Section() *geometry.Section { return m.section }
func (m *TimberMember) Material() *material.Timber { return m.material }
func (m *TimberMember) Inputs() TimberInputs       { return m.inputs }

// Update applies fn to the inputs and marks the snapshot stale
func (m *TimberMember) Update(fn func(*TimberInputs)) {
	fn(&m.inputs)
	m.stale = true
}

// Capacities returns the last resolved snapshot, nil before the first Resolve
func (m *TimberMember) Capacities() *TimberCapacities { return m.snapshot }

// Stale reports whether inputs changed since the last successful Resolve
func (m *TimberMember) Stale() bool { return m.stale }

// Resolve recomputes the AS1720.1 Section 3 capacities
func (m *TimberMember) Resolve() (*TimberCapacities, error) {
	in, sec, mat := m.inputs, m.section, m.material
	phi, err := as1720.CapacityFactor(mat.Type, in.Category)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", sec.Name, err)
	}

	if err := checkInputs(sec.Name, map[string]float64{
		"l_ay": in.Lay, "l_x": in.Lx, "l_y": in.Ly, "l_b": in.BearingLength,
		"k_6": in.K6, "k_9": in.K9, "r": in.CreepRatio,
	}); err != nil {
		return nil, err
	}

	d, b := sec.D, sec.B
	r := in.CreepRatio
	if r <= 0 {
		r = as1720.DefaultCreepRatio
	}
	c := &TimberCapacities{
		Name:   fmt.Sprintf("%s (%s)", sec.Name, mat.Grade),
		Inputs: in,
		Phi:    phi,
		K1:     as1720.DurationFactor(in.Duration),
		K4:     mat.K4,
		K6:     orOne(in.K6),
		K9:     orOne(in.K9),
		K11:    as1720.SizeFactor(d),
	}
	// Strengths on the material already carry k4
	base := c.Phi * c.K1 * c.K6

	// Cl 3.2
	c.S1 = as1720.BeamSlenderness(d, b, in.Lay, in.Continuous)
	c.RhoB = as1720.BendingMaterialConstant(mat.E, mat.Fb, r)
	c.K12Bending = as1720.StabilityFactor(c.RhoB * c.S1)
	c.PhiM = base * c.K9 * c.K11 * c.K12Bending * mat.Fb * sec.Zx * nmmToKNm
	c.PhiV = base * mat.Fs * (2.0 / 3.0) * b * d * nToKN

	// Cl 3.3
	c.S3 = as1720.ColumnSlenderness(in.Lx, d)
	c.S4 = as1720.ColumnSlenderness(in.Ly, b)
	c.RhoC = as1720.CompressionMaterialConstant(mat.E, mat.Fc, r)
	c.K12x = as1720.StabilityFactor(c.RhoC * c.S3)
	c.K12y = as1720.StabilityFactor(c.RhoC * c.S4)
	nc := base * mat.Fc * sec.Ag * nToKN
	c.PhiNcx = c.K12x * nc
	c.PhiNcy = c.K12y * nc
	c.PhiNc = floats.Min([]float64{c.PhiNcx, c.PhiNcy})

	// Cl 3.4
	c.PhiNt = base * c.K11 * mat.Ft * sec.Ag * nToKN

	// Cl 3.2.6, bearing across the full breadth
	c.K7 = as1720.BearingLengthFactor(in.BearingLength)
	c.PhiNp = base * c.K7 * mat.Fp * b * math.Max(in.BearingLength, 0) * nToKN

	m.snapshot, m.stale = c, false
	return c, nil
}
