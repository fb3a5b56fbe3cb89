// Package material resolves steel and timber design strengths from grade
// tables and element thicknesses.
package material

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// Steel is a resolved steel material. Strengths are looked up once at
// construction from AS4100 Table 2.1.
type Steel struct {
	Grade          string
	Type           as4100.MaterialType
	ResidualStress as4100.ResidualStress

	Tf float64 // Thickness governing Fy (mm)
	Tw float64 // Thickness governing Fyw (mm)

	Fy  float64 // Yield stress of the flange or wall (MPa)
	Fyw float64 // Yield stress of the web (MPa)
	Fu  float64 // Tensile strength (MPa)

	E       float64
	G       float64
	Poisson float64
	Density float64
	AlphaT  float64
}

// NewSteel resolves strengths for an element thickness tf (flange or wall)
// and tw (web). Closed sections and plates pass the same value twice.
func NewSteel(grade string, mt as4100.MaterialType, tf, tw float64) (*Steel, error) {
	fy, err := as4100.YieldStress(mt, grade, tf)
	if err != nil {
		return nil, fmt.Errorf("steel %s: %w", grade, err)
	}
	fyw, err := as4100.YieldStress(mt, grade, tw)
	if err != nil {
		return nil, fmt.Errorf("steel %s web: %w", grade, err)
	}
	fu, err := as4100.TensileStrength(mt, grade, tf)
	if err != nil {
		return nil, fmt.Errorf("steel %s: %w", grade, err)
	}
	return &Steel{
		Grade:          grade,
		Type:           mt,
		ResidualStress: as4100.ResidualStressFor(mt),
		Tf:             tf,
		Tw:             tw,
		Fy:             fy,
		Fyw:            fyw,
		Fu:             fu,
		E:              as4100.E,
		G:              as4100.G,
		Poisson:        as4100.Poisson,
		Density:        as4100.Density,
		AlphaT:         as4100.AlphaT,
	}, nil
}

// SteelForSection takes the governing thicknesses from the section: t_f and
// t_w for open sections, t for hollow sections
func SteelForSection(sec *geometry.Section, grade string, mt as4100.MaterialType) (*Steel, error) {
	return NewSteel(grade, mt, sec.FlangeThickness(), sec.WebThickness())
}

// SteelFromParams reads grade and mat_type from a library row. A missing
// mat_type defaults from the section type.
func SteelFromParams(p library.Params, sec *geometry.Section) (*Steel, error) {
	grade := p.String("grade")
	if grade == "" {
		return nil, fmt.Errorf("steel %s: %w", p.String("name"), as4100.ErrUnknownGrade)
	}
	mt := DefaultMaterialType(sec.Type)
	if s := p.String("mat_type"); s != "" {
		var err error
		if mt, err = as4100.ParseMaterialType(s); err != nil {
			return nil, err
		}
	}
	return SteelForSection(sec, grade, mt)
}

// DefaultMaterialType maps a section family to its usual product standard
func DefaultMaterialType(st geometry.ShapeType) as4100.MaterialType {
	switch {
	case st.IsHollow():
		return as4100.HollowSection
	case st.IsWelded():
		return as4100.WeldedSection
	case st == geometry.RectPlate || st == geometry.Custom:
		return as4100.HotRolledPlate
	}
	return as4100.HotRolledSection
}

// Attributes lists the resolved material values
func (s *Steel) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("grade", s.Grade, "steel grade"),
		report.Str("standard", s.Type.Standard(), "product standard"),
		report.Str("residual", s.ResidualStress.String(), "residual stress class"),
		report.Num("f_y", s.Fy, "MPa", "yield stress", "2.1.1"),
		report.Num("f_yw", s.Fyw, "MPa", "yield stress of web", "2.1.1"),
		report.Num("f_u", s.Fu, "MPa", "tensile strength", "2.1.1"),
		report.Num("E", s.E, "MPa", "modulus of elasticity", "2.2.4"),
		report.Num("G", s.G, "MPa", "shear modulus", "2.2.4"),
		report.Num("ν", s.Poisson, "", "Poisson's ratio", "2.2.4"),
		report.Num("ρ", s.Density, "kg/m³", "density", "2.2.4"),
		report.Num("α_T", s.AlphaT, "/°C", "coefficient of thermal expansion", "2.2.4"),
	}
}
