package material

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// Timber is a resolved timber material with characteristic strengths (MPa)
type Timber struct {
	Grade    string
	Type     as1720.TimberType
	Seasoned bool

	Fb float64 // f'b bending
	Ft float64 // f't tension parallel to grain
	Fs float64 // f's shear in beams
	Fc float64 // f'c compression parallel to grain
	Fp float64 // f'p bearing perpendicular to grain

	E       float64
	G       float64
	Density float64

	K4 float64 // Moisture factor applied to the strengths, 1 unless adjusted
}

// NewTimber resolves a grade from the built-in AS1720.1 table
func NewTimber(grade string, seasoned bool) (*Timber, error) {
	g, err := as1720.LookupGrade(grade)
	if err != nil {
		return nil, err
	}
	return fromGrade(g, seasoned), nil
}

func fromGrade(g as1720.Grade, seasoned bool) *Timber {
	return &Timber{
		Grade:    g.Name,
		Type:     g.Type,
		Seasoned: seasoned,
		Fb:       g.Fb,
		Ft:       g.Ft,
		Fs:       g.Fs,
		Fc:       g.Fc,
		Fp:       g.Fp,
		E:        g.E,
		G:        g.G,
		Density:  g.Density,
		K4:       1,
	}
}

// gradeRow is the timber_grades library row schema
type gradeRow struct {
	Grade   string  `mapstructure:"grade"`
	Type    string  `mapstructure:"mat_type"`
	Fb      float64 `mapstructure:"f_b"`
	Ft      float64 `mapstructure:"f_t"`
	Fs      float64 `mapstructure:"f_s"`
	Fc      float64 `mapstructure:"f_c"`
	Fp      float64 `mapstructure:"f_p"`
	E       float64 `mapstructure:"e"`
	G       float64 `mapstructure:"g"`
	Density float64 `mapstructure:"density"`
}

// TimberFromParams builds a material from a timber_grades library row
func TimberFromParams(p library.Params, seasoned bool) (*Timber, error) {
	var row gradeRow
	if err := p.Decode(&row); err != nil {
		return nil, err
	}
	tt, err := as1720.ParseTimberType(row.Type)
	if err != nil {
		return nil, fmt.Errorf("timber %s: %w", row.Grade, err)
	}
	if row.Fb <= 0 || row.E <= 0 {
		return nil, fmt.Errorf("timber %s: f_b and e must be positive", row.Grade)
	}
	g := as1720.Grade{
		Name: row.Grade, Type: tt,
		Fb: row.Fb, Ft: row.Ft, Fs: row.Fs, Fc: row.Fc, Fp: row.Fp,
		E: row.E, G: row.G, Density: row.Density,
	}
	if g.G == 0 {
		g.G = g.E / 15
	}
	return fromGrade(g, seasoned), nil
}

// TimberForSection resolves the grade named by a timber_sections row
// through the provider's timber_grades dataset
func TimberForSection(provider library.Provider, section library.Params) (*Timber, error) {
	grade := section.String("grade")
	p, err := provider.Lookup(library.TimberGrades, grade)
	if err != nil {
		return nil, err
	}
	seasoned, _ := section["seasoned"].(bool)
	return TimberFromParams(p, seasoned)
}

// MoistureAdjusted returns a copy with strengths scaled by k4.
// Seasoned timber uses the equilibrium moisture content emc (%);
// unseasoned timber uses the least dimension (mm) for partial seasoning.
// The factor replaces any earlier adjustment rather than compounding it.
func (t *Timber) MoistureAdjusted(emc, leastDim float64) *Timber {
	k4 := as1720.MoistureFactor(emc)
	if !t.Seasoned {
		k4 = as1720.PartialSeasoningFactor(leastDim)
	}
	prev := t.K4
	if prev <= 0 {
		prev = 1
	}
	scale := k4 / prev
	c := *t
	c.K4 = k4
	c.Fb *= scale
	c.Ft *= scale
	c.Fs *= scale
	c.Fc *= scale
	c.Fp *= scale
	return &c
}

// Attributes lists the resolved material values
func (t *Timber) Attributes() []report.Attribute {
	seasoned := "unseasoned"
	if t.Seasoned {
		seasoned = "seasoned"
	}
	return []report.Attribute{
		report.Str("grade", t.Grade, "stress grade"),
		report.Str("type", t.Type.String(), "timber type"),
		report.Str("condition", seasoned, "seasoning"),
		report.Num("f'_b", t.Fb, "MPa", "characteristic bending strength", "H2"),
		report.Num("f'_t", t.Ft, "MPa", "characteristic tension strength", "H2"),
		report.Num("f'_s", t.Fs, "MPa", "characteristic shear strength", "H2"),
		report.Num("f'_c", t.Fc, "MPa", "characteristic compression strength", "H2"),
		report.Num("f'_p", t.Fp, "MPa", "characteristic bearing strength", "H2"),
		report.Num("E", t.E, "MPa", "short duration modulus of elasticity", "H2"),
		report.Num("G", t.G, "MPa", "modulus of rigidity", "H2"),
		report.Num("ρ", t.Density, "kg/m³", "density", ""),
		report.Num("k_4", t.K4, "", "moisture factor", "2.4.2"),
	}
}
