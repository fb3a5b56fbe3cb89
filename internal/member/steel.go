// Package member resolves AS4100 steel and AS1720.1 timber member
// capacities. Members hold mutable inputs; Resolve recomputes every
// capacity and stores a snapshot.
package member

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/slenderness"
)

const (
	nToKN    = 1e-3
	nmmToKNm = 1e-6
)

// Axis selects a principal axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// SteelInputs are the design inputs of a steel member. Lengths in mm.
type SteelInputs struct {
	Lx, Ly   float64 // Member lengths for flexural buckling about x and y
	Kex, Key float64 // Effective length factors, Cl 4.6.3

	Segment    float64          // Bending segment length l, zero for full lateral restraint
	RestraintA as4100.Restraint // Segment end restraints, Cl 5.4
	RestraintB as4100.Restraint
	Kl         float64 // Load height factor, Table 5.6.3(2)
	Kr         float64 // Lateral rotation restraint factor, Table 5.6.3(3)
	AlphaM     float64 // Moment modification factor, Cl 5.6.1.1

	Kt  float64 // Tension correction factor, Cl 7.3
	Phi float64 // Capacity factor
}

// DefaultSteelInputs returns inputs with unit factors, fully restrained
// segment ends and φ = 0.9
func DefaultSteelInputs() SteelInputs {
	return SteelInputs{
		Kex:        1,
		Key:        1,
		RestraintA: as4100.Full,
		RestraintB: as4100.Full,
		Kl:         1,
		Kr:         1,
		AlphaM:     1,
		Kt:         1,
		Phi:        as4100.PhiMember,
	}
}

// SteelCapacities is a resolved snapshot. Forces in kN, moments in kNm.
type SteelCapacities struct {
	Name   string
	Inputs SteelInputs

	Kf     float64
	AlphaB float64

	// Tension, Cl 7.2
	Nt    float64
	PhiNt float64

	// Compression, Cl 6.2 and 6.3
	Ns    float64
	PhiNs float64
	LeX   float64
	LeY   float64
	X     as4100.ColumnCurve
	Y     as4100.ColumnCurve
	Ncx   float64
	Ncy   float64
	PhiNc float64

	// Bending, Cl 5.2 and 5.6
	Msx    float64
	Msy    float64
	PhiMsx float64
	PhiMsy float64
	Kt     float64 // Twist restraint factor, Table 5.6.3(1)
	Le     float64 // Effective length of the bending segment (mm)
	Mo     float64
	AlphaS float64
	Mbx    float64
	PhiMbx float64

	// Shear, Cl 5.11
	Vw    float64
	Vb    float64
	Vu    float64
	Vnu   float64
	Vv    float64
	PhiVv float64

	// PlasticInteraction marks compact doubly symmetric I-sections with
	// kf = 1, which take the higher Cl 8.3.2 and 8.3.3 interaction curves
	PlasticInteraction bool
}

// SteelMember couples a section, a material and design inputs
type SteelMember struct {
	section  *geometry.Section
	material *material.Steel
	slender  *slenderness.Result
	inputs   SteelInputs

	snapshot *SteelCapacities
	stale    bool
}

// NewSteelMember evaluates section slenderness once and returns an
// unresolved member
func NewSteelMember(sec *geometry.Section, mat *material.Steel, in SteelInputs) (*SteelMember, error) {
	sl, err := slenderness.Evaluate(sec, mat)
	if err != nil {
		return nil, err
	}
	return &SteelMember{section: sec, material: mat, slender: sl, inputs: in, stale: true}, nil
}

func (m *SteelMember) Section() *geometry.Section      { return m.section }
func (m *SteelMember) Material() *material.Steel        { return m.material }
func (m *SteelMember) Slenderness() *slenderness.Result { return m.slender }
func (m *SteelMember) Inputs() SteelInputs              { return m.inputs }

// Update applies fn to the inputs and marks the snapshot stale
func (m *SteelMember) Update(fn func(*SteelInputs)) {
	fn(&m.inputs)
	m.stale = true
}

// SetLength sets the buckling length about one axis
func (m *SteelMember) SetLength(a Axis, l float64) {
	m.Update(func(in *SteelInputs) {
		if a == AxisX {
			in.Lx = l
		} else {
			in.Ly = l
		}
	})
}

// SetEffectiveLengthFactor sets ke about one axis
func (m *SteelMember) SetEffectiveLengthFactor(a Axis, ke float64) {
	m.Update(func(in *SteelInputs) {
		if a == AxisX {
			in.Kex = ke
		} else {
			in.Key = ke
		}
	})
}

// SetSection replaces the section (for example a net area copy) and
// re-evaluates its slenderness
func (m *SteelMember) SetSection(sec *geometry.Section) error {
	sl, err := slenderness.Evaluate(sec, m.material)
	if err != nil {
		return err
	}
	m.section, m.slender, m.stale = sec, sl, true
	return nil
}

// Capacities returns the last resolved snapshot, nil before the first Resolve
func (m *SteelMember) Capacities() *SteelCapacities { return m.snapshot }

// Stale reports whether inputs changed since the last successful Resolve
func (m *SteelMember) Stale() bool { return m.stale }

// Resolve recomputes all capacities from the current inputs
func (m *SteelMember) Resolve() (*SteelCapacities, error) {
	in := m.inputs
	sec, mat, sl := m.section, m.material, m.slender
	if in.Phi <= 0 || in.Phi > 1 {
		return nil, fmt.Errorf("member %s: capacity factor %g outside (0, 1]", sec.Name, in.Phi)
	}
	if err := checkInputs(sec.Name, map[string]float64{
		"l_x": in.Lx, "l_y": in.Ly, "k_ex": in.Kex, "k_ey": in.Key,
		"l": in.Segment, "k_l": in.Kl, "k_r": in.Kr, "α_m": in.AlphaM, "k_t": in.Kt,
	}); err != nil {
		return nil, err
	}

	c := &SteelCapacities{
		Name:   fmt.Sprintf("%s (%s)", sec.Name, mat.Grade),
		Inputs: in,
		Kf:     sl.Kf,
		AlphaB: sl.AlphaB,
	}
	c.PlasticInteraction = sec.Type.IsISection() && sl.Kf == 1 &&
		sl.X.Class == slenderness.Compact && sl.Y.Class == slenderness.Compact

	// Cl 7.2
	c.Nt = math.Min(sec.Ag*mat.Fy, 0.85*in.Kt*sec.An*mat.Fu) * nToKN
	c.PhiNt = in.Phi * c.Nt

	// Cl 6.2, 6.3.3
	ns := sl.Kf * sec.An * mat.Fy
	c.Ns = ns * nToKN
	c.PhiNs = in.Phi * c.Ns
	c.LeX = in.Kex * in.Lx
	c.LeY = in.Key * in.Ly
	c.X = as4100.EvaluateColumnCurve(c.LeX, sec.Rx, sl.Kf, mat.Fy, sl.AlphaB)
	c.Y = as4100.EvaluateColumnCurve(c.LeY, sec.Ry, sl.Kf, mat.Fy, sl.AlphaB)
	c.Ncx = c.X.AlphaC * c.Ns
	c.Ncy = c.Y.AlphaC * c.Ns
	c.PhiNc = in.Phi * floats.Min([]float64{c.Ns, c.Ncx, c.Ncy})

	// Cl 5.2
	msx := sl.X.Ze * mat.Fy
	c.Msx = msx * nmmToKNm
	c.Msy = sl.Y.Ze * mat.Fy * nmmToKNm
	c.PhiMsx = in.Phi * c.Msx
	c.PhiMsy = in.Phi * c.Msy

	if err := m.memberMoment(c, msx); err != nil {
		return nil, err
	}
	c.PhiMbx = in.Phi * math.Min(c.Mbx, c.Msx)

	m.shear(c)
	c.PhiVv = in.Phi * c.Vv

	m.snapshot, m.stale = c, false
	return c, nil
}

// memberMoment fills the Cl 5.6.1 member moment capacity about x
func (m *SteelMember) memberMoment(c *SteelCapacities, msx float64) error {
	in, sec := m.inputs, m.section
	c.Kt, c.AlphaS = 1, 1
	c.Mo = math.Inf(1)
	if in.Segment <= 0 {
		c.Mbx = c.Msx
		return nil
	}

	aFree := in.RestraintA == as4100.Unrestrained
	bFree := in.RestraintB == as4100.Unrestrained
	switch {
	case aFree && bFree:
		return fmt.Errorf("member %s: %w", sec.Name, ErrUnrestrained)
	case aFree || bFree:
		return fmt.Errorf("member %s: %s-%s: %w", sec.Name, in.RestraintA, in.RestraintB, ErrUnsupportedRestraint)
	}

	tf, tw, nw, iw := sec.Tf, sec.Tw, 1, sec.Iw
	if sec.Type.IsHollow() {
		tf, tw, nw, iw = sec.T, sec.T, 2, 0
	}
	c.Kt = as4100.TwistRestraintFactor(in.RestraintA, in.RestraintB, sec.D1(), tf, tw, in.Segment, nw)
	c.Le = c.Kt * orOne(in.Kl) * orOne(in.Kr) * in.Segment

	mo := as4100.ReferenceBucklingMoment(c.Le, sec.Iy, sec.J, iw)
	c.Mo = mo * nmmToKNm
	c.AlphaS = as4100.SlendernessReduction(msx, mo)
	c.Mbx = math.Min(orOne(in.AlphaM)*c.AlphaS*c.Msx, c.Msx)
	return nil
}

// shear fills the Cl 5.11 web shear capacities
func (m *SteelMember) shear(c *SteelCapacities) {
	sec, mat, sl := m.section, m.material, m.slender
	fyw := mat.Fyw
	if fyw == 0 {
		fyw = mat.Fy
	}
	if sec.Type == geometry.CHS {
		c.Vw = 0.36 * mat.Fy * sec.Ag * nToKN
	} else {
		c.Vw = 0.6 * fyw * sec.Aw() * nToKN
	}
	c.Vb = sl.AlphaV * c.Vw
	c.Vu = c.Vb
	if sl.WebShearYieldGoverns {
		c.Vu = c.Vw
	}

	su := sec.ShearUniformity()
	c.Vnu = c.Vu
	c.Vv = c.Vu
	if su != 1 {
		c.Vnu = math.Min(c.Vu, 2*c.Vu/(0.9+su))
		c.Vv = c.Vnu
	}
}

// checkInputs rejects negative and non-finite inputs. Names are sorted so
// the reported field is stable.
func checkInputs(section string, values map[string]float64) error {
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		v := values[n]
		if !(v >= 0) || math.IsInf(v, 0) {
			return &geometry.ConfigError{Section: section, Err: fmt.Errorf("%s = %g: %w", n, v, ErrInvalidInput)}
		}
	}
	return nil
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
