package connection

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/component"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/member"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// CopeType is the end preparation of a supported beam
type CopeType int

const (
	Uncoped CopeType = iota
	SingleCope
	DoubleCope
)

var copeCodes = []string{"O", "SWC", "DWC"}

func (c CopeType) String() string {
	if c >= 0 && int(c) < len(copeCodes) {
		return copeCodes[c]
	}
	return fmt.Sprintf("CopeType(%d)", int(c))
}

// ParseCopeType reads O, SWC or DWC
func ParseCopeType(s string) (CopeType, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return Uncoped, nil
	}
	for i, c := range copeCodes {
		if c == code {
			return CopeType(i), nil
		}
	}
	return 0, fmt.Errorf("cope %q: want O, SWC or DWC: %w", s, ErrInvalidCope)
}

// Cope gives the cut-out at the end of a beam (mm)
type Cope struct {
	Type   CopeType
	Top    float64 // d_ct, depth of the top cope
	Bottom float64 // d_cb, depth of the bottom cope
	Length float64 // L_c, length of the cope from the beam end
	Radius float64 // r_c, cope corner radius
}

// CopedMember is a beam end with its cope. Capacities in kN and kNm.
type CopedMember struct {
	Cope     Cope
	Section  *geometry.Section // Unfeatured section
	Coped    *geometry.Section // Remaining section at the cope
	Material *material.Steel

	PhiVv  float64 // Web shear capacity of the unfeatured section
	PhiVvc float64 // Web shear capacity of the coped section
	PhiVws float64 // Web shear capacity at the cope, over d_1
	PhiMss float64 // Section moment capacity at the cope
}

// NewCopedMember builds the coped section and resolves the web shear and
// bending capacities at the cope
func NewCopedMember(sec *geometry.Section, mat *material.Steel, cope Cope) (*CopedMember, error) {
	if !sec.Type.IsISection() {
		return nil, fmt.Errorf("coped member %s: %s: %w", sec.Name, sec.Type, geometry.ErrUnsupportedShape)
	}
	if err := checkCope(sec, cope); err != nil {
		return nil, err
	}
	if cope.Type == Uncoped {
		cope.Top, cope.Bottom = 0, 0
	}

	coped, err := copedSection(sec, cope)
	if err != nil {
		return nil, err
	}
	cm := &CopedMember{Cope: cope, Section: sec, Coped: coped, Material: mat}

	full, err := webShear(sec, mat)
	if err != nil {
		return nil, err
	}
	cm.PhiVv = full

	cm.PhiVvc, err = webShear(coped, mat)
	if err != nil {
		return nil, err
	}
	cm.PhiVws = cm.PhiVvc * coped.D1() / coped.Dw()

	ze := math.Min(coped.Sx, 1.5*coped.Zx)
	cm.PhiMss = as4100.PhiMember * ze * mat.Fy * 1e-6
	return cm, nil
}

func checkCope(sec *geometry.Section, c Cope) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("coped member %s: %s: %w", sec.Name, fmt.Sprintf(format, args...), ErrInvalidCope)
	}
	for _, v := range []float64{c.Top, c.Bottom, c.Length, c.Radius} {
		if !(v >= 0) || math.IsInf(v, 0) {
			return bad("cope dimension %g", v)
		}
	}
	switch c.Type {
	case Uncoped:
		return nil
	case SingleCope, DoubleCope:
	default:
		return bad("cope type %s", c.Type)
	}
	if sec.Type != geometry.UB && sec.Type != geometry.UC && sec.Type != geometry.WB && sec.Type != geometry.WC {
		return fmt.Errorf("coped member %s: %s cope on %s: %w", sec.Name, c.Type, sec.Type, geometry.ErrUnsupportedShape)
	}
	if c.Top < sec.Tf {
		return bad("d_ct %g less than t_f %g", c.Top, sec.Tf)
	}
	if c.Type == SingleCope {
		if c.Top >= sec.D-sec.Tf {
			return bad("d_ct %g leaves no web", c.Top)
		}
		return nil
	}
	if c.Bottom < sec.Tf {
		return bad("d_cb %g less than t_f %g", c.Bottom, sec.Tf)
	}
	if c.Top+c.Bottom >= sec.D {
		return bad("d_ct + d_cb = %g exceeds d = %g", c.Top+c.Bottom, sec.D)
	}
	return nil
}

// copedSection is a tee for a single cope and a web plate for a double cope
func copedSection(sec *geometry.Section, c Cope) (*geometry.Section, error) {
	dims := geometry.Dimensions{
		Name:    fmt.Sprintf("%s %s", sec.Name, c.Type),
		Section: sec.Designation,
	}
	switch c.Type {
	case Uncoped:
		return sec, nil
	case SingleCope:
		dims.Type = "BT"
		if sec.Type == geometry.UC || sec.Type == geometry.WC {
			dims.Type = "CT"
		}
		dims.D, dims.B, dims.Tf, dims.Tw, dims.R1 = sec.D-c.Top, sec.B, sec.Tf, sec.Tw, sec.R1
	default:
		dims.Type = "RectPlate"
		dims.D, dims.B = sec.D-c.Top-c.Bottom, sec.Tw
	}
	coped, err := geometry.New(dims)
	if err != nil {
		return nil, fmt.Errorf("coped member %s: %w", sec.Name, err)
	}
	return coped, nil
}

func webShear(sec *geometry.Section, mat *material.Steel) (float64, error) {
	m, err := member.NewSteelMember(sec, mat, member.DefaultSteelInputs())
	if err != nil {
		return 0, fmt.Errorf("coped member %s: %w", sec.Name, err)
	}
	c, err := m.Resolve()
	if err != nil {
		return 0, fmt.Errorf("coped member %s: %w", sec.Name, err)
	}
	return c.PhiVv, nil
}

// Depth is the depth of the remaining web at the cope
func (cm *CopedMember) Depth() float64 { return cm.Coped.D }

// WebShearAtPlate is the web shear capacity of the unfeatured section
// over the plate depth di
func (cm *CopedMember) WebShearAtPlate(di float64) float64 {
	return cm.PhiVv * di / cm.Section.Dw()
}

// CopeBending is the end shear that the moment capacity at the cope
// allows with the reaction gap mm clear of the cope
func (cm *CopedMember) CopeBending(gap float64) float64 {
	lever := cm.Cope.Length + gap
	if lever <= 0 {
		return math.Inf(1)
	}
	return cm.PhiMss / lever * 1e3
}

// BlockShear of the web for net tension path lt and gross shear path lv,
// with the tension stress of a single bolt line taken as non-uniform
func (cm *CopedMember) BlockShear(lt, lv float64) float64 {
	web := cm.webPly()
	return as4100.PhiBlockShear * (0.5*lt*web.Thickness*web.Fu + 0.6*lv*web.Thickness*web.Fy) / 1e3
}

// webPly is the beam web as a connected ply
func (cm *CopedMember) webPly() *component.Plate {
	fyw := cm.Material.Fyw
	if fyw == 0 {
		fyw = cm.Material.Fy
	}
	return &component.Plate{
		Name:      cm.Section.Name + " web",
		Width:     cm.Section.D,
		Thickness: cm.Section.Tw,
		Grade:     cm.Material.Grade,
		Fy:        fyw,
		Fu:        cm.Material.Fu,
	}
}

func (cm *CopedMember) Attributes() []report.Attribute {
	attrs := []report.Attribute{
		report.Str("type", cm.Cope.Type.String(), "cope"),
	}
	if cm.Cope.Type != Uncoped {
		attrs = append(attrs,
			report.Num("d_ct", cm.Cope.Top, "mm", "top cope depth", ""),
		)
	}
	if cm.Cope.Type == DoubleCope {
		attrs = append(attrs, report.Num("d_cb", cm.Cope.Bottom, "mm", "bottom cope depth", ""))
	}
	return append(attrs,
		report.Num("L_c", cm.Cope.Length, "mm", "cope length", ""),
		report.Num("d_c", cm.Depth(), "mm", "web depth at the cope", ""),
		report.Num("φV_v", cm.PhiVv, "kN", "web shear capacity, unfeatured", "5.11"),
		report.Num("φV_ws", cm.PhiVws, "kN", "web shear capacity at the cope", "5.11"),
		report.Num("φM_ss", cm.PhiMss, "kNm", "moment capacity at the cope", "5.2"),
	)
}
