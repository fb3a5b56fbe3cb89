// Package connection designs simple shear connections of beams to AS4100:
// web side plates and flexible end plates, with the supported beam coped
// or uncoped. Capacities are built from the bolt group, plate and weld
// components.
package connection

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/report"
)

var (
	ErrInvalidCope  = errors.New("invalid cope")
	ErrInvalidPlate = errors.New("invalid connection plate")
)

// Layout places the bolt group on the beam web (mm)
type Layout struct {
	TopOffset  float64 // a, top of the beam to the top bolt row
	EdgeV      float64 // a_ev, plate edge to the end bolt rows
	MemberEdge float64 // a_eh1, beam end to the nearest bolt column
	WeldToBolt float64 // s_g1, support weld to the first bolt column
}

// DefaultLayout is the standard detail for M20 bolts
func DefaultLayout() Layout {
	return Layout{TopOffset: 100, EdgeV: 35, MemberEdge: 35, WeldToBolt: 55}
}

func (l Layout) check() error {
	for _, v := range []float64{l.TopOffset, l.EdgeV, l.MemberEdge, l.WeldToBolt} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("layout dimension %g: %w", v, ErrInvalidPlate)
		}
	}
	return nil
}

// Mode is one failure mode of a connection
type Mode struct {
	Symbol      string
	Description string
	Capacity    float64 // kN
	Guide       bool    // Part of the ASI design guide capacity
}

// Result is a checked connection. Detailing lists every layout rule the
// connection fails; the capacities are still computed.
type Result struct {
	Name          string
	Type          string
	Depth         float64 // d_i, plate depth
	Eccentricity  float64 // e, support to the bolt group centroid
	Gap           float64 // Beam end to the support
	MinBoltLength float64 // Grip of the bolts
	Detailing     []string
	Modes         []Mode
	PhiVGuide     float64 // Least of the design guide modes
	PhiV          float64 // Least of all modes
	Governing     string
}

// DetailingOK reports whether the layout meets every detailing rule
func (r *Result) DetailingOK() bool { return len(r.Detailing) == 0 }

// Mode finds a failure mode by symbol
func (r *Result) Mode(symbol string) (Mode, bool) {
	for _, m := range r.Modes {
		if m.Symbol == symbol {
			return m, true
		}
	}
	return Mode{}, false
}

func (r *Result) add(symbol, description string, capacity float64, guide bool) {
	r.Modes = append(r.Modes, Mode{Symbol: symbol, Description: description, Capacity: capacity, Guide: guide})
}

func (r *Result) detail(format string, args ...any) {
	r.Detailing = append(r.Detailing, fmt.Sprintf(format, args...))
}

// finish sets the design capacities from the modes
func (r *Result) finish() {
	all := make([]float64, len(r.Modes))
	var guide []float64
	for i, m := range r.Modes {
		all[i] = m.Capacity
		if m.Guide {
			guide = append(guide, m.Capacity)
		}
	}
	i := floats.MinIdx(all)
	r.PhiV, r.Governing = all[i], r.Modes[i].Symbol
	if len(guide) > 0 {
		r.PhiVGuide = floats.Min(guide)
	}
}

func (r *Result) Attributes() []report.Attribute {
	attrs := []report.Attribute{
		report.Str("type", r.Type, "connection"),
		report.Num("d_i", r.Depth, "mm", "plate depth", ""),
	}
	if r.Eccentricity > 0 {
		attrs = append(attrs, report.Num("e", r.Eccentricity, "mm", "eccentricity of the bolt group", ""))
	}
	attrs = append(attrs,
		report.Num("g", r.Gap, "mm", "gap, beam end to support", ""),
		report.Num("l_b,min", r.MinBoltLength, "mm", "minimum bolt grip", ""),
	)
	for _, m := range r.Modes {
		attrs = append(attrs, report.Num(m.Symbol, m.Capacity, "kN", m.Description, ""))
	}
	return append(attrs,
		report.Num("φV_ASI", r.PhiVGuide, "kN", "design capacity, design guide modes", ""),
		report.Num("φV", r.PhiV, "kN", "design capacity, governed by "+r.Governing, ""),
	)
}

// checkPlacement applies the detailing rules shared by both connections
func checkPlacement(r *Result, cm *CopedMember, l Layout, di float64) {
	sec := cm.Section
	top := l.TopOffset - l.EdgeV
	if cm.Cope.Type != Uncoped && cm.Cope.Top != top {
		r.detail("top of plate %g mm is not level with the cope d_ct = %g mm", top, cm.Cope.Top)
	}
	if di < 0.5*sec.D {
		r.detail("d_i = %g mm is less than half the beam depth %g mm", di, sec.D)
	}
	if top < sec.Tf {
		r.detail("top of plate %g mm is within the flange t_f = %g mm", top, sec.Tf)
	}
	if top+di > sec.D-sec.Tf {
		r.detail("bottom of plate %g mm is within the bottom flange", top+di)
	}
	if limit := math.Min(sec.D-top, cm.Depth()); di > limit {
		r.detail("d_i = %g mm exceeds the web depth available %g mm", di, limit)
	}
}
