package geometry

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/shape"
)

// New validates raw dimensions and computes every derived property
func New(dims Dimensions) (*Section, error) {
	st, err := ParseShapeType(dims.Type)
	if err != nil {
		return nil, &ConfigError{Section: displayName(dims), Err: ErrUnsupportedShape, msg: fmt.Sprintf("sec_type %q", dims.Type)}
	}

	s := &Section{
		Name:        displayName(dims),
		Designation: dims.Section,
		Type:        st,
		D:           dims.D,
		B:           dims.B,
		Tf:          dims.Tf,
		Tw:          dims.Tw,
		T:           dims.T,
		R1:          dims.R1,
		Ro:          dims.Ro,
	}
	if s.Type == SHS && s.B == 0 {
		s.B = s.D
	}
	if s.Type.IsHollow() && s.Type != CHS && s.Ro == 0 {
		s.Ro = DefaultCornerRadius(s.T)
	}

	if s.Type == Custom {
		s.Vertices = append([]Point(nil), dims.Vertices...)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	if s.Type == Custom {
		if err := s.solvePolygon(dims.J, dims.Iw); err != nil {
			return nil, err
		}
	} else {
		s.solveShape()
	}
	s.An = s.Ag
	return s, nil
}

// FromParams decodes a library row and resolves it
func FromParams(p library.Params) (*Section, error) {
	var dims Dimensions
	if err := p.Decode(&dims); err != nil {
		return nil, &ConfigError{Section: p.String("name"), Err: ErrInvalidDimension, msg: err.Error()}
	}
	return New(dims)
}

// FromLibrary looks up a section by name and resolves it
func FromLibrary(provider library.Provider, cat library.Category, name string) (*Section, error) {
	p, err := provider.Lookup(cat, name)
	if err != nil {
		return nil, err
	}
	return FromParams(p)
}

// DefaultCornerRadius returns the outside corner radius of a cold-formed
// RHS/SHS: 2t for t <= 3 mm, otherwise 2.5t
func DefaultCornerRadius(t float64) float64 {
	if t <= 3 {
		return 2 * t
	}
	return 2.5 * t
}

func displayName(d Dimensions) string {
	switch {
	case d.Name != "":
		return d.Name
	case d.Section != "":
		return d.Section
	}
	return d.Type
}

func (s *Section) validate() error {
	// NaN fails every comparison, so test for the accepted range
	positive := func(label string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return invalid(s.Name, "%s must be positive, got %g", label, v)
		}
		return nil
	}
	nonNegative := func(label string, v float64) error {
		if !(v >= 0) || math.IsInf(v, 0) {
			return invalid(s.Name, "%s must not be negative, got %g", label, v)
		}
		return nil
	}
	checks := []error{
		nonNegative("d", s.D), nonNegative("b", s.B), nonNegative("t_f", s.Tf), nonNegative("t_w", s.Tw),
		nonNegative("t", s.T), nonNegative("r_1", s.R1), nonNegative("r_o", s.Ro),
	}
	for _, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			checks = append(checks, invalid(s.Name, "vertex (%g, %g) is not finite", v.X, v.Y))
		}
	}
	switch {
	case s.Type.IsOpen():
		checks = append(checks, positive("d", s.D), positive("b", s.B), positive("t_f", s.Tf), positive("t_w", s.Tw))
	case s.Type == SHS || s.Type == RHS:
		checks = append(checks, positive("d", s.D), positive("b", s.B), positive("t", s.T))
	case s.Type == CHS:
		checks = append(checks, positive("d", s.D), positive("t", s.T))
	case s.Type == RectPlate || s.Type == Board:
		checks = append(checks, positive("d", s.D), positive("b", s.B))
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	switch s.Type {
	case UB, UC, WB, WC, PFC:
		if 2*s.Tf >= s.D {
			return invalid(s.Name, "flanges (2 x %g) exceed depth %g", s.Tf, s.D)
		}
		if s.Tw >= s.B {
			return invalid(s.Name, "web %g not narrower than flange %g", s.Tw, s.B)
		}
	case BT, CT:
		if s.Tf >= s.D {
			return invalid(s.Name, "flange %g exceeds depth %g", s.Tf, s.D)
		}
		if s.Tw >= s.B {
			return invalid(s.Name, "web %g not narrower than flange %g", s.Tw, s.B)
		}
	case SHS, RHS:
		if 2*s.T >= s.D || 2*s.T >= s.B {
			return invalid(s.Name, "wall %g too thick for %gx%g", s.T, s.D, s.B)
		}
		if s.Ro < s.T || 2*s.Ro > s.D || 2*s.Ro > s.B {
			return invalid(s.Name, "corner radius %g out of range", s.Ro)
		}
	case CHS:
		if 2*s.T >= s.D {
			return invalid(s.Name, "wall %g too thick for diameter %g", s.T, s.D)
		}
	}
	return nil
}

func (s *Section) dims() shape.Dims {
	return shape.Dims{D: s.D, B: s.B, Tf: s.Tf, Tw: s.Tw, T: s.T, R1: s.R1, Ro: s.Ro}
}

func (s *Section) solveShape() {
	var p shape.Properties
	switch s.Type {
	case UB, UC, WB, WC:
		p = shape.ISection(s.dims())
	case PFC:
		p = shape.Channel(s.dims())
	case BT, CT:
		p = shape.Tee(s.dims())
	case SHS, RHS:
		p = shape.RectangularHollow(s.dims())
	case CHS:
		p = shape.CircularHollow(s.dims())
	case RectPlate, Board:
		p = shape.Rectangle(s.dims())
	}
	s.apply(p)
}

func (s *Section) apply(p shape.Properties) {
	s.Ag = p.Area
	s.Ix, s.Iy = p.Ix, p.Iy
	s.Sx, s.Sy = p.Sx, p.Sy
	s.Zx, s.Zy = p.Zx(), p.Zy()
	s.Rx, s.Ry = p.Rx(), p.Ry()
	s.J, s.Iw = p.J, p.Iw
	s.Xc, s.Yc = p.Xc, p.Yc
	s.XMax, s.YMax = p.XMax, p.YMax
}
