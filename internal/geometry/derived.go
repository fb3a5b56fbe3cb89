package geometry

import "fmt"

// D1 is the clear depth between flanges, ignoring fillets or welds.
// It governs web slenderness.
func (s *Section) D1() float64 {
	switch s.Type {
	case UB, UC, WB, WC, PFC:
		return s.D - 2*s.Tf
	case BT, CT:
		return s.D - s.Tf
	case SHS, RHS:
		return s.D - 2*s.T
	}
	return s.D
}

// Dw is the web depth used for web shear
func (s *Section) Dw() float64 {
	switch s.Type {
	case SHS, RHS:
		return s.D - 2*s.T
	case WB, WC:
		return s.D - 2*s.Tf
	}
	return s.D
}

// Dp is the clear transverse dimension of a web panel
func (s *Section) Dp() float64 {
	if s.Type.IsOpen() {
		return s.D1()
	}
	return s.Dw()
}

// Bff is the clear width of a flange element: the outstand for open
// sections, the flat between webs for RHS/SHS
func (s *Section) Bff() float64 {
	switch s.Type {
	case SHS, RHS:
		return s.B - 2*s.T
	case UB, UC, WB, WC, BT, CT:
		return (s.B - s.Tw) / 2
	case PFC:
		return s.B - s.Tw
	}
	return 0
}

// Aw is the gross area of the web elements for shear
func (s *Section) Aw() float64 {
	switch {
	case s.Type.IsOpen():
		return s.Dw() * s.Tw
	case s.Type == SHS || s.Type == RHS:
		return 2 * s.Dp() * s.T
	case s.Type == CHS || s.Type == Custom:
		return s.Ag
	}
	return s.D * s.B
}

// Qc is the first moment of area above the elastic neutral axis about it.
// Defined for tees, rectangles and custom polygons.
func (s *Section) Qc() (float64, error) {
	switch s.Type {
	case BT, CT:
		switch {
		case s.Yc >= s.Tf+s.R1:
			return s.B*s.Tf*(s.Yc-0.5*s.Tf) + 0.4292*s.R1*s.R1*(s.Yc-s.Tf-0.223*s.R1) + s.Tw*sq(s.Yc-s.Tf)/2, nil
		case s.Yc >= s.Tf:
			return s.B*s.Tf*(s.Yc-0.5*s.Tf) + s.Tw*sq(s.Yc-s.Tf)/2, nil
		}
		return 0, fmt.Errorf("section %q: neutral axis within tee flange", s.Name)
	case RectPlate, Board:
		return s.B * s.D * s.D / 8, nil
	case Custom:
		a, _, cy := areaAndCentroid(clipAbove(s.Vertices, s.Yc))
		return a * (cy - s.Yc), nil
	}
	return 0, fmt.Errorf("section %q: first moment not defined for %s", s.Name, s.Type)
}

// ShearUniformity is the ratio of peak to average web shear stress used
// for the non-uniform shear capacity of Cl 5.11.3
func (s *Section) ShearUniformity() float64 {
	switch s.Type {
	case BT, CT:
		q, err := s.Qc()
		if err != nil {
			return 1
		}
		return q * s.D1() / s.Ix
	case RectPlate, Board:
		q, _ := s.Qc()
		return q * s.D / s.Ix
	case Custom:
		q, _ := s.Qc()
		w := s.WidthAtY(s.Yc)
		if w <= 0 {
			return 1
		}
		return q * s.Ag / (s.Ix * w)
	}
	return 1
}

// WithNetArea returns a copy whose net area is an
func (s *Section) WithNetArea(an float64) (*Section, error) {
	if an <= 0 || an > s.Ag {
		return nil, invalid(s.Name, "net area %g outside (0, %g]", an, s.Ag)
	}
	c := s.Clone()
	c.An = an
	return c, nil
}

// WithHoleDeduction returns a copy with n holes of diameter dh through
// thickness t removed from the gross area
func (s *Section) WithHoleDeduction(n int, dh, t float64) (*Section, error) {
	if n < 0 || dh < 0 || t < 0 {
		return nil, invalid(s.Name, "hole deduction must not be negative")
	}
	return s.WithNetArea(s.Ag - float64(n)*dh*t)
}

// Clone returns a deep copy
func (s *Section) Clone() *Section {
	c := *s
	c.Vertices = append([]Point(nil), s.Vertices...)
	return &c
}

// FlangeThickness returns the thickness governing f_y: t_f for open
// sections, t for hollow sections, the lesser dimension for plates
func (s *Section) FlangeThickness() float64 {
	switch {
	case s.Type.IsOpen():
		return s.Tf
	case s.Type.IsHollow(), s.T > 0:
		return s.T
	}
	return minPositive(s.D, s.B)
}

// WebThickness returns the thickness governing f_yw
func (s *Section) WebThickness() float64 {
	switch {
	case s.Type.IsOpen():
		return s.Tw
	case s.Type.IsHollow(), s.T > 0:
		return s.T
	}
	return minPositive(s.D, s.B)
}

func minPositive(a, b float64) float64 {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	}
	return b
}

func sq(x float64) float64 { return x * x }
