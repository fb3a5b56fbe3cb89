package geometry

import "math"

const circleSegments = 72

// Outline returns the closed boundary rings of the section for drawing,
// with the origin at the bottom-left of the bounding box (centre for CHS).
// Hollow sections return an outer and an inner ring. Root fillets and
// corner radii are omitted.
func (s *Section) Outline() [][]Point {
	switch s.Type {
	case UB, UC, WB, WC:
		xw0, xw1 := (s.B-s.Tw)/2, (s.B+s.Tw)/2
		return [][]Point{{
			{0, 0}, {s.B, 0}, {s.B, s.Tf}, {xw1, s.Tf}, {xw1, s.D - s.Tf}, {s.B, s.D - s.Tf},
			{s.B, s.D}, {0, s.D}, {0, s.D - s.Tf}, {xw0, s.D - s.Tf}, {xw0, s.Tf}, {0, s.Tf},
		}}
	case PFC:
		return [][]Point{{
			{0, 0}, {s.B, 0}, {s.B, s.Tf}, {s.Tw, s.Tf}, {s.Tw, s.D - s.Tf},
			{s.B, s.D - s.Tf}, {s.B, s.D}, {0, s.D},
		}}
	case BT, CT:
		xw0, xw1 := (s.B-s.Tw)/2, (s.B+s.Tw)/2
		return [][]Point{{
			{xw0, 0}, {xw1, 0}, {xw1, s.D - s.Tf}, {s.B, s.D - s.Tf},
			{s.B, s.D}, {0, s.D}, {0, s.D - s.Tf}, {xw0, s.D - s.Tf},
		}}
	case SHS, RHS:
		return [][]Point{
			rect(0, 0, s.B, s.D),
			rect(s.T, s.T, s.B-s.T, s.D-s.T),
		}
	case CHS:
		return [][]Point{circle(s.D / 2), circle(s.D/2 - s.T)}
	case Custom:
		return [][]Point{append([]Point(nil), s.Vertices...)}
	}
	return [][]Point{rect(0, 0, s.B, s.D)}
}

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func circle(r float64) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}
