package geometry

import "github.com/alexiusacademia/asdesign/internal/report"

// Attributes lists the raw and derived properties for reporting
func (s *Section) Attributes() []report.Attribute {
	attrs := []report.Attribute{
		report.Str("name", s.Name, "section name"),
		report.Str("sec_type", s.Type.String(), "section type"),
	}
	raw := []struct {
		sym  string
		v    float64
		desc string
	}{
		{"d", s.D, "overall depth"},
		{"b", s.B, "overall width"},
		{"t_f", s.Tf, "flange thickness"},
		{"t_w", s.Tw, "web thickness"},
		{"t", s.T, "wall thickness"},
		{"r_1", s.R1, "root radius"},
		{"r_o", s.Ro, "outside corner radius"},
	}
	for _, r := range raw {
		if r.v > 0 {
			attrs = append(attrs, report.Num(r.sym, r.v, "mm", r.desc, ""))
		}
	}
	attrs = append(attrs,
		report.Num("A_g", s.Ag, "mm²", "gross cross-sectional area", ""),
		report.Num("A_n", s.An, "mm²", "net area", "7.2"),
		report.Num("I_x", s.Ix, "mm⁴", "second moment of area about x", ""),
		report.Num("I_y", s.Iy, "mm⁴", "second moment of area about y", ""),
		report.Num("Z_x", s.Zx, "mm³", "elastic section modulus about x", "5.2.4"),
		report.Num("Z_y", s.Zy, "mm³", "elastic section modulus about y", "5.2.4"),
		report.Num("S_x", s.Sx, "mm³", "plastic section modulus about x", "5.2.3"),
		report.Num("S_y", s.Sy, "mm³", "plastic section modulus about y", "5.2.3"),
		report.Num("r_x", s.Rx, "mm", "radius of gyration about x", "6.3.3"),
		report.Num("r_y", s.Ry, "mm", "radius of gyration about y", "6.3.3"),
		report.Num("J", s.J, "mm⁴", "torsion constant", "5.6.1.1"),
		report.Num("I_w", s.Iw, "mm⁶", "warping constant", "5.6.1.1"),
	)
	switch s.Type {
	case PFC:
		attrs = append(attrs, report.Num("x_c", s.Xc, "mm", "centroid from back of web", ""))
	case BT, CT:
		attrs = append(attrs, report.Num("y_c", s.Yc, "mm", "centroid from outside of flange", ""))
	case Custom:
		attrs = append(attrs,
			report.Num("x_c", s.Xc, "mm", "centroid x", ""),
			report.Num("y_c", s.Yc, "mm", "centroid y", ""),
		)
	}
	return attrs
}
