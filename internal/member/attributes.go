package member

import "github.com/alexiusacademia/asdesign/internal/report"

// Attributes lists the steel member capacities
func (c *SteelCapacities) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("member", c.Name, "section (grade)"),
		report.Num("φ", c.Inputs.Phi, "", "capacity factor", "3.4"),
		report.Num("N_t", c.Nt, "kN", "nominal section tension capacity", "7.2"),
		report.Num("φN_t", c.PhiNt, "kN", "design section tension capacity", "7.2"),
		report.Num("N_s", c.Ns, "kN", "nominal section compression capacity", "6.2.1"),
		report.Num("φN_s", c.PhiNs, "kN", "design section compression capacity", "6.2.1"),
		report.Num("l_ex", c.LeX, "mm", "effective length about x", "4.6.3"),
		report.Num("l_ey", c.LeY, "mm", "effective length about y", "4.6.3"),
		report.Num("λ_nx", c.X.LambdaN, "", "modified slenderness about x", "6.3.3"),
		report.Num("λ_ny", c.Y.LambdaN, "", "modified slenderness about y", "6.3.3"),
		report.Num("α_cx", c.X.AlphaC, "", "slenderness reduction factor about x", "6.3.3"),
		report.Num("α_cy", c.Y.AlphaC, "", "slenderness reduction factor about y", "6.3.3"),
		report.Num("N_cx", c.Ncx, "kN", "nominal member capacity about x", "6.3.3"),
		report.Num("N_cy", c.Ncy, "kN", "nominal member capacity about y", "6.3.3"),
		report.Num("φN_c", c.PhiNc, "kN", "design member compression capacity", "6.3.3"),
		report.Num("M_sx", c.Msx, "kNm", "nominal section moment capacity about x", "5.2.1"),
		report.Num("M_sy", c.Msy, "kNm", "nominal section moment capacity about y", "5.2.1"),
		report.Num("φM_sx", c.PhiMsx, "kNm", "design section moment capacity about x", "5.2.1"),
		report.Num("φM_sy", c.PhiMsy, "kNm", "design section moment capacity about y", "5.2.1"),
		report.Num("k_t", c.Kt, "", "twist restraint factor", "5.6.3"),
		report.Num("l_e", c.Le, "mm", "effective length of segment", "5.6.3"),
		report.Num("M_o", c.Mo, "kNm", "reference buckling moment", "5.6.1.1"),
		report.Num("α_s", c.AlphaS, "", "slenderness reduction factor", "5.6.1.1"),
		report.Num("M_bx", c.Mbx, "kNm", "nominal member moment capacity", "5.6.1.1"),
		report.Num("φM_bx", c.PhiMbx, "kNm", "design member moment capacity", "5.6.1.1"),
		report.Num("V_w", c.Vw, "kN", "nominal shear yield capacity", "5.11.4"),
		report.Num("V_b", c.Vb, "kN", "nominal shear buckling capacity", "5.11.5"),
		report.Num("V_v", c.Vv, "kN", "nominal web shear capacity", "5.11.2"),
		report.Num("φV_v", c.PhiVv, "kN", "design web shear capacity", "5.11.2"),
	}
}

// Attributes lists the combined action capacities
func (r CombinedActions) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Num("N*", r.NStar, "kN", "design axial force, tension positive", ""),
		report.Num("φM_rx", r.PhiMrx, "kNm", "reduced section capacity about x", "8.3.2"),
		report.Num("φM_ry", r.PhiMry, "kNm", "reduced section capacity about y", "8.3.3"),
		report.Num("φM_ix", r.PhiMix, "kNm", "in-plane member capacity about x", "8.4.2.2"),
		report.Num("φM_iy", r.PhiMiy, "kNm", "in-plane member capacity about y", "8.4.2.2"),
		report.Num("φM_ox", r.PhiMox, "kNm", "out-of-plane member capacity", "8.4.4"),
		report.Num("φM_cx", r.PhiMcx, "kNm", "member moment capacity about x", "8.4"),
	}
}

// Attributes lists the timber member capacities
func (c *TimberCapacities) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("member", c.Name, "section (grade)"),
		report.Num("φ", c.Phi, "", "capacity factor", "2.3"),
		report.Num("k_1", c.K1, "", "load duration factor", "2.4.1"),
		report.Num("k_4", c.K4, "", "moisture condition factor", "2.4.2"),
		report.Num("k_6", c.K6, "", "temperature factor", "2.4.3"),
		report.Num("k_9", c.K9, "", "strength sharing factor", "2.4.5"),
		report.Num("k_11", c.K11, "", "size factor", "2.4.6"),
		report.Num("S_1", c.S1, "", "beam slenderness coefficient", "3.2.3"),
		report.Num("ρ_b", c.RhoB, "", "bending material constant", "E2"),
		report.Num("k_12,b", c.K12Bending, "", "bending stability factor", "3.2.4"),
		report.Num("φM", c.PhiM, "kNm", "design bending capacity", "3.2.1"),
		report.Num("φV", c.PhiV, "kN", "design shear capacity", "3.2.5"),
		report.Num("S_3", c.S3, "", "column slenderness about x", "3.3.2"),
		report.Num("S_4", c.S4, "", "column slenderness about y", "3.3.2"),
		report.Num("ρ_c", c.RhoC, "", "compression material constant", "E2"),
		report.Num("φN_cx", c.PhiNcx, "kN", "design compression capacity about x", "3.3.1"),
		report.Num("φN_cy", c.PhiNcy, "kN", "design compression capacity about y", "3.3.1"),
		report.Num("φN_c", c.PhiNc, "kN", "design compression capacity", "3.3.1"),
		report.Num("φN_t", c.PhiNt, "kN", "design tension capacity", "3.4.1"),
		report.Num("k_7", c.K7, "", "bearing length factor", "2.4.4"),
		report.Num("φN_p", c.PhiNp, "kN", "design bearing capacity perpendicular to grain", "3.2.6"),
	}
}
