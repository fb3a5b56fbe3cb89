package as1720

import "math"

// DefaultCreepRatio is r, the ratio of temporary to total design action effect
const DefaultCreepRatio = 0.25

// BendingMaterialConstant calculates ρb, AS1720.1 Appendix E2 Eq E2(1)
func BendingMaterialConstant(e, fb, r float64) float64 {
	return 14.71 * math.Pow(e/fb, -0.480) * math.Pow(r, -0.061)
}

// CompressionMaterialConstant calculates ρc, AS1720.1 Appendix E2 Eq E2(2)
func CompressionMaterialConstant(e, fc, r float64) float64 {
	return 11.39 * math.Pow(e/fc, -0.408) * math.Pow(r, -0.074)
}

// StabilityFactor returns k12 for the product ρS, AS1720.1 Cl 3.2.4 / 3.3.3
func StabilityFactor(rhoS float64) float64 {
	switch {
	case rhoS <= 10:
		return 1
	case rhoS <= 20:
		return 1.5 - 0.05*rhoS
	default:
		return 200 / (rhoS * rhoS)
	}
}

// BeamSlenderness calculates S1 for a beam with discrete lateral restraint
// of the compression edge at spacing lay, AS1720.1 Cl 3.2.3.2(a).
// Continuous restraint gives S1 = 0.
func BeamSlenderness(d, b, lay float64, continuous bool) float64 {
	if continuous || lay <= 0 || b <= 0 || d <= 0 {
		return 0
	}
	return 1.25 * (d / b) * math.Sqrt(lay/d)
}

// ColumnSlenderness calculates S3 = lax/d or S4 = lay/b, AS1720.1 Cl 3.3.2.2
func ColumnSlenderness(l, dim float64) float64 {
	if l <= 0 || dim <= 0 {
		return 0
	}
	return l / dim
}
