package as4100

import "math"

// AS4100 Section 6 member compression helpers

// ModifiedSlenderness calculates λn = (le/r)·√(kf·fy/250)
// AS4100 Cl 6.3.3
func ModifiedSlenderness(le, r, kf, fy float64) float64 {
	if r <= 0 {
		return 0
	}
	return le / r * math.Sqrt(kf*fy/250)
}

// AlphaA calculates the compression member factor αa
// AS4100 Cl 6.3.3 Eq 6.3.3(2)
func AlphaA(lamN float64) float64 {
	return 2100 * (lamN - 13.5) / (lamN*lamN - 15.3*lamN + 2050)
}

// Eta calculates the imperfection parameter η = max(0.00326(λ - 13.5), 0)
func Eta(lam float64) float64 {
	return math.Max(0.00326*(lam-13.5), 0)
}

// Xi calculates ξ = ((λ/90)² + 1 + η) / (2(λ/90)²)
func Xi(lam, eta float64) float64 {
	q := (lam / 90) * (lam / 90)
	return (q + 1 + eta) / (2 * q)
}

// AlphaC calculates the member slenderness reduction factor αc
// AS4100 Cl 6.3.3 Eq 6.3.3(3)
func AlphaC(lam, xi float64) float64 {
	if lam <= 0 {
		return 1
	}
	r := 90 / (xi * lam)
	inner := 1 - r*r
	if inner < 0 {
		inner = 0
	}
	return math.Min(xi*(1-math.Sqrt(inner)), 1)
}

// ColumnCurve holds the intermediate values of Cl 6.3.3 for one axis
type ColumnCurve struct {
	LambdaN float64 // Modified slenderness λn
	AlphaA  float64
	AlphaB  float64
	Lambda  float64 // λ = λn + αa·αb
	Eta     float64
	Xi      float64
	AlphaC  float64
}

// EvaluateColumnCurve runs the Cl 6.3.3 sequence for an effective length le.
// A zero effective length gives αc = 1.
func EvaluateColumnCurve(le, r, kf, fy, alphaB float64) ColumnCurve {
	if le <= 0 {
		return ColumnCurve{AlphaB: alphaB, AlphaC: 1}
	}
	c := ColumnCurve{AlphaB: alphaB}
	c.LambdaN = ModifiedSlenderness(le, r, kf, fy)
	c.AlphaA = AlphaA(c.LambdaN)
	c.Lambda = c.LambdaN + c.AlphaA*alphaB
	c.Eta = Eta(c.Lambda)
	c.Xi = Xi(c.Lambda, c.Eta)
	c.AlphaC = AlphaC(c.Lambda, c.Xi)
	return c
}
