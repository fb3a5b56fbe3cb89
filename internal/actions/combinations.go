// Package actions holds the AS/NZS 1170.0 strength combinations and the
// timber load duration each one implies.
package actions

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/as1720"
)

// Combination represents an AS/NZS 1170.0 strength load combination
// Based on AS/NZS 1170.0 Cl 4.2.2
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // G - Permanent action
	Live       float64 // Q - Imposed action
	Wind       float64 // Wu - Ultimate wind action
	Earthquake float64 // Eu - Ultimate earthquake action

	// Duration is the load duration used for k1 when this
	// combination governs a timber member, AS1720.1 Table G1
	Duration as1720.Duration
}

// Combination factors ψc and ψl for floors in general, AS/NZS 1170.0 Table 4.1
const (
	PsiC = 0.4
	PsiL = 0.4
)

// StrengthCombinations are the AS/NZS 1170.0 Cl 4.2.2 combinations
var StrengthCombinations = []Combination{
	{
		ID:          "a",
		Description: "1.35G",
		Dead:        1.35,
		Duration:    as1720.Permanent,
	},
	{
		ID:          "b",
		Description: "1.2G + 1.5Q",
		Dead:        1.2,
		Live:        1.5,
		Duration:    as1720.FiveMonths,
	},
	{
		ID:          "c",
		Description: "1.2G + 1.5ψlQ",
		Dead:        1.2,
		Live:        1.5 * PsiL,
		Duration:    as1720.Permanent,
	},
	{
		ID:          "d",
		Description: "1.2G + Wu + ψcQ",
		Dead:        1.2,
		Live:        PsiC,
		Wind:        1.0,
		Duration:    as1720.FiveSeconds,
	},
	{
		ID:          "e",
		Description: "0.9G + Wu",
		Dead:        0.9,
		Wind:        1.0,
		Duration:    as1720.FiveSeconds,
	},
	{
		ID:          "f",
		Description: "G + Eu + ψcQ",
		Dead:        1.0,
		Live:        PsiC,
		Earthquake:  1.0,
		Duration:    as1720.FiveSeconds,
	},
}

// GravityCombinations for members carrying permanent and imposed actions only
var GravityCombinations = StrengthCombinations[:3]

// Loads holds unfactored action effects of one kind (kN or kNm)
type Loads struct {
	Dead       float64
	Live       float64
	Wind       float64
	Earthquake float64
}

// IsZero reports whether no action is given
func (l Loads) IsZero() bool {
	return l == Loads{}
}

// Factored calculates the design action effect for the combination
func (c Combination) Factored(l Loads) float64 {
	return c.Dead*l.Dead +
		c.Live*l.Live +
		c.Wind*l.Wind +
		c.Earthquake*l.Earthquake
}

// Governing finds the factored action of largest magnitude. The sign is
// kept so that wind uplift reversing a gravity action is visible.
func Governing(l Loads, combos []Combination) (float64, Combination) {
	var worst float64
	var governing Combination

	for i, c := range combos {
		s := c.Factored(l)
		if i == 0 || math.Abs(s) > math.Abs(worst) {
			worst = s
			governing = c
		}
	}
	return worst, governing
}

// Check is one combination's design action against the capacity at the
// combination's load duration
type Check struct {
	Combination
	Action   float64
	Capacity float64
	Ratio    float64 // |Action| / Capacity
}

// Evaluate checks every combination. capacity returns the design
// capacity for a load duration; for steel it ignores its argument.
func Evaluate(l Loads, combos []Combination, capacity func(as1720.Duration) (float64, error)) ([]Check, error) {
	out := make([]Check, 0, len(combos))
	for _, c := range combos {
		phiR, err := capacity(c.Duration)
		if err != nil {
			return nil, fmt.Errorf("combination %s: %w", c.ID, err)
		}
		chk := Check{Combination: c, Action: c.Factored(l), Capacity: phiR}
		switch {
		case phiR > 0:
			chk.Ratio = math.Abs(chk.Action) / phiR
		case chk.Action != 0:
			chk.Ratio = math.Inf(1)
		}
		out = append(out, chk)
	}
	return out, nil
}

// GoverningCheck returns the check with the highest ratio
func GoverningCheck(checks []Check) Check {
	var g Check
	for i, c := range checks {
		if i == 0 || c.Ratio > g.Ratio {
			g = c
		}
	}
	return g
}
