package as4100

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateColumnCurveZeroLength(t *testing.T) {
	c := EvaluateColumnCurve(0, 50, 1, 300, 0.5)
	assert.Equal(t, 1.0, c.AlphaC)
}

func TestEvaluateColumnCurveMonotonic(t *testing.T) {
	prev := 1.0
	for _, le := range []float64{500, 1000, 2000, 4000, 8000} {
		c := EvaluateColumnCurve(le, 60, 1, 300, 0)
		assert.LessOrEqual(t, c.AlphaC, prev, "le=%g", le)
		assert.Greater(t, c.AlphaC, 0.0)
		prev = c.AlphaC
	}
}

func TestEvaluateColumnCurveTable(t *testing.T) {
	// Table 6.3.3(3): λ = 100 gives αc ≈ 0.541 for αb = 0
	lamN := 100.0
	le := lamN * 50
	c := EvaluateColumnCurve(le, 50, 1, 250, 0)
	assert.InDelta(t, 100, c.Lambda, 1e-9)
	assert.InDelta(t, 0.541, c.AlphaC, 0.002)
}

func TestSlendernessReduction(t *testing.T) {
	assert.Equal(t, 1.0, SlendernessReduction(100, math.Inf(1)))
	a := SlendernessReduction(100, 100)
	assert.InDelta(t, 0.6*(2-1), a, 1e-12)
}

func TestReferenceBucklingMoment(t *testing.T) {
	assert.True(t, math.IsInf(ReferenceBucklingMoment(0, 1e6, 1e5, 0), 1))
	short := ReferenceBucklingMoment(2000, 1e7, 2e5, 1e11)
	long := ReferenceBucklingMoment(8000, 1e7, 2e5, 1e11)
	assert.Greater(t, short, long)
}

func TestTwistRestraintFactor(t *testing.T) {
	assert.Equal(t, 1.0, TwistRestraintFactor(Full, Full, 400, 12, 8, 4000, 1))
	one := TwistRestraintFactor(Full, Partial, 400, 12, 8, 4000, 1)
	two := TwistRestraintFactor(Partial, Partial, 400, 12, 8, 4000, 1)
	assert.InDelta(t, 1+0.1*math.Pow(0.75, 3), one, 1e-12)
	assert.InDelta(t, 2*(one-1), two-1, 1e-12)

	r, ok := ParseRestraint("p")
	assert.True(t, ok)
	assert.Equal(t, Partial, r)
	_, ok = ParseRestraint("X")
	assert.False(t, ok)
}
