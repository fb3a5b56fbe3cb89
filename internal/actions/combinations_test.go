package actions

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/as1720"
)

func TestFactored(t *testing.T) {
	l := Loads{Dead: 10, Live: 20, Wind: 30, Earthquake: 40}
	tests := []struct {
		id   string
		want float64
	}{
		{"a", 13.5},
		{"b", 42},
		{"c", 24},
		{"d", 50},
		{"e", 39},
		{"f", 58},
	}
	for i, tt := range tests {
		c := StrengthCombinations[i]
		t.Run(c.Description, func(t *testing.T) {
			assert.Equal(t, tt.id, c.ID)
			assert.InDelta(t, tt.want, c.Factored(l), 1e-9)
		})
	}
}

func TestGoverning(t *testing.T) {
	m, c := Governing(Loads{Dead: 50, Live: 30}, StrengthCombinations)
	assert.InDelta(t, 105, m, 1e-9)
	assert.Equal(t, "b", c.ID)

	// Permanent action only
	m, c = Governing(Loads{Dead: 50}, GravityCombinations)
	assert.InDelta(t, 67.5, m, 1e-9)
	assert.Equal(t, "a", c.ID)

	// Uplift governs with its sign
	m, c = Governing(Loads{Dead: 10, Wind: -60}, StrengthCombinations)
	assert.InDelta(t, -51, m, 1e-9)
	assert.Equal(t, "e", c.ID)

	assert.True(t, Loads{}.IsZero())
	assert.False(t, Loads{Wind: 1}.IsZero())
}

func TestEvaluate(t *testing.T) {
	capacity := func(d as1720.Duration) (float64, error) {
		return 100 * as1720.DurationFactor(d), nil
	}
	checks, err := Evaluate(Loads{Dead: 30, Live: 10}, GravityCombinations, capacity)
	require.NoError(t, err)
	require.Len(t, checks, 3)

	// 1.2G + 1.5ψlQ = 42 at k1 = 0.57 governs over 1.2G + 1.5Q = 51 at k1 = 0.8
	g := GoverningCheck(checks)
	assert.Equal(t, "c", g.ID)
	assert.InDelta(t, 42.0/57, g.Ratio, 1e-9)
	assert.InDelta(t, 40.5/57, checks[0].Ratio, 1e-9)
	assert.InDelta(t, 51.0/80, checks[1].Ratio, 1e-9)

	_, err = Evaluate(Loads{Dead: 1}, GravityCombinations, func(as1720.Duration) (float64, error) {
		return 0, errors.New("no capacity")
	})
	assert.Error(t, err)

	zero, err := Evaluate(Loads{Dead: 1}, GravityCombinations[:1], func(as1720.Duration) (float64, error) { return 0, nil })
	require.NoError(t, err)
	assert.True(t, math.IsInf(zero[0].Ratio, 1))
}
