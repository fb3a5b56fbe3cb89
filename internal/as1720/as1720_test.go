package as1720

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGrade(t *testing.T) {
	g, err := LookupGrade(" mgp10 ")
	require.NoError(t, err)
	assert.Equal(t, MGP, g.Type)
	assert.Equal(t, 17.0, g.Fb)
	assert.InDelta(t, 10000.0/15, g.G, 1e-9)

	_, err = LookupGrade("MGP99")
	assert.ErrorIs(t, err, ErrUnknownGrade)

	assert.Contains(t, GradeNames(), "F17")
}

func TestCapacityFactor(t *testing.T) {
	phi, err := CapacityFactor(MGP, Category1)
	require.NoError(t, err)
	assert.Equal(t, 0.95, phi)

	phi, err = CapacityFactor(FGrade, Category3)
	require.NoError(t, err)
	assert.Equal(t, 0.70, phi)

	_, err = CapacityFactor(FGrade, Category(4))
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	d, err := ParseDuration("5months")
	require.NoError(t, err)
	assert.Equal(t, 0.80, DurationFactor(d))
	assert.Equal(t, 0.57, DurationFactor(Permanent))
	assert.Equal(t, "permanent", Permanent.String())

	_, err = ParseDuration("forever")
	assert.Error(t, err)
}

func TestMoistureFactors(t *testing.T) {
	assert.Equal(t, 1.0, MoistureFactor(12))
	assert.InDelta(t, 0.85, MoistureFactor(20), 1e-12)
	assert.Equal(t, 0.7, MoistureFactor(30))

	assert.Equal(t, 1.15, PartialSeasoningFactor(35))
	assert.InDelta(t, 1.075, PartialSeasoningFactor(62.5), 1e-12)
	assert.Equal(t, 1.0, PartialSeasoningFactor(150))
}

func TestSizeFactor(t *testing.T) {
	assert.Equal(t, 1.0, SizeFactor(290))
	assert.Less(t, SizeFactor(600), 1.0)
}

func TestStabilityFactor(t *testing.T) {
	assert.Equal(t, 1.0, StabilityFactor(8))
	assert.InDelta(t, 0.75, StabilityFactor(15), 1e-12)
	assert.InDelta(t, 0.5, StabilityFactor(20), 1e-12)
	assert.InDelta(t, 200.0/900, StabilityFactor(30), 1e-12)
}

func TestSlenderness(t *testing.T) {
	assert.Equal(t, 0.0, BeamSlenderness(240, 45, 1200, true))
	assert.InDelta(t, 1.25*240.0/45*1.5, BeamSlenderness(240, 45, 540, false), 1e-9)
	assert.InDelta(t, 20, ColumnSlenderness(900, 45), 1e-12)
}

func TestParseTimberType(t *testing.T) {
	for _, tt := range []TimberType{MGP, FGrade, Glulam} {
		got, err := ParseTimberType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}
	_, err := ParseTimberType("LVL")
	assert.Error(t, err)
}
