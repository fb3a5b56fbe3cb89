package as4100

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldStress(t *testing.T) {
	tests := []struct {
		name  string
		mt    MaterialType
		grade string
		t     float64
		fy    float64
		fu    float64
	}{
		{"hollow C450", HollowSection, "C450", 5, 450, 500},
		{"hollow C350 lower case", HollowSection, "c350", 3, 350, 430},
		{"section GR300 thin", HotRolledSection, "GR300", 7, 320, 440},
		{"section GR300 at 11", HotRolledSection, "GR300", 11, 300, 440},
		{"section GR300 at 17", HotRolledSection, "GR300", 17, 300, 440},
		{"section GR300 thick", HotRolledSection, "GR300", 17.3, 280, 440},
		{"section GR350 at 11", HotRolledSection, "GR350", 11, 360, 480},
		{"section GR350 at 40", HotRolledSection, "GR350", 40, 330, 480},
		{"plate GR250 at 8", HotRolledPlate, "GR250", 8, 280, 410},
		{"plate GR250 at 10", HotRolledPlate, "GR250", 10, 260, 410},
		{"plate GR450 at 25", HotRolledPlate, "GR450", 25, 420, 500},
		{"welded GR300 at 36", WeldedSection, "GR300", 36, 280, 430},
		{"pressure PR700 at 80", PressurePlate, "PR700", 80, 620, 720},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy, err := YieldStress(tt.mt, tt.grade, tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.fy, fy)

			fu, err := TensileStrength(tt.mt, tt.grade, tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.fu, fu)
		})
	}
}

func TestYieldStressErrors(t *testing.T) {
	_, err := YieldStress(HotRolledSection, "GR999", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownGrade))

	_, err = YieldStress(HotRolledPlate, "GR200", 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThicknessOutOfRange))

	var te *TableError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "AS3678", te.Table)
	assert.Equal(t, 20.0, te.Thickness)

	_, err = YieldStress(HollowSection, "C450", 0)
	assert.ErrorIs(t, err, ErrThicknessOutOfRange)
}

func TestParseMaterialType(t *testing.T) {
	mt, err := ParseMaterialType("hollowsection")
	require.NoError(t, err)
	assert.Equal(t, HollowSection, mt)

	mt, err = ParseMaterialType(" Plate ")
	require.NoError(t, err)
	assert.Equal(t, HotRolledPlate, mt)

	_, err = ParseMaterialType("cast iron")
	assert.ErrorIs(t, err, ErrUnknownMaterialType)
}

func TestResidualStressFor(t *testing.T) {
	assert.Equal(t, ColdFormed, ResidualStressFor(HollowSection))
	assert.Equal(t, HeavilyWelded, ResidualStressFor(WeldedSection))
	assert.Equal(t, HotRolled, ResidualStressFor(HotRolledSection))
	assert.Equal(t, "CF", ColdFormed.String())
}

func TestPlateLimits(t *testing.T) {
	assert.Equal(t, PlateLimits{Ep: 9, Ey: 16, Ed: 35}, PlateLimitsFor(OneEdge, UniformCompression, HotRolled))
	assert.Equal(t, PlateLimits{Ep: 8, Ey: 22}, PlateLimitsFor(OneEdge, CompressionToTension, HeavilyWelded))
	assert.Equal(t, PlateLimits{Ep: 30, Ey: 40, Ed: 90}, PlateLimitsFor(BothEdges, UniformCompression, ColdFormed))
	assert.Equal(t, PlateLimits{Ep: 82, Ey: 115}, PlateLimitsFor(BothEdges, CompressionToTension, HotRolled))
	assert.Equal(t, PlateLimits{Ep: 50, Ey: 120, CompressionYield: 82}, RingLimitsFor(ColdFormed))
	assert.Zero(t, RingLimitsFor(HeavilyWelded).Ed)
	assert.Zero(t, PlateLimitsFor(OneEdge, UniformCompression, HotRolled).CompressionYield)
}
