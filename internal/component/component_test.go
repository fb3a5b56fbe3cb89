package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/as4100"
)

func TestBolt(t *testing.T) {
	tests := []struct {
		d        float64
		cat      string
		included bool
		hole     float64
		phiVf    float64
		phiNtf   float64
	}{
		{20, "8.8/S", true, 22, 92.6, 163},
		{20, "8.8/S", false, 22, 129, 163},
		{24, "8.8/TB", true, 26, 133, 234},
		{16, "4.6/S", true, 18, 28.6, 50.1},
		{30, "8.8/S", true, 33, 213, 372},
	}
	for _, tt := range tests {
		b, err := NewBolt(tt.d, tt.cat, tt.included)
		require.NoError(t, err)
		t.Run(b.Name, func(t *testing.T) {
			assert.Equal(t, tt.hole, b.Hole)
			assert.InEpsilon(t, tt.phiVf, b.PhiVf, 0.01)
			assert.InEpsilon(t, tt.phiNtf, b.PhiNtf, 0.01)
			assert.Equal(t, 1.5*tt.d, b.EdgeMin)
		})
	}
}

func TestBoltErrors(t *testing.T) {
	_, err := NewBolt(22, "8.8/S", true)
	assert.ErrorIs(t, err, ErrUnknownBolt)
	_, err = NewBolt(20, "10.9/S", true)
	assert.ErrorIs(t, err, ErrUnknownBolt)
}

func TestBoltGroup(t *testing.T) {
	b, err := NewBolt(20, "8.8/S", true)
	require.NoError(t, err)
	g, err := NewBoltGroup(b, 3, 2, 70, 70)
	require.NoError(t, err)

	assert.Equal(t, 6, g.N)
	assert.InDelta(t, 6*b.PhiVf, g.PhiVdf, 1e-9)
	assert.Equal(t, 1.0, g.EccentricityFactor(0))
	assert.InDelta(t, 6.0/12*(4900*8+4900*3), g.PolarMoment(), 1e-9)
	assert.Less(t, g.PhiVdfEccentric(100), g.PhiVdf)

	// Single row of two bolts: Z_b = 1/(1 + 2e/s_g)
	row, err := NewBoltGroup(b, 1, 2, 0, 70)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+2*35.0/70), row.EccentricityFactor(35), 1e-12)
	assert.InDelta(t, 70/(70+2*35.0), row.VerticalTearOutFactor(35), 1e-12)
	assert.Equal(t, 0.0, row.HorizontalTearOutFactor(35))

	lv, lt := g.BlockShearPaths(35, 35)
	assert.Equal(t, 35.0+140, lv)
	assert.Equal(t, 35.0+70-1.5*22, lt)

	_, err = NewBoltGroup(b, 3, 2, 40, 70)
	assert.Error(t, err)
}

func TestWeld(t *testing.T) {
	w, err := NewWeld(6, "SP", "E48XX")
	require.NoError(t, err)
	assert.InDelta(t, 4.243, w.Throat, 0.001)
	assert.InEpsilon(t, 0.978, w.PhiVw, 0.001)
	assert.InDelta(t, w.PhiVw*400, w.PlateCapacity(200), 1e-9)
	assert.Less(t, w.EccentricPlateCapacity(200, 50), w.PlateCapacity(200))

	gp, err := NewWeld(6, "gp", "e41xx")
	require.NoError(t, err)
	assert.Equal(t, 0.6, gp.Phi)

	_, err = NewWeld(6, "XX", "E48XX")
	assert.ErrorIs(t, err, ErrUnknownWeld)
	_, err = NewWeld(6, "SP", "E70XX")
	assert.ErrorIs(t, err, ErrUnknownWeld)
}

func TestPlate(t *testing.T) {
	p, err := NewPlate(200, 10, "GR250")
	require.NoError(t, err)
	assert.Equal(t, 260.0, p.Fy)
	assert.Equal(t, 410.0, p.Fu)
	assert.InDelta(t, 234, p.Shear(200), 1e-9)
	assert.InDelta(t, 0.9*260*10*200*200/4/1e6, p.Moment(200), 1e-12)
	assert.InDelta(t, 2*0.9*3.2*20*10*410/1e3, p.PlyBearing(2, 20), 1e-9)
	assert.InDelta(t, 0.75*(50*10*410+0.6*100*10*260)/1e3, p.BlockShear(50, 100), 1e-9)

	_, err = NewPlate(200, 10, "GR999")
	assert.ErrorIs(t, err, as4100.ErrUnknownGrade)
}

func TestCheckPly(t *testing.T) {
	b, err := NewBolt(20, "8.8/S", true)
	require.NoError(t, err)
	g, err := NewBoltGroup(b, 3, 2, 70, 70)
	require.NoError(t, err)
	p, err := NewPlate(200, 10, "GR250")
	require.NoError(t, err)

	c, err := g.CheckPly(p, 35, 35, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Zb)
	assert.Equal(t, 0.0, c.PhiVph)
	assert.InDelta(t, 6*0.9*3.2*20*10*410/1e3, c.PhiVb, 1e-9)
	assert.InDelta(t, 6*0.9*34*10*410/1e3, c.PhiVpv, 1e-9)
	assert.InDelta(t, 426.15, c.PhiRbs, 1e-9)
	assert.Equal(t, c.PhiRbs, c.PhiV)

	ecc, err := g.CheckPly(p, 35, 35, 100)
	require.NoError(t, err)
	assert.Less(t, ecc.PhiVdf, c.PhiVdf)
	assert.Greater(t, ecc.PhiVph, 0.0)
	assert.LessOrEqual(t, ecc.PhiV, c.PhiV)

	_, err = g.CheckPly(p, 25, 35, 0)
	assert.Error(t, err)
}
