package member

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/material"
)

func steelMember(t *testing.T, cat library.Category, name string, in SteelInputs) *SteelMember {
	t.Helper()
	store, err := library.Embedded()
	require.NoError(t, err)
	p, err := store.Lookup(cat, name)
	require.NoError(t, err)
	sec, err := geometry.FromParams(p)
	require.NoError(t, err)
	st, err := material.SteelFromParams(p, sec)
	require.NoError(t, err)
	m, err := NewSteelMember(sec, st, in)
	require.NoError(t, err)
	return m
}

func TestSquareHollowColumn(t *testing.T) {
	in := DefaultSteelInputs()
	in.Lx, in.Ly = 3800, 3800
	m := steelMember(t, library.HollowSections, "200x5SHS", in)

	c, err := m.Resolve()
	require.NoError(t, err)
	assert.InEpsilon(t, 1340, c.Ns, 0.01)
	assert.InEpsilon(t, 0.876, c.X.AlphaC, 0.015)
	assert.InEpsilon(t, 1050, c.PhiNc, 0.015)
	assert.InDelta(t, c.X.AlphaC, c.Y.AlphaC, 1e-9)
	assert.Equal(t, "200x5SHS (C450)", c.Name)
}

func TestGoverningCompressionIsAxisMinimum(t *testing.T) {
	in := DefaultSteelInputs()
	in.Lx, in.Ly = 6000, 3000
	m := steelMember(t, library.OpenSections, "310UC96.8", in)

	c, err := m.Resolve()
	require.NoError(t, err)
	want := c.Inputs.Phi * min(c.Ns, c.Ncx, c.Ncy)
	assert.InDelta(t, want, c.PhiNc, 1e-9)
	assert.LessOrEqual(t, c.Ncx, c.Ns)
	assert.LessOrEqual(t, c.Ncy, c.Ns)
}

func TestZeroLengthTakesSectionCapacity(t *testing.T) {
	m := steelMember(t, library.OpenSections, "250UC89.5", DefaultSteelInputs())
	c, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, c.Ns, c.Ncx)
	assert.Equal(t, c.Ns, c.Ncy)
	assert.InDelta(t, c.PhiNs, c.PhiNc, 1e-9)
}

func TestUniversalColumnTension(t *testing.T) {
	m := steelMember(t, library.OpenSections, "250UC89.5", DefaultSteelInputs())
	c, err := m.Resolve()
	require.NoError(t, err)
	assert.InEpsilon(t, 2870, c.PhiNt, 0.01)

	// Net area governs once enough holes are taken out
	net, err := m.Section().WithHoleDeduction(8, 24, 17.3)
	require.NoError(t, err)
	require.NoError(t, m.SetSection(net))
	m.Update(func(in *SteelInputs) { in.Kt = 0.85 })
	c2, err := m.Resolve()
	require.NoError(t, err)
	assert.InDelta(t, 0.9*0.85*0.85*net.An*440/1000, c2.PhiNt, 1e-6)
	assert.Less(t, c2.PhiNt, c.PhiNt)
}

func TestUniversalBeamBending(t *testing.T) {
	in := DefaultSteelInputs()
	m := steelMember(t, library.OpenSections, "460UB74.6", in)

	c, err := m.Resolve()
	require.NoError(t, err)
	sec := m.Section()
	assert.InEpsilon(t, 0.9*sec.Sx*300/1e6, c.PhiMsx, 1e-9)
	assert.Equal(t, c.PhiMsx, c.PhiMbx)
	assert.InEpsilon(t, 719, c.PhiVv, 0.01)

	m.Update(func(in *SteelInputs) { in.Segment = 4000 })
	c, err = m.Resolve()
	require.NoError(t, err)
	assert.InEpsilon(t, 541, c.Mo, 0.01)
	assert.InEpsilon(t, 280, c.PhiMbx, 0.02)
	assert.Equal(t, 4000.0, c.Le)

	m.Update(func(in *SteelInputs) { in.AlphaM = 10 })
	c, err = m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, c.PhiMsx, c.PhiMbx)
}

func TestPartialRestraintLengthensSegment(t *testing.T) {
	in := DefaultSteelInputs()
	in.Segment = 4000
	in.RestraintA = as4100.Partial
	m := steelMember(t, library.OpenSections, "460UB74.6", in)

	c, err := m.Resolve()
	require.NoError(t, err)
	assert.Greater(t, c.Kt, 1.0)
	assert.InDelta(t, c.Kt*4000, c.Le, 1e-9)
}

func TestRestraintErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b as4100.Restraint
		err  error
	}{
		{"cantilever", as4100.Full, as4100.Unrestrained, ErrUnsupportedRestraint},
		{"free", as4100.Unrestrained, as4100.Unrestrained, ErrUnrestrained},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultSteelInputs()
			in.Segment = 3000
			in.RestraintA, in.RestraintB = tt.a, tt.b
			m := steelMember(t, library.OpenSections, "310UB40.4", in)
			_, err := m.Resolve()
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, m.Capacities())
			assert.True(t, m.Stale())
		})
	}
}

func TestStaleSnapshot(t *testing.T) {
	m := steelMember(t, library.HollowSections, "200x5SHS", DefaultSteelInputs())
	assert.True(t, m.Stale())
	assert.Nil(t, m.Capacities())

	c, err := m.Resolve()
	require.NoError(t, err)
	assert.False(t, m.Stale())
	assert.Same(t, c, m.Capacities())

	m.SetLength(AxisX, 5000)
	assert.True(t, m.Stale())
	assert.Same(t, c, m.Capacities())
	assert.Equal(t, 0.0, m.Capacities().Inputs.Lx)
}

func TestSingleAxisMutation(t *testing.T) {
	in := DefaultSteelInputs()
	in.Lx, in.Ly = 4000, 4000
	m := steelMember(t, library.OpenSections, "310UC96.8", in)

	before, err := m.Resolve()
	require.NoError(t, err)
	m.SetEffectiveLengthFactor(AxisY, 0.7)
	after, err := m.Resolve()
	require.NoError(t, err)

	yDependent := cmpopts.IgnoreFields(SteelCapacities{}, "Inputs", "LeY", "Y", "Ncy", "PhiNc")
	assert.Empty(t, cmp.Diff(before, after, yDependent))
	assert.NotEmpty(t, cmp.Diff(before.Y, after.Y))
	assert.InDelta(t, 2800.0, after.LeY, 1e-9)
	assert.Greater(t, after.Ncy, before.Ncy)
}

func TestCombinedActions(t *testing.T) {
	in := DefaultSteelInputs()
	in.Lx, in.Ly = 4000, 4000
	m := steelMember(t, library.OpenSections, "310UC96.8", in)
	c, err := m.Resolve()
	require.NoError(t, err)

	none := c.Combined(0)
	assert.Equal(t, c.PhiMsx, none.PhiMrx)
	assert.Equal(t, c.PhiMsx, none.PhiMix)

	comp := c.Combined(-0.5 * c.PhiNs)
	assert.Less(t, comp.PhiMrx, c.PhiMsx)
	assert.Less(t, comp.PhiMix, comp.PhiMrx)
	assert.LessOrEqual(t, comp.PhiMcx, comp.PhiMix)

	tens := c.Combined(0.5 * c.PhiNt)
	assert.Equal(t, tens.PhiMrx, tens.PhiMix)
	assert.LessOrEqual(t, tens.PhiMox, tens.PhiMrx)

	crushed := c.Combined(-2 * c.PhiNs)
	assert.Equal(t, 0.0, crushed.PhiMrx)
	assert.Equal(t, 0.0, crushed.PhiMcx)
}

func TestCircularHollowShear(t *testing.T) {
	m := steelMember(t, library.HollowSections, "168.3x7.1CHS", DefaultSteelInputs())
	c, err := m.Resolve()
	require.NoError(t, err)
	sec := m.Section()
	assert.InEpsilon(t, 0.36*350*sec.Ag/1000, c.Vw, 1e-9)
	assert.Equal(t, c.Vw, c.Vv)

	// Bolt holes reduce the section capacity but not the wall shear area
	holed, err := sec.WithHoleDeduction(2, 22, sec.T)
	require.NoError(t, err)
	require.NoError(t, m.SetSection(holed))
	h, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, c.Vw, h.Vw)
	assert.Less(t, h.Ns, c.Ns)
}

func TestInvalidCapacityFactor(t *testing.T) {
	in := DefaultSteelInputs()
	in.Phi = 0
	m := steelMember(t, library.HollowSections, "200x5SHS", in)
	_, err := m.Resolve()
	assert.Error(t, err)
}

func TestInvalidSteelInputs(t *testing.T) {
	tests := []struct {
		name string
		set  func(*SteelInputs)
	}{
		{"negative length", func(in *SteelInputs) { in.Lx = -4000 }},
		{"NaN length", func(in *SteelInputs) { in.Ly = math.NaN() }},
		{"negative factor", func(in *SteelInputs) { in.Key = -1 }},
		{"infinite segment", func(in *SteelInputs) { in.Segment = math.Inf(1) }},
		{"NaN moment modification", func(in *SteelInputs) { in.AlphaM = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultSteelInputs()
			in.Lx, in.Ly = 3000, 3000
			tt.set(&in)
			m := steelMember(t, library.OpenSections, "310UC96.8", in)
			_, err := m.Resolve()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			var ce *geometry.ConfigError
			assert.True(t, errors.As(err, &ce))
			assert.Nil(t, m.Capacities())
		})
	}
}

func timberMember(t *testing.T, in TimberInputs) *TimberMember {
	t.Helper()
	store, err := library.Embedded()
	require.NoError(t, err)
	p, err := store.Lookup(library.TimberSections, "90x45 (MGP10)")
	require.NoError(t, err)
	sec, err := geometry.FromParams(p)
	require.NoError(t, err)
	mat, err := material.TimberForSection(store, p)
	require.NoError(t, err)
	m, err := NewTimberMember(sec, mat, in)
	require.NoError(t, err)
	return m
}

func TestTimberCapacities(t *testing.T) {
	in := DefaultTimberInputs()
	in.Continuous = true
	m := timberMember(t, in)

	c, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 0.95, c.Phi)
	assert.Equal(t, 0.57, c.K1)
	assert.Equal(t, 1.0, c.K12Bending)
	assert.InEpsilon(t, 0.5592, c.PhiM, 1e-3)
	assert.InEpsilon(t, 3.801, c.PhiV, 1e-3)
	assert.InEpsilon(t, 39.47, c.PhiNc, 1e-3)
	assert.InEpsilon(t, 16.89, c.PhiNt, 1e-3)
	assert.Equal(t, 0.0, c.PhiNp)
}

func TestTimberSlenderColumn(t *testing.T) {
	in := DefaultTimberInputs()
	in.Lx, in.Ly = 2400, 2400
	m := timberMember(t, in)

	c, err := m.Resolve()
	require.NoError(t, err)
	assert.InDelta(t, 2400.0/45, c.S4, 1e-9)
	assert.Less(t, c.K12y, c.K12x)
	assert.Equal(t, c.PhiNcy, c.PhiNc)
	assert.InDelta(t, 0.0767, c.K12y, 0.001)
}

func TestTimberDurationAndBearing(t *testing.T) {
	m := timberMember(t, DefaultTimberInputs())
	perm, err := m.Resolve()
	require.NoError(t, err)

	m.Update(func(in *TimberInputs) {
		in.Duration = as1720.FiveSeconds
		in.BearingLength = 50
	})
	assert.True(t, m.Stale())
	short, err := m.Resolve()
	require.NoError(t, err)
	assert.InEpsilon(t, perm.PhiM/0.57, short.PhiM, 1e-9)
	assert.InDelta(t, 1.3, short.K7, 1e-12)
	assert.InEpsilon(t, 0.95*1.3*10*45*50/1000, short.PhiNp, 1e-9)
}

func TestTimberRejectsSteelShapes(t *testing.T) {
	sec, err := geometry.New(geometry.Dimensions{Name: "100x5SHS", Type: "SHS", D: 100, T: 5})
	require.NoError(t, err)
	mat, err := material.NewTimber("MGP10", true)
	require.NoError(t, err)
	_, err = NewTimberMember(sec, mat, DefaultTimberInputs())
	assert.ErrorIs(t, err, geometry.ErrUnsupportedShape)
}

func TestInvalidTimberInputs(t *testing.T) {
	in := DefaultTimberInputs()
	in.Lay = math.NaN()
	m := timberMember(t, in)
	_, err := m.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)

	m.Update(func(in *TimberInputs) {
		in.Lay = 0
		in.BearingLength = -50
	})
	_, err = m.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
