package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
)

func lookup(t *testing.T, store library.Provider, cat library.Category, name string) (library.Params, *geometry.Section) {
	t.Helper()
	p, err := store.Lookup(cat, name)
	require.NoError(t, err)
	sec, err := geometry.FromParams(p)
	require.NoError(t, err)
	return p, sec
}

func TestSteelFromParams(t *testing.T) {
	store, err := library.Embedded()
	require.NoError(t, err)

	tests := []struct {
		cat      library.Category
		name     string
		fy, fyw  float64
		fu       float64
		residual as4100.ResidualStress
	}{
		{library.HollowSections, "200x5SHS", 450, 450, 500, as4100.ColdFormed},
		{library.OpenSections, "250UC89.5", 280, 320, 440, as4100.HotRolled},
		{library.OpenSections, "460UB74.6", 300, 320, 440, as4100.HotRolled},
		{library.OpenSections, "1200WB423", 280, 300, 430, as4100.HeavilyWelded},
		{library.HollowSections, "60.3x4.5CHS", 250, 250, 320, as4100.ColdFormed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, sec := lookup(t, store, tt.cat, tt.name)
			st, err := SteelFromParams(p, sec)
			require.NoError(t, err)
			assert.Equal(t, tt.fy, st.Fy)
			assert.Equal(t, tt.fyw, st.Fyw)
			assert.Equal(t, tt.fu, st.Fu)
			assert.Equal(t, tt.residual, st.ResidualStress)
			assert.Equal(t, 200000.0, st.E)
		})
	}
}

func TestSteelErrors(t *testing.T) {
	_, err := NewSteel("GR999", as4100.HotRolledSection, 10, 10)
	assert.ErrorIs(t, err, as4100.ErrUnknownGrade)

	_, err = NewSteel("WR350", as4100.HotRolledPlate, 60, 10)
	assert.ErrorIs(t, err, as4100.ErrThicknessOutOfRange)

	sec, err := geometry.New(geometry.Dimensions{Section: "PL", Type: "RectPlate", D: 200, B: 12})
	require.NoError(t, err)
	_, err = SteelFromParams(library.Params{"name": "PL"}, sec)
	assert.ErrorIs(t, err, as4100.ErrUnknownGrade)

	st, err := SteelFromParams(library.Params{"grade": "GR250"}, sec)
	require.NoError(t, err)
	assert.Equal(t, as4100.HotRolledPlate, st.Type)
	assert.Equal(t, 260.0, st.Fy)
}

func TestTimberFromLibrary(t *testing.T) {
	store, err := library.Embedded()
	require.NoError(t, err)

	p, err := store.Lookup(library.TimberSections, "90x45 (MGP12)")
	require.NoError(t, err)
	tm, err := TimberForSection(store, p)
	require.NoError(t, err)
	assert.Equal(t, "MGP12", tm.Grade)
	assert.Equal(t, as1720.MGP, tm.Type)
	assert.True(t, tm.Seasoned)
	assert.Equal(t, 28.0, tm.Fb)
	assert.Equal(t, 1.0, tm.K4)

	hw, err := store.Lookup(library.TimberSections, "150x50")
	require.NoError(t, err)
	f17, err := TimberForSection(store, hw)
	require.NoError(t, err)
	assert.False(t, f17.Seasoned)
	assert.Equal(t, as1720.FGrade, f17.Type)
}

func TestTimberGradeRowsMatchTable(t *testing.T) {
	store, err := library.Embedded()
	require.NoError(t, err)

	names, err := store.Names(library.TimberGrades)
	require.NoError(t, err)
	assert.ElementsMatch(t, as1720.GradeNames(), names)

	for _, n := range as1720.GradeNames() {
		t.Run(n, func(t *testing.T) {
			want, err := NewTimber(n, true)
			require.NoError(t, err)
			p, err := store.Lookup(library.TimberGrades, n)
			require.NoError(t, err)
			got, err := TimberFromParams(p, true)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	f5, err := NewTimber("F5", true)
	require.NoError(t, err)
	f27, err := NewTimber("F27", true)
	require.NoError(t, err)
	assert.Less(t, f5.Density, f27.Density)
}

func TestMoistureAdjusted(t *testing.T) {
	tm, err := NewTimber("MGP10", true)
	require.NoError(t, err)

	dry := tm.MoistureAdjusted(12, 45)
	assert.Equal(t, tm.Fb, dry.Fb)

	wet := tm.MoistureAdjusted(20, 45)
	assert.InDelta(t, 0.85, wet.K4, 1e-12)
	assert.InDelta(t, 17*0.85, wet.Fb, 1e-12)
	assert.Equal(t, 17.0, tm.Fb, "source unchanged")

	again := wet.MoistureAdjusted(20, 45)
	assert.InDelta(t, 0.85, again.K4, 1e-12)
	assert.InDelta(t, 17*0.85, again.Fb, 1e-12)
	assert.InDelta(t, wet.Fc, again.Fc, 1e-12)

	back := wet.MoistureAdjusted(12, 45)
	assert.InDelta(t, 1, back.K4, 1e-12)
	assert.InDelta(t, 17, back.Fb, 1e-12)

	green, err := NewTimber("F17", false)
	require.NoError(t, err)
	adj := green.MoistureAdjusted(0, 50)
	assert.InDelta(t, 1.10, adj.K4, 1e-12)
	assert.InDelta(t, 42*1.10, adj.Fb, 1e-9)
}

func TestTimberFromParamsErrors(t *testing.T) {
	_, err := TimberFromParams(library.Params{"grade": "X", "mat_type": "LVL", "f_b": 10, "e": 1000}, true)
	assert.Error(t, err)
	_, err = TimberFromParams(library.Params{"grade": "X", "mat_type": "MGP"}, true)
	assert.Error(t, err)

	tm, err := TimberFromParams(library.Params{"grade": "X", "mat_type": "MGP", "f_b": 10, "e": 1500}, true)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tm.G)
}
