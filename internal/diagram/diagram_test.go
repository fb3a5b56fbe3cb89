package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/member"
)

func shsMember(t *testing.T) *member.SteelMember {
	t.Helper()
	store, err := library.Embedded()
	require.NoError(t, err)
	p, err := store.Lookup(library.HollowSections, "200x5SHS")
	require.NoError(t, err)
	sec, err := geometry.FromParams(p)
	require.NoError(t, err)
	st, err := material.SteelFromParams(p, sec)
	require.NoError(t, err)
	m, err := member.NewSteelMember(sec, st, member.DefaultSteelInputs())
	require.NoError(t, err)
	return m
}

func TestColumnCurve(t *testing.T) {
	m := shsMember(t)
	data, err := ColumnCurve(m, 10000, 21)
	require.NoError(t, err)

	require.Len(t, data.Lengths, 21)
	assert.Equal(t, 0.0, data.Lengths[0])
	assert.Equal(t, 10000.0, data.Lengths[20])
	assert.InDelta(t, data.PhiNs, data.PhiNcx[0], 1e-9)
	for i := 1; i < len(data.Lengths); i++ {
		assert.LessOrEqual(t, data.PhiNcx[i], data.PhiNcx[i-1])
	}
	gov := data.Governing()
	assert.Equal(t, min(data.PhiNcx[10], data.PhiNcy[10]), gov[10])

	// The source member keeps its inputs and is not resolved
	assert.Equal(t, 0.0, m.Inputs().Lx)
	assert.Nil(t, m.Capacities())

	_, err = ColumnCurve(m, 10000, 1)
	assert.Error(t, err)
	_, err = ColumnCurve(m, 0, 10)
	assert.Error(t, err)
}

func TestASCIIColumnCurve(t *testing.T) {
	data, err := ColumnCurve(shsMember(t), 8000, 30)
	require.NoError(t, err)
	out := ASCIIColumnCurve(data, 10)
	assert.Contains(t, out, "COLUMN CURVE")
	assert.Contains(t, out, "200x5SHS (C450)")
}

func TestDrawASCIISection(t *testing.T) {
	sec, err := geometry.New(geometry.Dimensions{Name: "200x10SHS", Type: "SHS", D: 200, T: 10})
	require.NoError(t, err)
	out := DrawASCIISection(sec, 10)

	lines := strings.Split(out, "\n")
	var body []string
	for _, l := range lines {
		if strings.Contains(l, "█") {
			body = append(body, l)
		}
	}
	require.Len(t, body, 10)
	mid := []rune(body[5])
	assert.Equal(t, ' ', mid[len(mid)/2], "hollow centre")
	assert.Equal(t, '█', mid[2], "left wall")
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()
	m := shsMember(t)
	data, err := ColumnCurve(m, 6000, 10)
	require.NoError(t, err)

	curve := filepath.Join(dir, "curve.png")
	require.NoError(t, ExportColumnCurve(data, curve))
	assert.FileExists(t, curve)

	outline := filepath.Join(dir, "nested", "section.svg")
	require.NoError(t, ExportSectionOutline(m.Section(), outline))
	info, err := os.Stat(outline)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, ExportSectionOutline(m.Section(), filepath.Join(dir, "section.bmp")))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"φN_c = 1050 kN"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)))
	}
}
