package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundSig(t *testing.T) {
	tests := []struct {
		in   float64
		n    int
		want float64
	}{
		{1348.21, 3, 1350},
		{0.78532, 3, 0.785},
		{-0.0012345, 2, -0.0012},
		{0, 3, 0},
		{23884992.5, 3, 23900000},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundSig(tt.in, tt.n), math.Abs(tt.want)*1e-12, "RoundSig(%g, %d)", tt.in, tt.n)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1350", FormatValue(Num("N_s", 1348.2, "kN", "", ""), 3))
	assert.Equal(t, "1348.2", FormatValue(Num("N_s", 1348.2, "kN", "", ""), 0))
	assert.Equal(t, "C450", FormatValue(Str("grade", "C450", ""), 3))
	assert.Equal(t, "∞", FormatValue(Num("M_o", math.Inf(1), "kNm", "", ""), 3))
	assert.Equal(t, "-", FormatValue(Num("x", math.NaN(), "", "", ""), 3))
}

func TestFilter(t *testing.T) {
	attrs := []Attribute{
		Num("A_g", 3810, "mm²", "gross area", ""),
		Num("I_x", 23.9e6, "mm⁴", "second moment of area", ""),
		Num("k_f", 0.785, "", "form factor", "6.2.2"),
	}
	got := Filter(attrs, []string{"k_f", "A_g", "missing"})
	require.Len(t, got, 2)
	assert.Equal(t, "k_f", got[0].Symbol)
	assert.Equal(t, "A_g", got[1].Symbol)
	assert.Len(t, Filter(attrs, nil), 3)

	a, ok := Find(attrs, "I_x")
	assert.True(t, ok)
	assert.Equal(t, 23.9e6, a.Value)
}

func TestWrite(t *testing.T) {
	attrs := []Attribute{
		Num("N_s", 1348.21, "kN", "nominal section capacity", "6.2.1"),
		Num("k_f", 0.78532, "", "form factor", "6.2.2"),
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "compression", attrs, Options{WithNomenclature: true, WithClause: true, SigFigs: 3}))
	out := buf.String()
	assert.Contains(t, out, "COMPRESSION:")
	assert.Contains(t, out, "1350")
	assert.Contains(t, out, "0.785")
	assert.Contains(t, out, "form factor")
	assert.Contains(t, out, "6.2.2")

	buf.Reset()
	require.NoError(t, Write(&buf, "", attrs, Options{Names: []string{"k_f"}}))
	assert.False(t, strings.Contains(buf.String(), "N_s"))
	assert.Contains(t, buf.String(), "0.78532")
}

func TestFormatValueLarge(t *testing.T) {
	assert.Equal(t, "23900000", FormatValue(Num("I_x", 23884992.5, "mm⁴", "", ""), 3))
}
