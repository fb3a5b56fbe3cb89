package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLookup(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	tests := []struct {
		name    string
		cat     Category
		query   string
		section string
		grade   string
	}{
		{"by section", HollowSections, "200x5SHS", "200x5SHS", "C450"},
		{"by full name", HollowSections, "200x5SHS (C450)", "200x5SHS", "C450"},
		{"case and whitespace", OpenSections, "  460ub74.6 ", "460UB74.6", "GR300"},
		{"channel", OpenSections, "150PFC", "150PFC", "GR300"},
		{"timber by name", TimberSections, "90x45 (MGP12)", "90x45", "MGP12"},
		{"timber first match", TimberSections, "90x45", "90x45", "MGP10"},
		{"grade", TimberGrades, "f17", "F17", "F17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := store.Lookup(tt.cat, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.section, p.String("section"))
			assert.Equal(t, tt.grade, p.String("grade"))
		})
	}
}

func TestEmbeddedRowsAreCopies(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	p, err := store.Lookup(OpenSections, "250UC89.5")
	require.NoError(t, err)
	p["d"] = 1.0

	again, err := store.Lookup(OpenSections, "250UC89.5")
	require.NoError(t, err)
	assert.Equal(t, 260.0, again.Float("d"))
}

func TestLookupErrors(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	_, err = store.Lookup(OpenSections, "999UB1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "999UB1", le.Name)

	_, err = store.Lookup(Category(42), "x")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseCategory("bricks")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"open":            OpenSections,
		"hollow_sections": HollowSections,
		"timber-sections": TimberSections,
		"grades":          TimberGrades,
	} {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParamsDecode(t *testing.T) {
	p := Params{"section": "x", "d": 200, "b": "100", "t": 5.0}
	var dims struct {
		Section string  `mapstructure:"section"`
		D       float64 `mapstructure:"d"`
		B       float64 `mapstructure:"b"`
		T       float64 `mapstructure:"t"`
	}
	require.NoError(t, p.Decode(&dims))
	assert.Equal(t, 200.0, dims.D)
	assert.Equal(t, 100.0, dims.B)
	assert.Equal(t, 5.0, dims.T)
}

func TestDirProvider(t *testing.T) {
	dir := t.TempDir()
	yamlRows := "- section: 90x90x5EA\n  grade: GR300\n  sec_type: Custom\n  d: 90\n"
	tomlRows := "[[row]]\nsection = \"300x45\"\ngrade = \"MGP15\"\nsec_type = \"Board\"\nd = 300\nb = 45\nseasoned = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "open_sections.yml"), []byte(yamlRows), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "timber_sections.toml"), []byte(tomlRows), 0o644))

	store, err := NewDirProvider(dir)
	require.NoError(t, err)

	p, err := store.Lookup(OpenSections, "90x90x5EA (GR300)")
	require.NoError(t, err)
	assert.Equal(t, 90.0, p.Float("d"))

	p, err = store.Lookup(TimberSections, "300x45")
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.Float("d"))
	assert.Equal(t, true, p["seasoned"])

	_, err = store.Lookup(HollowSections, "200x5SHS")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDirProviderMissingSection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "open_sections.yaml"), []byte("- grade: GR300\n"), 0o644))
	_, err := NewDirProvider(dir)
	assert.Error(t, err)

	_, err = NewDirProvider(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	dir := t.TempDir()
	rows := "- section: 200x5SHS\n  grade: C350\n  sec_type: SHS\n  d: 200\n  b: 200\n  t: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hollow_sections.yaml"), []byte(rows), 0o644))
	local, err := NewDirProvider(dir)
	require.NoError(t, err)
	builtin, err := Embedded()
	require.NoError(t, err)

	chain := Chain{local, builtin}

	p, err := chain.Lookup(HollowSections, "200x5SHS")
	require.NoError(t, err)
	assert.Equal(t, "C350", p.String("grade"))

	p, err = chain.Lookup(OpenSections, "310UC118")
	require.NoError(t, err)
	assert.Equal(t, "UC", p.String("sec_type"))

	_, err = chain.Lookup(OpenSections, "nothing")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := chain.Names(HollowSections)
	require.NoError(t, err)
	assert.Equal(t, "200x5SHS (C350)", names[0])
	assert.Contains(t, names, "200x5SHS (C450)")
}
