package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/asdesign/internal/library"
)

// execute runs the root command with args and returns what it printed.
// Not parallel: commands share package-level flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"actions", "bolt", "connection", "section", "steel", "timber", "version", "weld"}
	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "asdesign v")
	assert.Contains(t, out, "AS 4100")
}

func TestSectionList(t *testing.T) {
	out, err := execute(t, "section", "list", "hollow", "--filter", "100x4")
	require.NoError(t, err)
	assert.Contains(t, out, "100x4SHS")
	assert.NotContains(t, out, "100x5SHS")
}

func TestSectionShowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee.yaml")
	def := `name: Plate tee
sec_type: Custom
grade: GR300
t: 16
vertices:
  - {x: 0, y: 0}
  - {x: 200, y: 0}
  - {x: 200, y: 16}
  - {x: 108, y: 16}
  - {x: 108, y: 300}
  - {x: 92, y: 300}
  - {x: 92, y: 16}
  - {x: 0, y: 16}
`
	require.NoError(t, os.WriteFile(path, []byte(def), 0o644))

	out, err := execute(t, "section", "show", "--file", path, "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Plate tee")
	assert.Contains(t, out, "Custom")
	assert.Contains(t, out, "SECTION OUTLINE")
}

func TestReadSectionFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"plate.json": `{"sec_type": "RectPlate", "d": 200, "b": 12, "grade": "GR250"}`,
		"plate.toml": "sec_type = \"RectPlate\"\nd = 200\nb = 12\ngrade = \"GR250\"\n",
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			p, err := readSectionFile(path)
			require.NoError(t, err)
			assert.Equal(t, "plate", p.String("name"))
			assert.Equal(t, 200.0, p.Float("d"))
		})
	}

	bad := filepath.Join(dir, "plate.csv")
	require.NoError(t, os.WriteFile(bad, []byte("d,b"), 0o644))
	_, err := readSectionFile(bad)
	assert.Error(t, err)
}

func TestSteelCheck(t *testing.T) {
	out, err := execute(t, "steel", "check", "310UC96.8", "--lx", "4000", "--n-star", "-500")
	require.NoError(t, err)
	assert.Contains(t, out, "310UC96.8")
	assert.Contains(t, out, "φN_c")
	assert.Contains(t, out, "COMBINED ACTIONS")

	_, err = execute(t, "steel", "check", "999UB1", "--lx", "4000")
	assert.ErrorIs(t, err, library.ErrNotFound)
}

func TestParseRestraints(t *testing.T) {
	a, b, err := parseRestraints("fp")
	require.NoError(t, err)
	assert.Equal(t, "F", a.String())
	assert.Equal(t, "P", b.String())

	for _, bad := range []string{"F", "FX", "FFF"} {
		_, _, err := parseRestraints(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseBoltSize(t *testing.T) {
	for _, s := range []string{"M20", "m20", "20"} {
		d, err := parseBoltSize(s)
		require.NoError(t, err)
		assert.Equal(t, 20.0, d)
	}
	_, err := parseBoltSize("twenty")
	assert.Error(t, err)
}

func TestActionsRequiresLoads(t *testing.T) {
	_, err := execute(t, "actions")
	assert.Error(t, err)

	out, err := execute(t, "actions", "--dead", "50", "--live", "30", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2G + 1.5Q")
	assert.Contains(t, out, "GOVERNS")
}

func TestConnectionWebSidePlate(t *testing.T) {
	out, err := execute(t, "connection", "wsp", "250UB25.7",
		"--cope", "SWC", "--top-cope", "65", "--cope-length", "120",
		"--rows", "2", "--cols", "2", "--plate-width", "180")
	require.NoError(t, err)
	assert.Contains(t, out, "WEB SIDE PLATE")
	assert.Contains(t, out, "φV_a")
	assert.Contains(t, out, "GOVERNS")
	assert.Contains(t, out, "Detailing OK")
}

func TestConnectionEndPlateColumns(t *testing.T) {
	_, err := execute(t, "connection", "fep", "460UB82.1", "--rows", "4", "--cols", "3", "--gauge", "60")
	assert.Error(t, err)
}
