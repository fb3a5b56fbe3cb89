package as1720

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownGrade is returned when a timber grade is not tabulated
var ErrUnknownGrade = errors.New("unknown timber grade")

// TimberType groups grades by their capacity factor row in Table 2.1
type TimberType int

const (
	MGP TimberType = iota // Machine graded pine
	FGrade                // F-grade sawn timber
	Glulam                // Glued laminated timber
)

func (t TimberType) String() string {
	switch t {
	case MGP:
		return "MGP"
	case FGrade:
		return "F-grade"
	case Glulam:
		return "GL"
	}
	return fmt.Sprintf("TimberType(%d)", int(t))
}

// Grade holds characteristic values (MPa) and moduli for one stress grade
// AS1720.1 Section 2 / Appendix H
type Grade struct {
	Name    string
	Type    TimberType
	Fb      float64 // f'b bending
	Ft      float64 // f't tension parallel to grain
	Fs      float64 // f's shear in beams
	Fc      float64 // f'c compression parallel to grain
	Fp      float64 // f'p bearing perpendicular to grain
	E       float64 // Short duration average modulus of elasticity
	G       float64 // Modulus of rigidity
	Density float64 // Indicative air-dry density for self weight (kg/m³)
}

var grades = map[string]Grade{
	"MGP10": {Name: "MGP10", Type: MGP, Fb: 17, Ft: 7.7, Fs: 2.6, Fc: 18, Fp: 10, E: 10000, Density: 500},
	"MGP12": {Name: "MGP12", Type: MGP, Fb: 28, Ft: 12, Fs: 3.5, Fc: 24, Fp: 10, E: 12700, Density: 550},
	"MGP15": {Name: "MGP15", Type: MGP, Fb: 41, Ft: 20, Fs: 4.6, Fc: 30, Fp: 10, E: 15200, Density: 600},

	"F5":  {Name: "F5", Type: FGrade, Fb: 14, Ft: 8.6, Fs: 2.1, Fc: 11, Fp: 10, E: 6900, Density: 550},
	"F7":  {Name: "F7", Type: FGrade, Fb: 18, Ft: 11, Fs: 2.5, Fc: 15, Fp: 10, E: 7900, Density: 600},
	"F8":  {Name: "F8", Type: FGrade, Fb: 22, Ft: 13, Fs: 2.9, Fc: 18, Fp: 10, E: 9100, Density: 650},
	"F11": {Name: "F11", Type: FGrade, Fb: 31, Ft: 18, Fs: 3.3, Fc: 22, Fp: 10, E: 10500, Density: 750},
	"F14": {Name: "F14", Type: FGrade, Fb: 36, Ft: 22, Fs: 3.6, Fc: 27, Fp: 10, E: 12000, Density: 900},
	"F17": {Name: "F17", Type: FGrade, Fb: 42, Ft: 25, Fs: 4.2, Fc: 34, Fp: 10, E: 14000, Density: 1000},
	"F22": {Name: "F22", Type: FGrade, Fb: 52, Ft: 31, Fs: 4.9, Fc: 43, Fp: 10, E: 16000, Density: 1100},
	"F27": {Name: "F27", Type: FGrade, Fb: 67, Ft: 40, Fs: 5.5, Fc: 52, Fp: 10, E: 18500, Density: 1150},

	"GL13": {Name: "GL13", Type: Glulam, Fb: 25, Ft: 13, Fs: 3.7, Fc: 26, Fp: 10, E: 13300, Density: 600},
	"GL17": {Name: "GL17", Type: Glulam, Fb: 42, Ft: 22, Fs: 3.7, Fc: 40, Fp: 10, E: 16700, Density: 600},
	"GL18": {Name: "GL18", Type: Glulam, Fb: 41, Ft: 21, Fs: 3.7, Fc: 40, Fp: 10, E: 18000, Density: 600},
}

// ParseTimberType accepts the spellings produced by TimberType.String
func ParseTimberType(s string) (TimberType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mgp":
		return MGP, nil
	case "f-grade", "fgrade", "f":
		return FGrade, nil
	case "gl", "glulam":
		return Glulam, nil
	}
	return 0, fmt.Errorf("unknown timber type %q", s)
}

// LookupGrade returns the characteristic values for a grade name
func LookupGrade(name string) (Grade, error) {
	g, ok := grades[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Grade{}, fmt.Errorf("grade %q: %w", name, ErrUnknownGrade)
	}
	if g.G == 0 {
		g.G = g.E / 15
	}
	return g, nil
}

// GradeNames returns every tabulated grade, sorted
func GradeNames() []string {
	names := make([]string, 0, len(grades))
	for n := range grades {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
