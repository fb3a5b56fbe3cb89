package as4100

import (
	"fmt"
	"strings"
)

// AS4100 Cl 2.2.4 Steel material constants

const (
	E       = 200000.0 // Modulus of elasticity (MPa)
	G       = 80000.0  // Shear modulus (MPa)
	Poisson = 0.25     // Poisson's ratio
	Density = 7850.0   // kg/m³
	AlphaT  = 11.7e-6  // Coefficient of thermal expansion (/°C)
)

// Capacity factors, AS4100 Table 3.4
const (
	PhiMember     = 0.90 // Members in bending, compression, tension and shear
	PhiBolt       = 0.80 // Bolts in shear and tension
	PhiPly        = 0.90 // Ply in bearing
	PhiWeldSP     = 0.80 // Fillet welds, category SP
	PhiWeldGP     = 0.60 // Fillet welds, category GP
	PhiBlockShear = 0.75 // Block shear (ANSI/AISC 360-16 J4.3)
)

// MaterialType selects the product standard used to resolve steel strengths
type MaterialType int

const (
	HotRolledSection MaterialType = iota // AS3679.1
	HotRolledPlate                       // AS3678
	WeldedSection                        // AS3679.2, plate strengths from AS3678
	HollowSection                        // AS1163
	PressurePlate                        // AS3597
)

var materialTypeNames = map[MaterialType]string{
	HotRolledSection: "HotRolledSection",
	HotRolledPlate:   "HotRolledPlate",
	WeldedSection:    "WeldedSection",
	HollowSection:    "HollowSection",
	PressurePlate:    "PressurePlate",
}

func (m MaterialType) String() string {
	if s, ok := materialTypeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MaterialType(%d)", int(m))
}

// Standard returns the Australian product standard for the material type
func (m MaterialType) Standard() string {
	switch m {
	case HotRolledSection:
		return "AS/NZS 3679.1"
	case HotRolledPlate:
		return "AS/NZS 3678"
	case WeldedSection:
		return "AS/NZS 3679.2"
	case HollowSection:
		return "AS/NZS 1163"
	case PressurePlate:
		return "AS 3597"
	}
	return ""
}

// ParseMaterialType converts a library or CLI spelling into a MaterialType
func ParseMaterialType(s string) (MaterialType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range materialTypeNames {
		if strings.ToLower(name) == key {
			return m, nil
		}
	}
	switch key {
	case "section", "hotrolled", "as3679":
		return HotRolledSection, nil
	case "plate", "as3678":
		return HotRolledPlate, nil
	case "welded":
		return WeldedSection, nil
	case "hollow", "as1163":
		return HollowSection, nil
	case "pressure", "as3597":
		return PressurePlate, nil
	}
	return 0, &TableError{Table: "material type", Key: s, Err: ErrUnknownMaterialType}
}

// ResidualStress classifies the residual stress pattern of a section,
// AS4100 Table 5.2 and 6.2.4
type ResidualStress int

const (
	StressRelieved ResidualStress = iota // SR
	HotRolled                            // HR
	LightlyWelded                        // LW
	ColdFormed                           // CF
	HeavilyWelded                        // HW
)

func (r ResidualStress) String() string {
	switch r {
	case StressRelieved:
		return "SR"
	case HotRolled:
		return "HR"
	case LightlyWelded:
		return "LW"
	case ColdFormed:
		return "CF"
	case HeavilyWelded:
		return "HW"
	}
	return fmt.Sprintf("ResidualStress(%d)", int(r))
}

// ResidualStressFor returns the residual stress class implied by the product type
func ResidualStressFor(m MaterialType) ResidualStress {
	switch m {
	case HollowSection:
		return ColdFormed
	case WeldedSection:
		return HeavilyWelded
	default:
		return HotRolled
	}
}

// bracket is one row of a thickness-dependent strength table.
// Thickness t is accepted when t <= MaxT (or t < MaxT when Exclusive).
type bracket struct {
	MaxT      float64
	Exclusive bool
	Fy        float64
	Fu        float64
}

type gradeTable map[string][]bracket

func (g gradeTable) lookup(table, grade string, t float64) (bracket, error) {
	rows, ok := g[strings.ToUpper(strings.TrimSpace(grade))]
	if !ok {
		return bracket{}, &TableError{Table: table, Key: grade, Err: ErrUnknownGrade}
	}
	if t <= 0 {
		return bracket{}, &TableError{Table: table, Key: grade, Thickness: t, Err: ErrThicknessOutOfRange}
	}
	for _, row := range rows {
		if row.Exclusive && t < row.MaxT {
			return row, nil
		}
		if !row.Exclusive && t <= row.MaxT {
			return row, nil
		}
	}
	return bracket{}, &TableError{Table: table, Key: grade, Thickness: t, Err: ErrThicknessOutOfRange}
}

const anyThickness = 1e9

// AS4100 Table 2.1 strengths by product standard

var as1163 = gradeTable{
	"C450": {{MaxT: anyThickness, Fy: 450, Fu: 500}},
	"C350": {{MaxT: anyThickness, Fy: 350, Fu: 430}},
	"C250": {{MaxT: anyThickness, Fy: 250, Fu: 320}},
}

var as3678 = gradeTable{
	"GR450": {
		{MaxT: 20, Fy: 450, Fu: 520},
		{MaxT: 32, Fy: 420, Fu: 500},
		{MaxT: 50, Fy: 400, Fu: 500},
	},
	"GR400": {
		{MaxT: 12, Fy: 400, Fu: 480},
		{MaxT: 20, Fy: 380, Fu: 480},
		{MaxT: 80, Fy: 360, Fu: 480},
	},
	"GR350": {
		{MaxT: 12, Fy: 360, Fu: 450},
		{MaxT: 20, Fy: 350, Fu: 450},
		{MaxT: 80, Fy: 340, Fu: 450},
		{MaxT: 150, Fy: 330, Fu: 450},
	},
	"WR350": {
		{MaxT: 50, Fy: 340, Fu: 450},
	},
	"GR300": {
		{MaxT: 8, Fy: 320, Fu: 430},
		{MaxT: 12, Fy: 310, Fu: 430},
		{MaxT: 20, Fy: 300, Fu: 430},
		{MaxT: 50, Fy: 280, Fu: 430},
		{MaxT: 80, Fy: 270, Fu: 430},
		{MaxT: 150, Fy: 260, Fu: 430},
	},
	"GR250": {
		{MaxT: 8, Fy: 280, Fu: 410},
		{MaxT: 12, Fy: 260, Fu: 410},
		{MaxT: 50, Fy: 250, Fu: 410},
		{MaxT: 80, Fy: 240, Fu: 410},
		{MaxT: 150, Fy: 230, Fu: 410},
	},
	"GR200": {
		{MaxT: 12, Fy: 200, Fu: 300},
	},
}

var as3679Sections = gradeTable{
	"GR350": {
		{MaxT: 11, Fy: 360, Fu: 480},
		{MaxT: 40, Exclusive: true, Fy: 340, Fu: 480},
		{MaxT: anyThickness, Fy: 330, Fu: 480},
	},
	"GR300": {
		{MaxT: 11, Exclusive: true, Fy: 320, Fu: 440},
		{MaxT: 17, Fy: 300, Fu: 440},
		{MaxT: anyThickness, Fy: 280, Fu: 440},
	},
}

var as3597 = gradeTable{
	"PR500": {{MaxT: anyThickness, Fy: 500, Fu: 590}},
	"PR600": {{MaxT: anyThickness, Fy: 600, Fu: 690}},
	"PR700": {
		{MaxT: 65, Fy: 690, Fu: 790},
		{MaxT: 110, Fy: 620, Fu: 720},
	},
}

func tableFor(m MaterialType) (string, gradeTable) {
	switch m {
	case HollowSection:
		return "AS1163", as1163
	case HotRolledPlate, WeldedSection:
		return "AS3678", as3678
	case PressurePlate:
		return "AS3597", as3597
	default:
		return "AS3679.1", as3679Sections
	}
}

// YieldStress returns f_y for a grade and element thickness t (mm)
// AS4100 Table 2.1
func YieldStress(m MaterialType, grade string, t float64) (float64, error) {
	name, table := tableFor(m)
	row, err := table.lookup(name, grade, t)
	if err != nil {
		return 0, err
	}
	return row.Fy, nil
}

// TensileStrength returns f_u for a grade and element thickness t (mm)
// AS4100 Table 2.1
func TensileStrength(m MaterialType, grade string, t float64) (float64, error) {
	name, table := tableFor(m)
	row, err := table.lookup(name, grade, t)
	if err != nil {
		return 0, err
	}
	return row.Fu, nil
}

// Grades lists the grades tabulated for a material type
func Grades(m MaterialType) []string {
	_, table := tableFor(m)
	grades := make([]string, 0, len(table))
	for g := range table {
		grades = append(grades, g)
	}
	return grades
}
