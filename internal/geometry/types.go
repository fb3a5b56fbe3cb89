// Package geometry resolves section geometry and derived properties for
// every supported shape family.
package geometry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedShape is returned for a section type with no shape function
	ErrUnsupportedShape = errors.New("unsupported section type")

	// ErrInvalidDimension is returned when raw dimensions cannot form the section
	ErrInvalidDimension = errors.New("invalid section dimension")
)

// ConfigError reports a section that cannot be resolved from its inputs
type ConfigError struct {
	Section string
	msg     string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("section %q: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("section %q: %v: %s", e.Section, e.Err, e.msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalid(name, format string, args ...any) error {
	return &ConfigError{Section: name, msg: fmt.Sprintf(format, args...), Err: ErrInvalidDimension}
}

// ShapeType is the closed set of section families
type ShapeType int

const (
	UB ShapeType = iota
	UC
	WB
	WC
	PFC
	BT
	CT
	SHS
	RHS
	CHS
	RectPlate
	Board
	Custom
)

var shapeNames = []string{"UB", "UC", "WB", "WC", "PFC", "BT", "CT", "SHS", "RHS", "CHS", "RectPlate", "Board", "Custom"}

func (s ShapeType) String() string {
	if s < UB || s > Custom {
		return fmt.Sprintf("ShapeType(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShapeType matches a section type name, case-insensitive
func ParseShapeType(name string) (ShapeType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if strings.ToLower(n) == key {
			return ShapeType(i), nil
		}
	}
	switch key {
	case "plate", "rect":
		return RectPlate, nil
	case "timber", "sawn":
		return Board, nil
	case "polygon":
		return Custom, nil
	}
	return 0, &ConfigError{Section: name, Err: ErrUnsupportedShape}
}

// IsISection reports doubly symmetric I-sections
func (s ShapeType) IsISection() bool {
	return s == UB || s == UC || s == WB || s == WC
}

// IsOpen reports sections built from flange and web plates
func (s ShapeType) IsOpen() bool {
	return s.IsISection() || s == PFC || s == BT || s == CT
}

// IsHollow reports closed hollow sections
func (s ShapeType) IsHollow() bool {
	return s == SHS || s == RHS || s == CHS
}

// IsWelded reports sections fabricated by welding plates
func (s ShapeType) IsWelded() bool {
	return s == WB || s == WC
}

// Point is a 2D coordinate (mm)
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y" mapstructure:"y"`
}

// Dimensions are the raw inputs of a section. The mapstructure keys follow
// the library parameter schema.
type Dimensions struct {
	Name     string  `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Section  string  `json:"section" yaml:"section" toml:"section" mapstructure:"section"`
	Type     string  `json:"sec_type" yaml:"sec_type" toml:"sec_type" mapstructure:"sec_type"`
	D        float64 `json:"d" yaml:"d" toml:"d" mapstructure:"d"`
	B        float64 `json:"b" yaml:"b" toml:"b" mapstructure:"b"`
	Tf       float64 `json:"t_f" yaml:"t_f" toml:"t_f" mapstructure:"t_f"`
	Tw       float64 `json:"t_w" yaml:"t_w" toml:"t_w" mapstructure:"t_w"`
	T        float64 `json:"t" yaml:"t" toml:"t" mapstructure:"t"`
	R1       float64 `json:"r_1" yaml:"r_1" toml:"r_1" mapstructure:"r_1"`
	Ro       float64 `json:"r_o" yaml:"r_o" toml:"r_o" mapstructure:"r_o"`
	Vertices []Point `json:"vertices,omitempty" yaml:"vertices,omitempty" toml:"vertices,omitempty" mapstructure:"vertices"`

	// Optional torsion and warping constants for custom polygons
	J  float64 `json:"j,omitempty" yaml:"j,omitempty" toml:"j,omitempty" mapstructure:"j"`
	Iw float64 `json:"i_w,omitempty" yaml:"i_w,omitempty" toml:"i_w,omitempty" mapstructure:"i_w"`
}

// Section is a resolved cross-section. Derived properties are pure
// functions of the raw dimensions and shape type.
type Section struct {
	Name        string
	Designation string
	Type        ShapeType

	// Raw dimensions (mm)
	D, B, Tf, Tw, T, R1, Ro float64
	Vertices                []Point

	// Derived properties (mm based units)
	Ag float64 // Gross area
	An float64 // Net area, equal to Ag unless reduced
	Ix float64 // Second moment of area, major axis
	Iy float64 // Second moment of area, minor axis
	Zx float64 // Elastic section modulus, major axis
	Zy float64 // Elastic section modulus, minor axis
	Sx float64 // Plastic section modulus, major axis
	Sy float64 // Plastic section modulus, minor axis
	Rx float64 // Radius of gyration, major axis
	Ry float64 // Radius of gyration, minor axis
	J  float64 // Torsion constant
	Iw float64 // Warping constant
	Xc float64 // Centroid x (channel: from back of web; polygon: vertex coordinates)
	Yc float64 // Centroid y (tee: from outside of flange; polygon: vertex coordinates)

	XMax float64 // Extreme fibre distance from the minor axis
	YMax float64 // Extreme fibre distance from the major axis
}
