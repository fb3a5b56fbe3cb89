package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/report"
)

// BoltCategory is the bolting category of AS4100 Cl 9.1
type BoltCategory int

const (
	Cat46S  BoltCategory = iota // 4.6/S
	Cat88S                      // 8.8/S
	Cat88TB                     // 8.8/TB
	Cat88TF                     // 8.8/TF
)

var boltCategoryNames = []string{"4.6/S", "8.8/S", "8.8/TB", "8.8/TF"}

func (c BoltCategory) String() string {
	if c < Cat46S || c > Cat88TF {
		return fmt.Sprintf("BoltCategory(%d)", int(c))
	}
	return boltCategoryNames[c]
}

// ParseBoltCategory accepts "8.8/S" style names
func ParseBoltCategory(s string) (BoltCategory, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range boltCategoryNames {
		if n == key {
			return BoltCategory(i), nil
		}
	}
	return 0, fmt.Errorf("bolt category %q: %w", s, ErrUnknownBolt)
}

// Tensile strength of the bolt material: 4.6 to AS1111.1, 8.8 to AS/NZS1252
func (c BoltCategory) tensileStrength() float64 {
	if c == Cat46S {
		return 400
	}
	return 830
}

// Thread pitch (mm) by diameter, AS1275 Table 3.2
var threadPitch = map[float64]float64{12: 1.75, 16: 2, 20: 2.5, 24: 3, 30: 3.5, 36: 4}

// Bolt is a single metric bolt. Capacities in kN.
type Bolt struct {
	Name            string
	Diameter        float64 // d_f (mm)
	Category        BoltCategory
	ThreadsIncluded bool

	Hole     float64 // d_h, Cl 14.3.5.2
	EdgeMin  float64 // a_e,min, Table 9.6.2 sheared or flame cut edges
	PitchMin float64 // s_p,min, Cl 9.6.1

	Pitch float64 // Thread pitch
	Ac    float64 // Core area
	As    float64 // Tensile stress area
	Ao    float64 // Plain shank area
	Fuf   float64
	Kr    float64 // Lap connection reduction factor

	Ntf    float64
	Vfn    float64 // Threads included in the shear plane
	Vfx    float64 // Threads excluded
	PhiVf  float64
	PhiNtf float64
}

// NewBolt resolves a bolt of diameter d (12 to 36 mm)
func NewBolt(d float64, category string, threadsIncluded bool) (*Bolt, error) {
	p, ok := threadPitch[d]
	if !ok {
		return nil, fmt.Errorf("bolt M%g: %w", d, ErrUnknownBolt)
	}
	cat, err := ParseBoltCategory(category)
	if err != nil {
		return nil, err
	}

	b := &Bolt{
		Diameter:        d,
		Category:        cat,
		ThreadsIncluded: threadsIncluded,
		EdgeMin:         1.5 * d,
		PitchMin:        2.5 * d,
		Pitch:           p,
		Fuf:             cat.tensileStrength(),
		Kr:              1,
	}
	b.Hole = d + 2
	if d > 24 {
		b.Hole = d + 3
	}
	b.Ac = math.Pi / 4 * sq(d-1.22687*p)
	b.As = math.Pi / 4 * sq(d-0.9382*p)
	b.Ao = math.Pi / 4 * sq(d)

	// Cl 9.3.2.1 and 9.3.2.2
	b.Ntf = b.As * b.Fuf / 1e3
	b.Vfn = 0.62 * b.Fuf * b.Kr * b.Ac / 1e3
	b.Vfx = 0.62 * b.Fuf * b.Kr * b.Ao / 1e3
	vf := b.Vfx
	threads := "TX"
	if threadsIncluded {
		vf = b.Vfn
		threads = "TI"
	}
	b.PhiVf = as4100.PhiBolt * vf
	b.PhiNtf = as4100.PhiBolt * b.Ntf
	b.Name = fmt.Sprintf("M%g %s (%s)", d, cat, threads)
	return b, nil
}

// Attributes lists the bolt values
func (b *Bolt) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("bolt", b.Name, "bolt designation"),
		report.Num("d_h", b.Hole, "mm", "hole diameter", "14.3.5.2"),
		report.Num("a_e,min", b.EdgeMin, "mm", "minimum edge distance", "9.6.2"),
		report.Num("s_p,min", b.PitchMin, "mm", "minimum pitch", "9.6.1"),
		report.Num("A_c", b.Ac, "mm²", "core area", ""),
		report.Num("A_s", b.As, "mm²", "tensile stress area", ""),
		report.Num("A_o", b.Ao, "mm²", "plain shank area", ""),
		report.Num("f_uf", b.Fuf, "MPa", "bolt tensile strength", ""),
		report.Num("φV_f", b.PhiVf, "kN", "design shear capacity", "9.3.2.1"),
		report.Num("φN_tf", b.PhiNtf, "kN", "design tension capacity", "9.3.2.2"),
	}
}

func sq(x float64) float64 { return x * x }
