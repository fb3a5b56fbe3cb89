package as1720

import (
	"fmt"
	"math"
	"strings"
)

// Category is the structural importance category of Table 2.1
type Category int

const (
	Category1 Category = 1 // Secondary members in houses
	Category2 Category = 2 // Primary members in houses, secondary members elsewhere
	Category3 Category = 3 // Primary members in post-disaster structures
)

// CapacityFactor returns φ from AS1720.1 Table 2.1
func CapacityFactor(t TimberType, c Category) (float64, error) {
	var row [3]float64
	switch t {
	case MGP, Glulam:
		row = [3]float64{0.95, 0.85, 0.75}
	case FGrade:
		row = [3]float64{0.90, 0.80, 0.70}
	default:
		return 0, fmt.Errorf("capacity factor: unsupported timber type %v", t)
	}
	if c < Category1 || c > Category3 {
		return 0, fmt.Errorf("capacity factor: category %d out of range 1-3", int(c))
	}
	return row[c-1], nil
}

// Duration is the cumulative load duration used for k1
type Duration int

const (
	FiveSeconds Duration = iota
	FiveMinutes
	FiveHours
	FiveDays
	FiveMonths
	Permanent // 50+ years
)

var durationNames = []string{"5s", "5min", "5h", "5days", "5months", "permanent"}

func (d Duration) String() string {
	if d < FiveSeconds || d > Permanent {
		return fmt.Sprintf("Duration(%d)", int(d))
	}
	return durationNames[d]
}

// ParseDuration accepts the spellings produced by Duration.String
func ParseDuration(s string) (Duration, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range durationNames {
		if key == n {
			return Duration(i), nil
		}
	}
	if key == "50years" || key == "50+years" {
		return Permanent, nil
	}
	return 0, fmt.Errorf("unknown load duration %q", s)
}

// DurationFactor returns k1 for strength from Table 2.3
func DurationFactor(d Duration) float64 {
	switch d {
	case FiveSeconds, FiveMinutes:
		return 1.0
	case FiveHours:
		return 0.97
	case FiveDays:
		return 0.94
	case FiveMonths:
		return 0.80
	default:
		return 0.57
	}
}

// MoistureFactor returns k4 for seasoned timber at equilibrium moisture content emc (%)
// AS1720.1 Cl 2.4.2.2
func MoistureFactor(emc float64) float64 {
	if emc <= 15 {
		return 1
	}
	return math.Max(1-0.3*(emc-15)/10, 0.7)
}

// PartialSeasoningFactor returns k4 for unseasoned timber by least dimension (mm)
// AS1720.1 Table 2.5
func PartialSeasoningFactor(leastDim float64) float64 {
	pts := [][2]float64{{38, 1.15}, {50, 1.10}, {75, 1.05}, {100, 1.0}}
	if leastDim <= pts[0][0] {
		return pts[0][1]
	}
	for i := 1; i < len(pts); i++ {
		if leastDim <= pts[i][0] {
			x0, y0 := pts[i-1][0], pts[i-1][1]
			x1, y1 := pts[i][0], pts[i][1]
			return y0 + (leastDim-x0)*(y1-y0)/(x1-x0)
		}
	}
	return 1
}

// SizeFactor returns k11 = (300/d)^0.167 for d > 300 mm, AS1720.1 Cl 2.4.6
func SizeFactor(d float64) float64 {
	if d <= 300 {
		return 1
	}
	return math.Pow(300/d, 0.167)
}

// BearingLengthFactor returns k7 of Table 2.6 for bearing length lb (mm).
// Bearings within 75 mm of a member end take k7 = 1.
func BearingLengthFactor(lb float64) float64 {
	pts := [][2]float64{{12, 1.85}, {25, 1.60}, {50, 1.30}, {75, 1.15}, {125, 1.10}, {150, 1.0}}
	if lb <= 0 {
		return 1
	}
	if lb <= pts[0][0] {
		return pts[0][1]
	}
	for i := 1; i < len(pts); i++ {
		if lb <= pts[i][0] {
			x0, y0 := pts[i-1][0], pts[i-1][1]
			x1, y1 := pts[i][0], pts[i][1]
			return y0 + (lb-x0)*(y1-y0)/(x1-x0)
		}
	}
	return 1
}
