package as4100

import "fmt"

// EdgeSupport describes how many longitudinal edges of a plate element are supported
type EdgeSupport int

const (
	OneEdge   EdgeSupport = iota // Flange outstands, tee stems
	BothEdges                    // Webs, hollow section walls
)

func (e EdgeSupport) String() string {
	if e == OneEdge {
		return "one edge"
	}
	return "both edges"
}

// Loading describes the stress distribution across a plate element
type Loading int

const (
	UniformCompression Loading = iota
	CompressionToTension
)

func (l Loading) String() string {
	if l == UniformCompression {
		return "uniform compression"
	}
	return "compression to tension"
}

// PlateLimits holds the element slenderness limits of AS4100 Table 5.2.
// Ed is the deformation limit, zero where the table gives none.
// CompressionYield is the Table 6.2.4 yield limit of a ring in axial
// compression, zero for flat plates.
type PlateLimits struct {
	Ep float64 // Plasticity limit λep
	Ey float64 // Yield limit λey
	Ed float64 // Deformation limit λed

	CompressionYield float64
}

// PlateLimitsFor returns the Table 5.2 limits for a flat plate element
func PlateLimitsFor(edge EdgeSupport, loading Loading, rs ResidualStress) PlateLimits {
	switch {
	case edge == OneEdge && loading == UniformCompression:
		switch rs {
		case StressRelieved:
			return PlateLimits{Ep: 10, Ey: 16, Ed: 35}
		case HotRolled:
			return PlateLimits{Ep: 9, Ey: 16, Ed: 35}
		case LightlyWelded, ColdFormed:
			return PlateLimits{Ep: 8, Ey: 15, Ed: 35}
		default:
			return PlateLimits{Ep: 8, Ey: 14, Ed: 34}
		}
	case edge == OneEdge:
		switch rs {
		case StressRelieved:
			return PlateLimits{Ep: 10, Ey: 25}
		case HotRolled:
			return PlateLimits{Ep: 9, Ey: 25}
		default:
			return PlateLimits{Ep: 8, Ey: 22}
		}
	case loading == UniformCompression:
		switch rs {
		case StressRelieved, HotRolled:
			return PlateLimits{Ep: 30, Ey: 45, Ed: 90}
		case LightlyWelded, ColdFormed:
			return PlateLimits{Ep: 30, Ey: 40, Ed: 90}
		default:
			return PlateLimits{Ep: 30, Ey: 35, Ed: 90}
		}
	default:
		return PlateLimits{Ep: 82, Ey: 115}
	}
}

// RingLimitsFor returns the Table 5.2 bending limits and the Table 6.2.4
// compression yield limit for a circular hollow section
func RingLimitsFor(rs ResidualStress) PlateLimits {
	switch rs {
	case LightlyWelded, HeavilyWelded:
		return PlateLimits{Ep: 42, Ey: 120, CompressionYield: 82}
	default:
		return PlateLimits{Ep: 50, Ey: 120, CompressionYield: 82}
	}
}

func (p PlateLimits) String() string {
	if p.CompressionYield > 0 {
		return fmt.Sprintf("λep=%g λey=%g λey,c=%g", p.Ep, p.Ey, p.CompressionYield)
	}
	return fmt.Sprintf("λep=%g λey=%g λed=%g", p.Ep, p.Ey, p.Ed)
}
