package member

import "math"

// CombinedActions are the AS4100 Section 8 moment capacities (kNm) under
// a design axial force N* (kN), tension positive
type CombinedActions struct {
	NStar  float64
	PhiMrx float64 // Reduced section capacity about x, Cl 8.3.2
	PhiMry float64 // Reduced section capacity about y, Cl 8.3.3
	PhiMix float64 // In-plane member capacity about x, Cl 8.4.2.2
	PhiMiy float64 // In-plane member capacity about y, Cl 8.4.2.2
	PhiMox float64 // Out-of-plane member capacity, Cl 8.4.4
	PhiMcx float64 // Governing member capacity about x
}

// Combined evaluates the Section 8 capacities for an axial force nStar.
// Compression members use the compression capacities; tension members
// reduce against φNt.
func (c *SteelCapacities) Combined(nStar float64) CombinedActions {
	r := CombinedActions{NStar: nStar}
	n := math.Abs(nStar)
	tension := nStar > 0

	phiNs := c.PhiNs
	if tension {
		phiNs = c.PhiNt
	}
	ratio := safeRatio(n, phiNs)

	r.PhiMrx = c.PhiMsx * (1 - ratio)
	r.PhiMry = c.PhiMsy * (1 - ratio)
	if c.PlasticInteraction {
		r.PhiMrx = math.Min(1.18*c.PhiMsx*(1-ratio), c.PhiMsx)
		r.PhiMry = math.Min(1.19*c.PhiMsy*(1-ratio*ratio), c.PhiMsy)
	}
	r.PhiMrx = clampZero(r.PhiMrx)
	r.PhiMry = clampZero(r.PhiMry)

	if tension {
		r.PhiMix = r.PhiMrx
		r.PhiMiy = r.PhiMry
		r.PhiMox = math.Min(c.PhiMbx*(1+safeRatio(n, c.PhiNt)), r.PhiMrx)
	} else {
		r.PhiMix = clampZero(c.PhiMsx * (1 - safeRatio(n, c.Inputs.Phi*c.Ncx)))
		r.PhiMiy = clampZero(c.PhiMsy * (1 - safeRatio(n, c.Inputs.Phi*c.Ncy)))
		r.PhiMox = clampZero(c.PhiMbx * (1 - safeRatio(n, c.Inputs.Phi*c.Ncy)))
	}
	r.PhiMcx = math.Min(r.PhiMix, r.PhiMox)
	return r
}

func safeRatio(a, b float64) float64 {
	if b <= 0 {
		return math.Inf(1)
	}
	return a / b
}

func clampZero(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
