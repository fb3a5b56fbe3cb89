package connection

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/component"
)

// WebSidePlate is a plate welded to the support and bolted to the beam web
// by a single or double column of bolts
type WebSidePlate struct {
	Member *CopedMember
	Bolts  *component.BoltGroup
	Plate  *component.Plate
	Weld   *component.Weld
	Layout Layout
}

// Check computes the plate depth, the detailing rules and each failure mode
func (c *WebSidePlate) Check() (*Result, error) {
	if err := c.Layout.check(); err != nil {
		return nil, err
	}
	l, g, p, cm := c.Layout, c.Bolts, c.Plate, c.Member
	b := g.Bolt

	aehE := p.Width - l.WeldToBolt - g.WidthBetweenHoles()
	if aehE <= 0 {
		return nil, fmt.Errorf("web side plate: width %g mm does not reach the bolts: %w", p.Width, ErrInvalidPlate)
	}
	r := &Result{
		Name:          fmt.Sprintf("WSP %s / %s / %s", cm.Section.Name, g.Name, p.Name),
		Type:          "WSP",
		Depth:         g.DepthBetweenHoles() + 2*l.EdgeV,
		Eccentricity:  l.WeldToBolt + g.WidthBetweenHoles()/2,
		Gap:           l.WeldToBolt - l.MemberEdge,
		MinBoltLength: cm.Section.Tw + p.Thickness,
	}
	di, e := r.Depth, r.Eccentricity

	checkPlacement(r, cm, l, di)
	if l.EdgeV < b.EdgeMin {
		r.detail("a_ev = %g mm is less than the minimum edge distance %g mm", l.EdgeV, b.EdgeMin)
	}
	if aehE < b.EdgeMin {
		r.detail("a_eh = %g mm is less than the minimum edge distance %g mm", aehE, b.EdgeMin)
	}
	if l.MemberEdge < b.EdgeMin {
		r.detail("a_eh1 = %g mm is less than the minimum edge distance %g mm", l.MemberEdge, b.EdgeMin)
	}
	if r.Gap <= 0 {
		r.detail("beam end bears on the support, gap %g mm", r.Gap)
	}
	if c.Weld.Leg < 0.75*p.Thickness {
		r.detail("weld leg %g mm is less than 0.75 t_p = %g mm", c.Weld.Leg, 0.75*p.Thickness)
	}

	// Web edge distances to the end bolt rows
	webTop := l.TopOffset - cm.Cope.Top
	webEdge := webTop
	if cm.Cope.Type == DoubleCope {
		webEdge = math.Min(webTop, di-webTop-g.DepthBetweenHoles())
	}

	web := cm.webPly()
	n := g.N
	zb := g.EccentricityFactor(e)
	zev := g.VerticalTearOutFactor(e)
	zeh := g.HorizontalTearOutFactor(e)

	plateAy, plateAx := g.TearOutLengths(l.EdgeV, aehE)
	webAy, webAx := g.TearOutLengths(webEdge, l.MemberEdge)
	if cm.Cope.Type == Uncoped {
		// Uncoped webs have no edge above the bolts
		webAy, _ = g.TearOutLengths(math.Inf(1), l.MemberEdge)
	}

	bolt := []float64{
		g.PhiVdfEccentric(e),
		zb * math.Min(p.PlyBearing(n, b.Diameter), web.PlyBearing(n, b.Diameter)),
		zev * math.Min(p.TearOut(n, plateAy), web.TearOut(n, webAy)),
	}
	if zeh > 0 {
		bolt = append(bolt, zeh*math.Min(p.TearOut(n, plateAx), web.TearOut(n, webAx)))
	}
	vb := bolt[0]
	for _, v := range bolt[1:] {
		vb = math.Min(vb, v)
	}

	plateLv, plateLt := g.BlockShearPaths(l.EdgeV, aehE)

	r.add("φV_a", "weld, eccentric", c.Weld.EccentricPlateCapacity(di, e), true)
	r.add("φV_b", "bolt group and ply in bearing", vb, true)
	r.add("φV_c", "plate in shear", p.Shear(di), true)
	r.add("φV_d", "plate in bending", p.EccentricShear(di, e), true)
	r.add("φV_e", "plate block shear", p.BlockShear(plateLt, plateLv), true)
	r.add("φV_f", "beam web shear at the connection", cm.PhiVws, true)
	if cm.Cope.Type != Uncoped {
		webLv, webLt := g.BlockShearPaths(webEdge, l.MemberEdge)
		r.add("φV_g", "beam web block shear", cm.BlockShear(webLt, webLv), true)
		r.add("φV_h", "beam bending at the cope", cm.CopeBending(r.Gap), false)
	}
	r.finish()
	return r, nil
}
