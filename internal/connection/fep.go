package connection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/component"
)

// FlexibleEndPlate is a plate welded across the beam web and bolted to the
// support through two columns of bolts
type FlexibleEndPlate struct {
	Member *CopedMember
	Bolts  *component.BoltGroup
	Plate  *component.Plate
	Weld   *component.Weld
	Layout Layout
}

// Check computes the plate depth, the detailing rules and each failure mode
func (c *FlexibleEndPlate) Check() (*Result, error) {
	if err := c.Layout.check(); err != nil {
		return nil, err
	}
	l, g, p, cm := c.Layout, c.Bolts, c.Plate, c.Member
	b := g.Bolt

	if g.Cols != 2 {
		return nil, fmt.Errorf("flexible end plate: %d bolt columns, want 2: %w", g.Cols, ErrInvalidPlate)
	}
	aehE := (p.Width - g.WidthBetweenHoles()) / 2
	if aehE <= 0 {
		return nil, fmt.Errorf("flexible end plate: width %g mm does not reach the bolts: %w", p.Width, ErrInvalidPlate)
	}
	if g.Gauge <= cm.Section.Tw+2*c.Weld.Leg {
		return nil, fmt.Errorf("flexible end plate: gauge %g mm clashes with the web welds: %w", g.Gauge, ErrInvalidPlate)
	}
	r := &Result{
		Name:          fmt.Sprintf("FEP %s / %s / %s", cm.Section.Name, g.Name, p.Name),
		Type:          "FEP",
		Depth:         g.DepthBetweenHoles() + 2*l.EdgeV,
		Gap:           p.Thickness,
		MinBoltLength: cm.Section.Tw + p.Thickness,
	}
	di := r.Depth

	checkPlacement(r, cm, l, di)
	if l.EdgeV < b.EdgeMin {
		r.detail("a_ev = %g mm is less than the minimum edge distance %g mm", l.EdgeV, b.EdgeMin)
	}
	if aehE < b.EdgeMin {
		r.detail("a_eh = %g mm is less than the minimum edge distance %g mm", aehE, b.EdgeMin)
	}

	n := g.N
	ay, _ := g.TearOutLengths(l.EdgeV, aehE)
	vb := floats.Min([]float64{g.PhiVdf, p.PlyBearing(n, b.Diameter), p.TearOut(n, ay)})

	lv, lt := g.BlockShearPaths(l.EdgeV, aehE)

	r.add("φV_a", "weld", c.Weld.PlateCapacity(di), true)
	r.add("φV_b", "bolt group and plate in bearing", vb, true)
	r.add("φV_c", "plate in shear", 2*p.Shear(di), true)
	r.add("φV_d", "plate block shear", 2*p.BlockShear(lt, lv), true)
	r.add("φV_e", "beam web shear over the plate", cm.WebShearAtPlate(di), true)
	r.add("φV_f", "beam web shear at the connection", cm.PhiVws, true)
	if cm.Cope.Type != Uncoped {
		r.add("φV_g", "beam bending at the cope", cm.CopeBending(r.Gap), false)
	}
	r.finish()
	return r, nil
}
