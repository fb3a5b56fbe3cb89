package component

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/asdesign/internal/report"
)

// PlyCheck is the capacity of a bolt group through one ply for a force
// parallel to the rows at eccentricity E (mm). Forces in kN.
type PlyCheck struct {
	Name string
	E    float64

	Zb, Zev, Zeh float64

	PhiVdf float64 // Bolts in shear
	PhiVb  float64 // Ply bearing
	PhiVpv float64 // Tear-out parallel to the force
	PhiVph float64 // Tear-out across the force, zero when not applicable
	PhiRbs float64 // Block shear
	PhiV   float64 // Governing
}

// CheckPly evaluates the group in plate p with edge distances aev
// (parallel to the force) and aeh (across it)
func (g *BoltGroup) CheckPly(p *Plate, aev, aeh, e float64) (*PlyCheck, error) {
	if aev < g.Bolt.EdgeMin || aeh < g.Bolt.EdgeMin {
		return nil, fmt.Errorf("bolt group: edge distance %gx%g below minimum %g", aev, aeh, g.Bolt.EdgeMin)
	}
	c := &PlyCheck{
		Name: fmt.Sprintf("%s in %s", g.Name, p.Name),
		E:    e,
		Zb:   g.EccentricityFactor(e),
		Zev:  g.VerticalTearOutFactor(e),
		Zeh:  g.HorizontalTearOutFactor(e),
	}
	ay, ax := g.TearOutLengths(aev, aeh)
	lv, lt := g.BlockShearPaths(aev, aeh)

	c.PhiVdf = c.Zb * g.PhiVdf
	c.PhiVb = c.Zb * p.PlyBearing(g.N, g.Bolt.Diameter)
	c.PhiVpv = c.Zev * p.TearOut(g.N, ay)
	c.PhiVph = c.Zeh * p.TearOut(g.N, ax)
	c.PhiRbs = p.BlockShear(lt, lv)

	all := []float64{c.PhiVdf, c.PhiVb, c.PhiVpv, c.PhiRbs}
	if c.PhiVph > 0 {
		all = append(all, c.PhiVph)
	}
	c.PhiV = floats.Min(all)
	return c, nil
}

// Attributes lists the ply capacities
func (c *PlyCheck) Attributes() []report.Attribute {
	return []report.Attribute{
		report.Str("connection", c.Name, "bolt group and ply"),
		report.Num("e", c.E, "mm", "load eccentricity", ""),
		report.Num("Z_b", c.Zb, "", "group eccentricity factor", ""),
		report.Num("Z_ev", c.Zev, "", "tear-out factor parallel to force", ""),
		report.Num("Z_eh", c.Zeh, "", "tear-out factor across force", ""),
		report.Num("φV_df", c.PhiVdf, "kN", "bolt group shear capacity", "9.3.2.1"),
		report.Num("φV_b", c.PhiVb, "kN", "ply bearing capacity", "9.3.2.4"),
		report.Num("φV_pv", c.PhiVpv, "kN", "ply tear-out parallel to force", "9.3.2.4"),
		report.Num("φV_ph", c.PhiVph, "kN", "ply tear-out across force", "9.3.2.4"),
		report.Num("φR_bs", c.PhiRbs, "kN", "block shear capacity", "AISC J4.3"),
		report.Num("φV", c.PhiV, "kN", "governing connection capacity", ""),
	}
}
