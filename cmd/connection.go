package cmd

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/component"
	"github.com/alexiusacademia/asdesign/internal/connection"
	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var connectionCmd = &cobra.Command{
	Use:   "connection",
	Short: "Simple beam shear connections to AS 4100",
	Long: `Design a simple shear connection at the end of a beam.

Subcommands:
  wsp  - Web side plate welded to the support, bolted to the beam web
  fep  - Flexible end plate welded to the beam web, bolted to the support

The beam may be uncoped (O), single coped (SWC) or double coped (DWC).
Lengths are in mm and forces in kN.`,
}

func init() {
	rootCmd.AddCommand(connectionCmd)
}

// connectionFlags are the inputs shared by the connection subcommands
type connectionFlags struct {
	grade, matType string

	cope                 string
	topCope, bottomCope  float64
	copeLength           float64
	boltSize, category   string
	rows, cols           int
	pitch, gauge         float64
	plateWidth, plateT   float64
	plateGrade           string
	weldLeg              float64
	weldCategory, weldCl string
	layout               connection.Layout
}

func (f *connectionFlags) register(fs *pflag.FlagSet, cols int, width float64) {
	def := connection.DefaultLayout()
	fs.StringVar(&f.grade, "grade", "", "Beam steel grade, overrides the library grade")
	fs.StringVar(&f.matType, "mat-type", "", "Beam steel product type")

	// Cope
	fs.StringVar(&f.cope, "cope", "O", "Beam end: O, SWC or DWC")
	fs.Float64Var(&f.topCope, "top-cope", 0, "Top cope depth d_ct (mm)")
	fs.Float64Var(&f.bottomCope, "bottom-cope", 0, "Bottom cope depth d_cb (mm)")
	fs.Float64Var(&f.copeLength, "cope-length", 0, "Cope length L_c (mm)")

	// Bolts
	fs.StringVarP(&f.boltSize, "size", "s", "M20", "Bolt size")
	fs.StringVarP(&f.category, "category", "c", "8.8/S", "Bolting category")
	fs.IntVar(&f.rows, "rows", 3, "Bolt rows")
	fs.IntVar(&f.cols, "cols", cols, "Bolt columns")
	fs.Float64Var(&f.pitch, "pitch", 70, "Row pitch (mm)")
	fs.Float64Var(&f.gauge, "gauge", 70, "Column gauge (mm)")

	// Plate and weld
	fs.Float64Var(&f.plateWidth, "plate-width", width, "Plate width (mm)")
	fs.Float64Var(&f.plateT, "plate-thickness", 10, "Plate thickness (mm)")
	fs.StringVar(&f.plateGrade, "plate-grade", "GR250", "Plate steel grade (AS 3678)")
	fs.Float64Var(&f.weldLeg, "weld-leg", 8, "Fillet weld leg (mm)")
	fs.StringVar(&f.weldCategory, "weld-category", "SP", "Weld category")
	fs.StringVar(&f.weldCl, "weld-class", "E48XX", "Electrode class")

	// Layout
	fs.Float64Var(&f.layout.TopOffset, "top-offset", def.TopOffset, "Top of beam to the top bolt row (mm)")
	fs.Float64Var(&f.layout.EdgeV, "edge-v", def.EdgeV, "Plate edge to the end bolt rows (mm)")
	fs.Float64Var(&f.layout.MemberEdge, "edge-member", def.MemberEdge, "Beam end to the nearest bolt column (mm)")
	fs.Float64Var(&f.layout.WeldToBolt, "weld-to-bolt", def.WeldToBolt, "Support weld to the first bolt column (mm)")
}

// connectionParts holds the resolved members of a connection
type connectionParts struct {
	member *connection.CopedMember
	bolts  *component.BoltGroup
	plate  *component.Plate
	weld   *component.Weld
}

func (f *connectionFlags) build(rt *runtime, args []string) (*connectionParts, error) {
	sec, row, err := rt.resolveSection(args, "")
	if err != nil {
		return nil, rt.fail("load section", err)
	}
	mat, err := steelMaterial(sec, row, f.grade, f.matType)
	if err != nil {
		return nil, rt.fail("steel material", err)
	}
	ct, err := connection.ParseCopeType(f.cope)
	if err != nil {
		return nil, err
	}
	cm, err := connection.NewCopedMember(sec, mat, connection.Cope{
		Type: ct, Top: f.topCope, Bottom: f.bottomCope, Length: f.copeLength,
	})
	if err != nil {
		return nil, rt.fail("coped member", err)
	}

	d, err := parseBoltSize(f.boltSize)
	if err != nil {
		return nil, err
	}
	b, err := component.NewBolt(d, f.category, true)
	if err != nil {
		return nil, rt.fail("bolt", err)
	}
	g, err := component.NewBoltGroup(b, f.rows, f.cols, f.pitch, f.gauge)
	if err != nil {
		return nil, rt.fail("bolt group", err)
	}
	p, err := component.NewPlate(f.plateWidth, f.plateT, f.plateGrade)
	if err != nil {
		return nil, rt.fail("plate", err)
	}
	w, err := component.NewWeld(f.weldLeg, f.weldCategory, f.weldCl)
	if err != nil {
		return nil, rt.fail("weld", err)
	}
	rt.log.Debug("connection parts",
		"section", sec.Name, "cope", ct.String(), "bolts", g.Name, "plate", p.Name, "weld", w.Name)
	return &connectionParts{member: cm, bolts: g, plate: p, weld: w}, nil
}

// writeConnection prints the parts, the failure modes and a summary box
func writeConnection(rt *runtime, parts *connectionParts, r *connection.Result) error {
	if err := rt.write("Supported beam", parts.member.Attributes()); err != nil {
		return err
	}
	if err := rt.write("Bolt group", parts.bolts.Attributes()); err != nil {
		return err
	}
	if err := rt.write("Plate", parts.plate.Attributes()); err != nil {
		return err
	}
	if err := rt.write("Weld", parts.weld.Attributes()); err != nil {
		return err
	}
	if err := rt.write("Connection capacities", r.Attributes()); err != nil {
		return err
	}

	lines := make([]string, 0, len(r.Modes)+2)
	for _, m := range r.Modes {
		line := fmt.Sprintf("%-5s = %8.1f kN  %s", m.Symbol, m.Capacity, m.Description)
		if m.Symbol == r.Governing {
			line += "  ← GOVERNS"
		}
		lines = append(lines, line)
	}
	if r.DetailingOK() {
		lines = append(lines, "Detailing OK")
	} else {
		for _, d := range r.Detailing {
			rt.log.Warn("detailing", "connection", r.Name, "rule", d)
			lines = append(lines, "NG: "+d)
		}
	}
	fmt.Fprintln(rt.out, diagram.DrawSummaryBox(r.Name, lines))
	return nil
}
