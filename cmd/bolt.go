package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/component"
	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	boltSize            string
	boltCategory        string
	boltThreadsExcluded bool
	boltRows            int
	boltCols            int
	boltPitch           float64
	boltGauge           float64
	boltEccentricity    float64
	boltPlateThickness  float64
	boltPlateGrade      string
	boltEdgeV           float64
	boltEdgeH           float64
)

var boltCmd = &cobra.Command{
	Use:   "bolt",
	Short: "Bolt and bolt group capacity to AS 4100 Section 9",
	Long: `Calculate the shear and tension capacity of a bolt, and the
capacity of a rectangular bolt group for a force parallel to its rows.

With --plate-thickness the ply in bearing, tear-out and block shear
are checked and the governing connection capacity is reported.

Bolt categories: 4.6/S, 8.8/S, 8.8/TB, 8.8/TF

Examples:
  asdesign bolt --size M20 --category 8.8/S
  asdesign bolt --size M24 --rows 3 --cols 2 --pitch 70 --gauge 90
  asdesign bolt --size M20 --rows 3 --eccentricity 60 --plate-thickness 10`,
	RunE: runBolt,
}

func init() {
	rootCmd.AddCommand(boltCmd)

	// Bolt
	boltCmd.Flags().StringVarP(&boltSize, "size", "s", "M20", "Bolt size, M12 to M36")
	boltCmd.Flags().StringVarP(&boltCategory, "category", "c", "8.8/S", "Bolting category")
	boltCmd.Flags().BoolVar(&boltThreadsExcluded, "threads-excluded", false, "Threads excluded from the shear plane")

	// Group
	boltCmd.Flags().IntVar(&boltRows, "rows", 1, "Bolt rows along the force")
	boltCmd.Flags().IntVar(&boltCols, "cols", 1, "Bolt columns across the force")
	boltCmd.Flags().Float64Var(&boltPitch, "pitch", 70, "Row pitch (mm)")
	boltCmd.Flags().Float64Var(&boltGauge, "gauge", 70, "Column gauge (mm)")
	boltCmd.Flags().Float64VarP(&boltEccentricity, "eccentricity", "e", 0, "Force eccentricity from the group centroid (mm)")

	// Ply
	boltCmd.Flags().Float64Var(&boltPlateThickness, "plate-thickness", 0, "Ply thickness (mm), 0 skips the ply checks")
	boltCmd.Flags().StringVar(&boltPlateGrade, "plate-grade", "GR250", "Ply steel grade (AS 3678)")
	boltCmd.Flags().Float64Var(&boltEdgeV, "edge-v", 0, "Edge distance parallel to the force (mm), default the minimum")
	boltCmd.Flags().Float64Var(&boltEdgeH, "edge-h", 0, "Edge distance across the force (mm), default the minimum")
}

func runBolt(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	d, err := parseBoltSize(boltSize)
	if err != nil {
		return err
	}
	b, err := component.NewBolt(d, boltCategory, !boltThreadsExcluded)
	if err != nil {
		return rt.fail("bolt", err)
	}
	g, err := component.NewBoltGroup(b, boltRows, boltCols, boltPitch, boltGauge)
	if err != nil {
		return rt.fail("bolt group", err)
	}
	rt.log.Debug("bolt group", "bolt", b.Name, "rows", boltRows, "cols", boltCols, "e", boltEccentricity)

	rt.header("BOLT GROUP CAPACITY - AS 4100 SECTION 9")
	if err := rt.write("Bolt group", g.Attributes()); err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("φV_f   = %8.1f kN per bolt", b.PhiVf),
		fmt.Sprintf("φN_tf  = %8.1f kN per bolt", b.PhiNtf),
		fmt.Sprintf("φV_df  = %8.1f kN at e = %g mm", g.PhiVdfEccentric(boltEccentricity), boltEccentricity),
	}

	if boltPlateThickness > 0 {
		p, err := component.NewPlate(g.DepthMin, boltPlateThickness, boltPlateGrade)
		if err != nil {
			return rt.fail("ply", err)
		}
		aev, aeh := boltEdgeV, boltEdgeH
		if aev == 0 {
			aev = b.EdgeMin
		}
		if aeh == 0 {
			aeh = b.EdgeMin
		}
		ply, err := g.CheckPly(p, aev, aeh, boltEccentricity)
		if err != nil {
			return rt.fail("ply", err)
		}
		if err := rt.write("Ply", ply.Attributes()); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("φV     = %8.1f kN governing", ply.PhiV))
	}

	fmt.Fprintln(rt.out, diagram.DrawSummaryBox(g.Name, lines))
	return nil
}

// parseBoltSize accepts "M20", "m20" or "20"
func parseBoltSize(s string) (float64, error) {
	v := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "M")
	d, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("bolt size %q: %w", s, component.ErrUnknownBolt)
	}
	return d, nil
}
