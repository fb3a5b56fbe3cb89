package cmd

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/component"
	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	weldLeg          float64
	weldCategory     string
	weldClass        string
	weldDepth        float64
	weldEccentricity float64
	weldPlate        float64
	weldPlateGrade   string
)

var weldCmd = &cobra.Command{
	Use:   "weld",
	Short: "Fillet weld capacity to AS 4100 Cl 9.7.3",
	Long: `Calculate the capacity per unit length of a fillet weld and,
with --depth, the capacity of a plate welded down both faces.

With --plate-thickness the shear and bending capacity of the plate
at the weld eccentricity are also reported.

Weld categories: SP, GP
Electrode classes: E41XX, E48XX

Examples:
  asdesign weld --leg 6
  asdesign weld --leg 8 --category GP --depth 300 --eccentricity 50
  asdesign weld --leg 6 --depth 250 -e 80 --plate-thickness 10`,
	RunE: runWeld,
}

func init() {
	rootCmd.AddCommand(weldCmd)

	weldCmd.Flags().Float64VarP(&weldLeg, "leg", "l", 6, "Fillet leg size (mm)")
	weldCmd.Flags().StringVarP(&weldCategory, "category", "c", "SP", "Weld category")
	weldCmd.Flags().StringVar(&weldClass, "class", "E48XX", "Electrode class")
	weldCmd.Flags().Float64VarP(&weldDepth, "depth", "d", 0, "Welded plate depth (mm)")
	weldCmd.Flags().Float64VarP(&weldEccentricity, "eccentricity", "e", 0, "Force eccentricity from the weld line (mm)")
	weldCmd.Flags().Float64Var(&weldPlate, "plate-thickness", 0, "Plate thickness (mm)")
	weldCmd.Flags().StringVar(&weldPlateGrade, "plate-grade", "GR250", "Plate steel grade (AS 3678)")
}

func runWeld(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	w, err := component.NewWeld(weldLeg, weldCategory, weldClass)
	if err != nil {
		return rt.fail("weld", err)
	}
	rt.log.Debug("weld", "weld", w.Name, "depth", weldDepth, "e", weldEccentricity)

	rt.header("FILLET WELD CAPACITY - AS 4100 Cl 9.7.3")
	if err := rt.write("Weld", w.Attributes()); err != nil {
		return err
	}

	lines := []string{fmt.Sprintf("φv_w = %8.3f kN/mm", w.PhiVw)}
	if weldDepth > 0 {
		lines = append(lines,
			fmt.Sprintf("φV_w = %8.1f kN over %g mm, both faces", w.PlateCapacity(weldDepth), weldDepth),
			fmt.Sprintf("φV_w = %8.1f kN at e = %g mm", w.EccentricPlateCapacity(weldDepth, weldEccentricity), weldEccentricity),
		)
	}

	if weldPlate > 0 && weldDepth > 0 {
		p, err := component.NewPlate(weldDepth, weldPlate, weldPlateGrade)
		if err != nil {
			return rt.fail("plate", err)
		}
		if err := rt.write("Plate", p.Attributes()); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("φV_p = %8.1f kN plate at e = %g mm", p.EccentricShear(weldDepth, weldEccentricity), weldEccentricity))
	}

	fmt.Fprintln(rt.out, diagram.DrawSummaryBox(w.Name, lines))
	return nil
}
