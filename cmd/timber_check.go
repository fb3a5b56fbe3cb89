package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/asdesign/internal/actions"
	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/member"
	"github.com/spf13/cobra"
)

var (
	timberCheckDepth      float64
	timberCheckBreadth    float64
	timberCheckGrade      string
	timberCheckSeasoned   bool
	timberCheckDuration   string
	timberCheckCategory   int
	timberCheckLay        float64
	timberCheckContinuous bool
	timberCheckLx         float64
	timberCheckLy         float64
	timberCheckBearing    float64
	timberCheckK6         float64
	timberCheckK9         float64
	timberCheckEMC        float64

	// Unfactored bending moments (kNm)
	timberCheckMoments actions.Loads
)

var timberCheckCmd = &cobra.Command{
	Use:   "check [section]",
	Short: "Check the capacities of a timber member",
	Long: `Calculate the design capacities of a rectangular timber member:

  Bending         φM    (Cl 3.2)
  Shear           φV    (Cl 3.2.5)
  Compression     φN_c  about both axes (Cl 3.3)
  Tension         φN_t  (Cl 3.4)
  Bearing         φN_p  (Cl 3.2.6)

The section is a library name such as "90x45 (MGP10)", or explicit
--depth, --breadth and --grade.

Examples:
  asdesign timber check "190x45 (MGP10)" --lay 1200
  asdesign timber check --depth 240 --breadth 45 --grade MGP12 --lx 2400 --ly 600
  asdesign timber check "140x45 (MGP10)" --duration 5months --bearing 45
  asdesign timber check "240x45 (MGP10)" --lay 600 --m-g 2.1 --m-q 3.4

With --m-g, --m-q or --m-w each AS/NZS 1170.0 combination is checked
against φM at the load duration it implies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimberCheck,
}

func init() {
	timberCmd.AddCommand(timberCheckCmd)

	// Section
	timberCheckCmd.Flags().Float64Var(&timberCheckDepth, "depth", 0, "Section depth d (mm)")
	timberCheckCmd.Flags().Float64Var(&timberCheckBreadth, "breadth", 0, "Section breadth b (mm)")
	timberCheckCmd.Flags().StringVar(&timberCheckGrade, "grade", "", "Stress grade, e.g. MGP10, F17, GL18")
	timberCheckCmd.Flags().BoolVar(&timberCheckSeasoned, "seasoned", true, "Seasoned timber")
	timberCheckCmd.Flags().Float64Var(&timberCheckEMC, "emc", 0, "Equilibrium moisture content (%) for k4")

	// Factors
	timberCheckCmd.Flags().StringVar(&timberCheckDuration, "duration", "", "Load duration: 5s, 5min, 5h, 5days, 5months, permanent (default from config)")
	timberCheckCmd.Flags().IntVar(&timberCheckCategory, "category", 0, "Structural category 1-3 (default from config timber.category)")
	timberCheckCmd.Flags().Float64Var(&timberCheckK6, "k6", 1, "Temperature factor")
	timberCheckCmd.Flags().Float64Var(&timberCheckK9, "k9", 1, "Strength sharing factor")

	// Restraints
	timberCheckCmd.Flags().Float64Var(&timberCheckLay, "lay", 0, "Spacing of lateral restraints to the compression edge (mm)")
	timberCheckCmd.Flags().BoolVar(&timberCheckContinuous, "continuous", false, "Compression edge continuously restrained")
	timberCheckCmd.Flags().Float64Var(&timberCheckLx, "lx", 0, "Restraint spacing against buckling about x (mm)")
	timberCheckCmd.Flags().Float64Var(&timberCheckLy, "ly", 0, "Restraint spacing against buckling about y (mm)")
	timberCheckCmd.Flags().Float64Var(&timberCheckBearing, "bearing", 0, "Bearing length perpendicular to grain (mm)")

	// Actions
	timberCheckCmd.Flags().Float64Var(&timberCheckMoments.Dead, "m-g", 0, "Bending moment from permanent actions (kNm)")
	timberCheckCmd.Flags().Float64Var(&timberCheckMoments.Live, "m-q", 0, "Bending moment from imposed actions (kNm)")
	timberCheckCmd.Flags().Float64Var(&timberCheckMoments.Wind, "m-w", 0, "Bending moment from ultimate wind actions (kNm)")
}

func runTimberCheck(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	sec, mat, err := timberSection(rt, args)
	if err != nil {
		return rt.fail("load section", err)
	}
	if cmd.Flags().Changed("emc") {
		mat = mat.MoistureAdjusted(timberCheckEMC, math.Min(sec.B, sec.D))
	}

	in, err := timberInputs(rt)
	if err != nil {
		return err
	}
	rt.log.Debug("timber member inputs",
		"section", sec.Name, "grade", mat.Grade, "duration", in.Duration.String(),
		"category", int(in.Category), "lay", in.Lay, "lx", in.Lx, "ly", in.Ly)

	m, err := member.NewTimberMember(sec, mat, in)
	if err != nil {
		return rt.fail("timber member", err)
	}
	caps, err := m.Resolve()
	if err != nil {
		return rt.fail("timber member", err)
	}

	rt.header("TIMBER MEMBER CAPACITY - AS 1720.1")
	if err := rt.write("Timber", mat.Attributes()); err != nil {
		return err
	}
	if err := rt.write("Member capacities", caps.Attributes()); err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("φM   = %8.2f kNm", caps.PhiM),
		fmt.Sprintf("φV   = %8.2f kN", caps.PhiV),
		fmt.Sprintf("φN_c = %8.2f kN", caps.PhiNc),
		fmt.Sprintf("φN_t = %8.2f kN", caps.PhiNt),
	}
	if in.BearingLength > 0 {
		lines = append(lines, fmt.Sprintf("φN_p = %8.2f kN", caps.PhiNp))
	}

	if !timberCheckMoments.IsZero() {
		g, err := checkTimberBending(rt, m, timberCheckMoments)
		if err != nil {
			return rt.fail("bending combinations", err)
		}
		lines = append(lines, fmt.Sprintf("M*/φM = %6.3f (%s)", g.Ratio, g.Description))
	}
	fmt.Fprintln(rt.out, diagram.DrawSummaryBox(caps.Name, lines))
	return nil
}

// timberSection resolves a library timber section, or builds one from
// --depth, --breadth and --grade
func timberSection(rt *runtime, args []string) (*geometry.Section, *material.Timber, error) {
	if len(args) == 1 {
		sec, row, err := rt.loadSection(args[0])
		if err != nil {
			return nil, nil, err
		}
		if timberCheckGrade != "" {
			row["grade"] = timberCheckGrade
		}
		mat, err := material.TimberForSection(rt.provider, row)
		if err != nil {
			return nil, nil, err
		}
		return sec, mat, nil
	}

	if timberCheckGrade == "" {
		return nil, nil, fmt.Errorf("a section name or --depth, --breadth and --grade are required")
	}
	sec, err := geometry.New(geometry.Dimensions{
		Section: fmt.Sprintf("%gx%g", timberCheckDepth, timberCheckBreadth),
		Type:    geometry.Board.String(),
		D:       timberCheckDepth,
		B:       timberCheckBreadth,
	})
	if err != nil {
		return nil, nil, err
	}
	p, err := rt.provider.Lookup(library.TimberGrades, timberCheckGrade)
	if err != nil {
		return nil, nil, err
	}
	mat, err := material.TimberFromParams(p, timberCheckSeasoned)
	if err != nil {
		return nil, nil, err
	}
	return sec, mat, nil
}

// timberInputs applies flags over the configured timber defaults
func timberInputs(rt *runtime) (member.TimberInputs, error) {
	in := member.DefaultTimberInputs()
	in.Duration = rt.cfg.TimberDuration()
	if timberCheckDuration != "" {
		d, err := as1720.ParseDuration(timberCheckDuration)
		if err != nil {
			return in, err
		}
		in.Duration = d
	}
	in.Category = as1720.Category(rt.cfg.Timber.Category)
	if timberCheckCategory != 0 {
		in.Category = as1720.Category(timberCheckCategory)
	}
	in.CreepRatio = rt.cfg.Timber.CreepRatio

	in.Lay = timberCheckLay
	in.Continuous = timberCheckContinuous
	in.Lx, in.Ly = timberCheckLx, timberCheckLy
	in.BearingLength = timberCheckBearing
	in.K6, in.K9 = timberCheckK6, timberCheckK9
	return in, nil
}

// checkTimberBending resolves φM at the duration of every strength
// combination and prints the ratios. The member inputs are restored.
func checkTimberBending(rt *runtime, m *member.TimberMember, moments actions.Loads) (actions.Check, error) {
	orig := m.Inputs().Duration
	defer m.Update(func(in *member.TimberInputs) { in.Duration = orig })

	checks, err := actions.Evaluate(moments, actions.StrengthCombinations, func(d as1720.Duration) (float64, error) {
		m.Update(func(in *member.TimberInputs) { in.Duration = d })
		c, err := m.Resolve()
		if err != nil {
			return 0, err
		}
		return c.PhiM, nil
	})
	if err != nil {
		return actions.Check{}, err
	}
	if err := rt.writeChecks("Bending combinations", checks, true); err != nil {
		return actions.Check{}, err
	}
	return actions.GoverningCheck(checks), nil
}
