package cmd

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/alexiusacademia/asdesign/internal/member"
	"github.com/spf13/cobra"
)

var (
	steelCurve           steelFlags
	steelCurveMaxLength  float64
	steelCurveSamples    int
	steelCurveExportFile string
)

var steelCurveCmd = &cobra.Command{
	Use:   "curve [section]",
	Short: "Plot member compression capacity against length",
	Long: `Plot the design member compression capacity φN_c about both axes
against the member length, from zero to --max-length.

Examples:
  asdesign steel curve 310UC96.8
  asdesign steel curve 150x5SHS --max-length 6000 -o curve.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSteelCurve,
}

func init() {
	steelCmd.AddCommand(steelCurveCmd)

	steelCurve.register(steelCurveCmd.Flags())
	steelCurveCmd.Flags().Float64Var(&steelCurveMaxLength, "max-length", 0, "Longest member length plotted (mm, default from config)")
	steelCurveCmd.Flags().IntVar(&steelCurveSamples, "samples", 0, "Number of lengths sampled (default from config)")
	steelCurveCmd.Flags().StringVarP(&steelCurveExportFile, "output", "o", "", "Export curve to file (png, svg, pdf)")
}

func runSteelCurve(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	sec, row, err := rt.resolveSection(args, steelCurve.file)
	if err != nil {
		return rt.fail("load section", err)
	}
	mat, err := steelMaterial(sec, row, steelCurve.grade, steelCurve.matType)
	if err != nil {
		return rt.fail("steel material", err)
	}
	in, err := steelCurve.inputs(rt.cfg.Steel.Phi)
	if err != nil {
		return err
	}
	m, err := member.NewSteelMember(sec, mat, in)
	if err != nil {
		return rt.fail("steel member", err)
	}

	maxLength := rt.cfg.Diagram.MaxLength
	if steelCurveMaxLength > 0 {
		maxLength = steelCurveMaxLength
	}
	samples := rt.cfg.Diagram.Samples
	if steelCurveSamples > 0 {
		samples = steelCurveSamples
	}
	rt.log.Debug("column curve", "section", sec.Name, "max_length", maxLength, "samples", samples)

	data, err := diagram.ColumnCurve(m, maxLength, samples)
	if err != nil {
		return rt.fail("column curve", err)
	}

	rt.header("MEMBER COMPRESSION CAPACITY - AS 4100 Cl 6.3")
	fmt.Fprintln(rt.out, diagram.ASCIIColumnCurve(data, rt.cfg.Diagram.Height))
	fmt.Fprintln(rt.out)

	if steelCurveExportFile != "" {
		if err := diagram.ExportColumnCurve(data, steelCurveExportFile); err != nil {
			return rt.fail("export curve", err)
		}
		fmt.Fprintf(rt.out, "  Curve exported to: %s\n\n", steelCurveExportFile)
	}
	return nil
}
