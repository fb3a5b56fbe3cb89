package cmd

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/diagram"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/slenderness"
	"github.com/spf13/cobra"
)

var (
	sectionShowFile       string
	sectionShowGrade      string
	sectionShowMatType    string
	sectionShowDiagram    bool
	sectionShowRows       int
	sectionShowExportFile string
)

var sectionShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show section properties",
	Long: `Show the geometric properties of a section. For steel sections the
material strengths and plate element slenderness are also reported;
for timber sections the stress grade is reported.

Examples:
  asdesign section show 460UB74.6
  asdesign section show 200x5SHS --grade C450 --diagram
  asdesign section show --file angle.yaml -o angle.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSectionShow,
}

func init() {
	sectionCmd.AddCommand(sectionShowCmd)

	sectionShowCmd.Flags().StringVarP(&sectionShowFile, "file", "f", "", "Section definition file (json, yaml, toml)")
	sectionShowCmd.Flags().StringVar(&sectionShowGrade, "grade", "", "Steel grade, overrides the library grade")
	sectionShowCmd.Flags().StringVar(&sectionShowMatType, "mat-type", "", "Steel product type (HotRolledSection, HotRolledPlate, WeldedSection, HollowSection)")

	// Diagram options
	sectionShowCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII section outline")
	sectionShowCmd.Flags().IntVar(&sectionShowRows, "rows", 16, "Height of the ASCII outline in rows")
	sectionShowCmd.Flags().StringVarP(&sectionShowExportFile, "output", "o", "", "Export outline to file (png, svg, pdf)")
}

func runSectionShow(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	sec, row, err := rt.resolveSection(args, sectionShowFile)
	if err != nil {
		return rt.fail("load section", err)
	}

	rt.header(fmt.Sprintf("SECTION PROPERTIES - %s (%s)", sec.Name, sec.Type))
	if err := rt.write("Geometry", sec.Attributes()); err != nil {
		return err
	}

	if sec.Type == geometry.Board {
		if row.String("grade") != "" {
			tm, err := material.TimberForSection(rt.provider, row)
			if err != nil {
				return rt.fail("timber grade", err)
			}
			if err := rt.write("Timber", tm.Attributes()); err != nil {
				return err
			}
		}
	} else if row.String("grade") != "" || sectionShowGrade != "" {
		mat, err := steelMaterial(sec, row, sectionShowGrade, sectionShowMatType)
		if err != nil {
			return rt.fail("steel material", err)
		}
		if err := rt.write("Material", mat.Attributes()); err != nil {
			return err
		}
		res, err := slenderness.Evaluate(sec, mat)
		if err != nil {
			return rt.fail("slenderness", err)
		}
		if err := rt.write("Section slenderness", res.Attributes()); err != nil {
			return err
		}
	}

	if sectionShowDiagram {
		fmt.Fprintln(rt.out, "SECTION OUTLINE:")
		fmt.Fprintln(rt.out, "───────────────────────────────────────────────────────────────")
		fmt.Fprintln(rt.out, diagram.DrawASCIISection(sec, sectionShowRows))
	}

	if sectionShowExportFile != "" {
		if err := diagram.ExportSectionOutline(sec, sectionShowExportFile); err != nil {
			return rt.fail("export outline", err)
		}
		fmt.Fprintf(rt.out, "  Outline exported to: %s\n\n", sectionShowExportFile)
	}
	return nil
}
