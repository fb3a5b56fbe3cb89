package cmd

import (
	"github.com/spf13/cobra"
)

var timberCmd = &cobra.Command{
	Use:   "timber",
	Short: "Timber member capacity to AS 1720.1",
	Long: `Compute the design capacities of a rectangular sawn or glulam
timber member to AS 1720.1.

Subcommands:
  check  - Bending, shear, compression, tension and bearing capacities

Lengths are in mm, forces in kN and moments in kNm.`,
}

func init() {
	rootCmd.AddCommand(timberCmd)
}
