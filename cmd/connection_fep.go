package cmd

import (
	"github.com/alexiusacademia/asdesign/internal/connection"
	"github.com/spf13/cobra"
)

var connectionFEP connectionFlags

var connectionFEPCmd = &cobra.Command{
	Use:   "fep [section]",
	Short: "Flexible end plate connection",
	Long: `Check a flexible end plate welded to both faces of the beam web
and bolted to the support through two columns of bolts:

  φV_a  weld
  φV_b  bolt group and plate bearing and tear-out
  φV_c  plate shear, both sides of the web
  φV_d  plate block shear, both sides of the web
  φV_e  beam web shear over the plate depth
  φV_f  beam web shear at the connection
  φV_g  beam bending at the cope (coped)

Examples:
  asdesign connection fep 460UB82.1 --cope SWC --top-cope 65 --cope-length 120 --rows 4 --gauge 90 --weld-leg 6
  asdesign connection fep 360UB50.7 --rows 3 --gauge 90`,
	Args: cobra.ExactArgs(1),
	RunE: runConnectionFEP,
}

func init() {
	connectionCmd.AddCommand(connectionFEPCmd)
	connectionFEP.register(connectionFEPCmd.Flags(), 2, 150)
}

func runConnectionFEP(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	parts, err := connectionFEP.build(rt, args)
	if err != nil {
		return err
	}
	c := &connection.FlexibleEndPlate{
		Member: parts.member,
		Bolts:  parts.bolts,
		Plate:  parts.plate,
		Weld:   parts.weld,
		Layout: connectionFEP.layout,
	}
	r, err := c.Check()
	if err != nil {
		return rt.fail("flexible end plate", err)
	}

	rt.header("FLEXIBLE END PLATE CONNECTION - AS 4100")
	return writeConnection(rt, parts, r)
}
