package cmd

import (
	"github.com/alexiusacademia/asdesign/internal/connection"
	"github.com/spf13/cobra"
)

var connectionWSP connectionFlags

var connectionWSPCmd = &cobra.Command{
	Use:   "wsp [section]",
	Short: "Web side plate connection",
	Long: `Check a web side plate welded to the support and bolted to the
web of the supported beam:

  φV_a  weld, eccentric
  φV_b  bolt group and ply bearing and tear-out
  φV_c  plate shear
  φV_d  plate bending at the bolt group eccentricity
  φV_e  plate block shear
  φV_f  beam web shear at the connection
  φV_g  beam web block shear (coped)
  φV_h  beam bending at the cope (coped)

Examples:
  asdesign connection wsp 250UB25.7 --cope SWC --top-cope 65 --cope-length 120 --rows 2 --cols 2 --plate-width 180
  asdesign connection wsp 360UB50.7 --rows 3 --cols 1 --plate-width 90 --weld-leg 6`,
	Args: cobra.ExactArgs(1),
	RunE: runConnectionWSP,
}

func init() {
	connectionCmd.AddCommand(connectionWSPCmd)
	connectionWSP.register(connectionWSPCmd.Flags(), 1, 90)
}

func runConnectionWSP(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	parts, err := connectionWSP.build(rt, args)
	if err != nil {
		return err
	}
	c := &connection.WebSidePlate{
		Member: parts.member,
		Bolts:  parts.bolts,
		Plate:  parts.plate,
		Weld:   parts.weld,
		Layout: connectionWSP.layout,
	}
	r, err := c.Check()
	if err != nil {
		return rt.fail("web side plate", err)
	}

	rt.header("WEB SIDE PLATE CONNECTION - AS 4100")
	return writeConnection(rt, parts, r)
}
