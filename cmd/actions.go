package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/asdesign/internal/actions"
	"github.com/spf13/cobra"
)

var (
	// Unfactored action effects (kN or kNm)
	actionDead       float64
	actionLive       float64
	actionWind       float64
	actionEarthquake float64

	// Options
	actionShowAll bool
	actionGravity bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Calculate design actions using AS/NZS 1170.0 combinations",
	Long: `Calculate the design action effect (S*) from AS/NZS 1170.0 Cl 4.2.2
strength combinations.

Provide unfactored action effects of one kind (all moments or all forces)
and this command will compute the factored value for every combination,
with the timber load duration each combination implies.

Action Types:
  G  - Permanent action
  Q  - Imposed action
  Wu - Ultimate wind action
  Eu - Ultimate earthquake action

Examples:
  # Permanent and imposed actions
  asdesign actions --dead 50 --live 30

  # With wind uplift
  asdesign actions --dead 10 --wind -40 --all`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().Float64VarP(&actionDead, "dead", "g", 0, "Permanent action effect G")
	actionsCmd.Flags().Float64VarP(&actionLive, "live", "q", 0, "Imposed action effect Q")
	actionsCmd.Flags().Float64VarP(&actionWind, "wind", "w", 0, "Ultimate wind action effect Wu")
	actionsCmd.Flags().Float64VarP(&actionEarthquake, "earthquake", "e", 0, "Ultimate earthquake action effect Eu")

	actionsCmd.Flags().BoolVarP(&actionShowAll, "all", "a", false, "Show all combination results")
	actionsCmd.Flags().BoolVar(&actionGravity, "gravity", false, "Use gravity combinations only (G and Q)")
}

func runActions(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	loads := actions.Loads{
		Dead:       actionDead,
		Live:       actionLive,
		Wind:       actionWind,
		Earthquake: actionEarthquake,
	}
	if loads.IsZero() {
		return errors.New("provide at least one unfactored action, see 'asdesign actions --help'")
	}

	combos := actions.StrengthCombinations
	if actionGravity {
		combos = actions.GravityCombinations
	}
	worst, governing := actions.Governing(loads, combos)
	rt.log.Debug("design action", "combination", governing.Description, "value", worst)

	rt.header("AS/NZS 1170.0 DESIGN ACTIONS")

	fmt.Fprintln(rt.out, "UNFACTORED ACTIONS:")
	fmt.Fprintln(rt.out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Permanent (G):\t%.2f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Imposed (Q):\t%.2f\n", loads.Live)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind (Wu):\t%.2f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake (Eu):\t%.2f\n", loads.Earthquake)
	}
	w.Flush()
	fmt.Fprintln(rt.out)

	if actionShowAll {
		fmt.Fprintln(rt.out, "LOAD COMBINATIONS (AS/NZS 1170.0 Cl 4.2.2):")
		fmt.Fprintln(rt.out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tS*\tDuration\n")
		fmt.Fprintf(w, "  ─\t───────────\t──\t────────\n")
		for _, c := range combos {
			marker := ""
			if c.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%s%s\n", c.ID, c.Description, c.Factored(loads), c.Duration, marker)
		}
		w.Flush()
		fmt.Fprintln(rt.out)
	}

	fmt.Fprintln(rt.out, "RESULT:")
	fmt.Fprintln(rt.out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(rt.out, "  Governing Combination: (%s) %s\n", governing.ID, governing.Description)
	fmt.Fprintln(rt.out)
	fmt.Fprintf(rt.out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(rt.out, "  ║  DESIGN ACTION S* = %-14.2f║\n", worst)
	fmt.Fprintf(rt.out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(rt.out)
	return nil
}
