package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/spf13/cobra"
)

var sectionListFilter string

var sectionListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List library sections",
	Long: `List the names served by the section library.

Categories:
  open     - hot-rolled and welded open sections (UB, UC, WB, WC, PFC, BT, CT)
  hollow   - square, rectangular and circular hollow sections
  timber   - sawn and glulam timber sections
  grades   - timber stress grades

Without a category, the number of rows in each category is printed.

Examples:
  asdesign section list
  asdesign section list open --filter UB
  asdesign section list timber`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSectionList,
}

func init() {
	sectionCmd.AddCommand(sectionListCmd)

	sectionListCmd.Flags().StringVar(&sectionListFilter, "filter", "", "Only list names containing this text")
}

func runSectionList(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	if len(args) == 0 {
		w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Category\tRows\n")
		fmt.Fprintf(w, "  ────────\t────\n")
		for _, cat := range library.Categories() {
			names, err := rt.provider.Names(cat)
			if err != nil {
				return rt.fail("list "+cat.String(), err)
			}
			fmt.Fprintf(w, "  %s\t%d\n", cat, len(names))
		}
		return w.Flush()
	}

	cat, err := library.ParseCategory(args[0])
	if err != nil {
		return err
	}
	names, err := rt.provider.Names(cat)
	if err != nil {
		return rt.fail("list "+cat.String(), err)
	}
	names = filterNames(names, sectionListFilter)
	rt.log.Debug("listing sections", "category", cat.String(), "count", len(names))

	const perRow = 4
	w := tabwriter.NewWriter(rt.out, 0, 0, 3, ' ', 0)
	for i, n := range names {
		fmt.Fprintf(w, "  %s\t", n)
		if (i+1)%perRow == 0 || i == len(names)-1 {
			fmt.Fprintln(w)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "\n  %d sections\n", len(names))
	return nil
}

func filterNames(names []string, filter string) []string {
	if filter == "" {
		return names
	}
	key := strings.ToLower(filter)
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), key) {
			out = append(out, n)
		}
	}
	return out
}
