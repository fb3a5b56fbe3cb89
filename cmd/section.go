package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section library and section properties",
	Long: `List library sections and show the geometric properties of a
section, either from the library or from a definition file.

Subcommands:
  list  - List the section names of a library category
  show  - Show the properties, slenderness and outline of a section

A definition file (JSON, YAML or TOML) uses the library keys:
{
  "name": "Cranked plate",
  "sec_type": "Custom",
  "grade": "GR300",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 200, "y": 0},
    {"x": 200, "y": 16},
    {"x": 108, "y": 16},
    {"x": 108, "y": 300},
    {"x": 92, "y": 300},
    {"x": 92, "y": 16},
    {"x": 0, "y": 16}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
