package cmd

import (
	"fmt"

	"github.com/alexiusacademia/asdesign/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of asdesign",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "asdesign v%s\n", version.Version)
		fmt.Fprintln(out, "Australian Steel and Timber Member Design Tool")
		fmt.Fprintf(out, "Based on %s\n", version.Standards)
		fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
