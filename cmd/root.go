package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/asdesign/internal/config"
	"github.com/alexiusacademia/asdesign/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "asdesign",
	Short: "Australian Steel and Timber Member Design Tool",
	Long: `asdesign - Australian Structural Member Designer

A CLI tool for the design capacity of structural members
to the Australian Standards.

This tool helps structural engineers perform:
  - Section property lookup for hot-rolled, welded and hollow sections
  - Steel member capacity checks (AS 4100)
  - Timber member capacity checks (AS 1720.1)
  - Bolt group and fillet weld capacity checks
  - Column curve plotting

Settings are read from .asdesign.yaml in the working or home
directory and from ASDESIGN_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   asdesign v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Australian Structural Member Designer                   ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Standards)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the design capacity of steel and timber members")
		fmt.Fprintln(out, "  to the Australian Standards.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Section library for UB, UC, WB, WC, PFC, tees and hollow sections")
		fmt.Fprintln(out, "    • Plate element slenderness and effective section")
		fmt.Fprintln(out, "    • Steel member tension, compression, bending and shear")
		fmt.Fprintln(out, "    • Timber member bending, shear, compression and bearing")
		fmt.Fprintln(out, "    • Bolt group, fillet weld and connection plate capacities")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'asdesign --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .asdesign.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Int("sig-figs", 3, "significant figures of reported values")
	flags.String("library", "", "directory of extra library YAML/TOML files")
	flags.BoolP("nomenclature", "n", false, "print nomenclature and clause columns")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("sig_figs", flags.Lookup("sig-figs"))
	_ = viper.BindPFlag("library_dir", flags.Lookup("library"))
	_ = viper.BindPFlag("nomenclature", flags.Lookup("nomenclature"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".asdesign")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv(viper.GetViper())

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
