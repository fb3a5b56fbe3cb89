package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/member"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var steelCmd = &cobra.Command{
	Use:   "steel",
	Short: "Steel member capacity to AS 4100",
	Long: `Compute the design capacities of a steel member to AS 4100.

Subcommands:
  check  - Section and member capacities in tension, compression,
           bending and shear, with optional combined actions
  curve  - Member compression capacity against effective length

Lengths are in mm, forces in kN and moments in kNm.`,
}

func init() {
	rootCmd.AddCommand(steelCmd)
}

// steelFlags are the member inputs shared by the steel subcommands
type steelFlags struct {
	file      string
	grade     string
	matType   string
	lx, ly    float64
	kex, key  float64
	segment   float64
	restraint string
	kl, kr    float64
	alphaM    float64
	kt        float64
	phi       float64
}

func (f *steelFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "Section definition file (json, yaml, toml)")
	fs.StringVar(&f.grade, "grade", "", "Steel grade, overrides the library grade")
	fs.StringVar(&f.matType, "mat-type", "", "Steel product type")

	// Compression
	fs.Float64Var(&f.lx, "lx", 0, "Member length for buckling about x (mm)")
	fs.Float64Var(&f.ly, "ly", 0, "Member length for buckling about y (mm), defaults to --lx")
	fs.Float64Var(&f.kex, "kex", 1, "Effective length factor about x")
	fs.Float64Var(&f.key, "key", 1, "Effective length factor about y")

	// Bending
	fs.Float64Var(&f.segment, "segment", 0, "Bending segment length (mm), 0 for full lateral restraint")
	fs.StringVar(&f.restraint, "restraint", "FF", "Segment end restraints, two of F, P, L, U")
	fs.Float64Var(&f.kl, "kl", 1, "Load height factor")
	fs.Float64Var(&f.kr, "kr", 1, "Lateral rotation restraint factor")
	fs.Float64Var(&f.alphaM, "alpha-m", 1, "Moment modification factor")

	// Tension
	fs.Float64Var(&f.kt, "kt", 1, "Tension correction factor")
	fs.Float64Var(&f.phi, "phi", 0, "Capacity factor (default from config steel.phi)")
}

// inputs converts the flags to member inputs. phi falls back to the
// configured default when the flag is unset.
func (f *steelFlags) inputs(defaultPhi float64) (member.SteelInputs, error) {
	in := member.DefaultSteelInputs()
	in.Lx, in.Ly = f.lx, f.ly
	if in.Ly == 0 {
		in.Ly = f.lx
	}
	in.Kex, in.Key = f.kex, f.key
	in.Segment = f.segment
	in.Kl, in.Kr = f.kl, f.kr
	in.AlphaM = f.alphaM
	in.Kt = f.kt
	in.Phi = defaultPhi
	if f.phi != 0 {
		in.Phi = f.phi
	}

	a, b, err := parseRestraints(f.restraint)
	if err != nil {
		return in, err
	}
	in.RestraintA, in.RestraintB = a, b
	return in, nil
}

// parseRestraints reads a two-letter restraint code such as "FP"
func parseRestraints(s string) (as4100.Restraint, as4100.Restraint, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 2 {
		return 0, 0, fmt.Errorf("restraint %q: want two letters of F, P, L, U", s)
	}
	a, okA := as4100.ParseRestraint(code[:1])
	b, okB := as4100.ParseRestraint(code[1:])
	if !okA || !okB {
		return 0, 0, fmt.Errorf("restraint %q: want two letters of F, P, L, U", s)
	}
	return a, b, nil
}
