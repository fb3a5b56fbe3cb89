// Package report renders attribute listings for sections, materials and
// capacities with their nomenclature and code clause.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Attribute is one reportable value
type Attribute struct {
	Symbol       string
	Value        float64
	Text         string // Used instead of Value for non-numeric attributes
	Unit         string
	Nomenclature string
	Clause       string
}

// Num builds a numeric attribute
func Num(symbol string, value float64, unit, nomenclature, clause string) Attribute {
	return Attribute{Symbol: symbol, Value: value, Unit: unit, Nomenclature: nomenclature, Clause: clause}
}

// Str builds a text attribute
func Str(symbol, text, nomenclature string) Attribute {
	return Attribute{Symbol: symbol, Text: text, Nomenclature: nomenclature}
}

// Reporter is implemented by anything that can list its attributes
type Reporter interface {
	Attributes() []Attribute
}

// Options controls what Write prints
type Options struct {
	Names            []string // Symbols to include; empty means all
	WithNomenclature bool
	WithClause       bool
	SigFigs          int // Zero leaves values unrounded
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle  = lipgloss.NewStyle().Faint(true)
)

const rule = "───────────────────────────────────────────────────────────────"

// Write prints a titled, tab-aligned attribute listing
func Write(w io.Writer, title string, attrs []Attribute, opts Options) error {
	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(strings.ToUpper(title)+":"))
		fmt.Fprintln(w, ruleStyle.Render(rule))
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range Filter(attrs, opts.Names) {
		line := fmt.Sprintf("  %s\t%s\t%s", a.Symbol, FormatValue(a, opts.SigFigs), a.Unit)
		if opts.WithNomenclature {
			line += "\t" + a.Nomenclature
		}
		if opts.WithClause && a.Clause != "" {
			line += "\t" + a.Clause
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// Filter keeps the attributes whose symbol is in names, in the order of names.
// Symbol matching is exact; an empty names list keeps everything.
func Filter(attrs []Attribute, names []string) []Attribute {
	if len(names) == 0 {
		return attrs
	}
	bySymbol := make(map[string]Attribute, len(attrs))
	for _, a := range attrs {
		bySymbol[a.Symbol] = a
	}
	out := make([]Attribute, 0, len(names))
	for _, n := range names {
		if a, ok := bySymbol[n]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Find returns the attribute with the given symbol
func Find(attrs []Attribute, symbol string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return Attribute{}, false
}

// FormatValue renders an attribute value rounded to sigFigs significant figures
func FormatValue(a Attribute, sigFigs int) string {
	if a.Text != "" {
		return a.Text
	}
	v := a.Value
	switch {
	case math.IsNaN(v):
		return "-"
	case math.IsInf(v, 1):
		return "∞"
	}
	if sigFigs > 0 {
		v = RoundSig(v, sigFigs)
	}
	if abs := math.Abs(v); v != 0 && (abs < 1e-4 || abs >= 1e15) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoundSig rounds v to n significant figures
func RoundSig(v float64, n int) float64 {
	if v == 0 || n <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exp := float64(n) - 1 - math.Floor(math.Log10(math.Abs(v)))
	if exp >= 0 {
		scale := math.Pow(10, exp)
		return math.Round(v*scale) / scale
	}
	scale := math.Pow(10, -exp)
	return math.Round(v/scale) * scale
}
