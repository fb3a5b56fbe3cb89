package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/asdesign/internal/actions"
	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/as4100"
	"github.com/alexiusacademia/asdesign/internal/config"
	"github.com/alexiusacademia/asdesign/internal/geometry"
	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/alexiusacademia/asdesign/internal/logging"
	"github.com/alexiusacademia/asdesign/internal/material"
	"github.com/alexiusacademia/asdesign/internal/report"
	"github.com/spf13/cobra"
)

// runtime is the per-command environment built from configuration
type runtime struct {
	cfg      config.Config
	log      *logging.Logger
	provider library.Provider
	out      io.Writer
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log = log.With("command", cmd.CommandPath())

	store, err := library.Embedded(library.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("library: %w", err)
	}
	var provider library.Provider = store
	if cfg.LibraryDir != "" {
		dir, err := library.NewDirProvider(cfg.LibraryDir, library.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", cfg.LibraryDir, err)
		}
		provider = library.Chain{dir, store}
	}

	return &runtime{cfg: cfg, log: log, provider: provider, out: cmd.OutOrStdout()}, nil
}

func (r *runtime) options() report.Options {
	return report.Options{
		WithNomenclature: r.cfg.Nomenclature,
		WithClause:       r.cfg.Nomenclature,
		SigFigs:          r.cfg.SigFigs,
	}
}

// write prints one titled attribute listing
func (r *runtime) write(title string, attrs []report.Attribute) error {
	return report.Write(r.out, title, attrs, r.options())
}

// header prints the report banner used by every check command
func (r *runtime) header(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(r.out, "     %s\n", title)
	fmt.Fprintln(r.out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(r.out)
}

// fail logs err and returns it for cobra to print
func (r *runtime) fail(msg string, err error) error {
	r.log.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}

// sectionCategories are searched in order when a section is looked up by name
var sectionCategories = []library.Category{
	library.OpenSections,
	library.HollowSections,
	library.TimberSections,
}

// lookupSection finds a section row by name in any section category
func (r *runtime) lookupSection(name string) (library.Params, error) {
	var last error
	for _, cat := range sectionCategories {
		p, err := r.provider.Lookup(cat, name)
		if err == nil {
			r.log.Debug("section found", "name", name, "category", cat.String())
			return p, nil
		}
		if !errors.Is(err, library.ErrNotFound) && !errors.Is(err, library.ErrUnknownCategory) {
			return nil, err
		}
		last = err
	}
	return nil, &library.LookupError{Category: "sections", Name: name, Err: errors.Unwrap(last)}
}

// loadSection resolves a library section by name
func (r *runtime) loadSection(name string) (*geometry.Section, library.Params, error) {
	p, err := r.lookupSection(name)
	if err != nil {
		return nil, nil, err
	}
	sec, err := geometry.FromParams(p)
	if err != nil {
		return nil, nil, err
	}
	return sec, p, nil
}

// resolveSection loads the section named by args[0], or from file when set
func (r *runtime) resolveSection(args []string, file string) (*geometry.Section, library.Params, error) {
	if file == "" {
		if len(args) == 0 {
			return nil, nil, errors.New("a section name or --file is required")
		}
		return r.loadSection(args[0])
	}
	p, err := readSectionFile(file)
	if err != nil {
		return nil, nil, err
	}
	r.log.Debug("section file read", "path", file, "name", p.String("name"))
	sec, err := geometry.FromParams(p)
	if err != nil {
		return nil, nil, err
	}
	return sec, p, nil
}

// steelMaterial resolves the steel of a section from the row's grade and
// mat_type, with optional command line overrides
func steelMaterial(sec *geometry.Section, p library.Params, grade, matType string) (*material.Steel, error) {
	if grade == "" && matType == "" {
		return material.SteelFromParams(p, sec)
	}
	if grade == "" {
		grade = p.String("grade")
	}
	if matType == "" {
		matType = p.String("mat_type")
	}
	mt := material.DefaultMaterialType(sec.Type)
	if matType != "" {
		var err error
		if mt, err = as4100.ParseMaterialType(matType); err != nil {
			return nil, err
		}
	}
	if grade == "" {
		return nil, fmt.Errorf("steel %s: %w", sec.Name, as4100.ErrUnknownGrade)
	}
	return material.SteelForSection(sec, grade, mt)
}

// writeChecks prints combination checks, marking the governing one.
// withK1 adds the timber duration factor column.
func (r *runtime) writeChecks(title string, checks []actions.Check, withK1 bool) error {
	g := actions.GoverningCheck(checks)

	fmt.Fprintln(r.out, strings.ToUpper(title)+" (AS/NZS 1170.0 Cl 4.2.2):")
	fmt.Fprintln(r.out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	if withK1 {
		fmt.Fprintf(w, "  #\tCombination\tk_1\tS*\tφR\tS*/φR\n")
		fmt.Fprintf(w, "  ─\t───────────\t───\t──\t──\t─────\n")
	} else {
		fmt.Fprintf(w, "  #\tCombination\tS*\tφR\tS*/φR\n")
		fmt.Fprintf(w, "  ─\t───────────\t──\t──\t─────\n")
	}
	for _, c := range checks {
		marker := ""
		if c.ID == g.ID {
			marker = " ← GOVERNS"
		}
		if withK1 {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.3f%s\n",
				c.ID, c.Description, as1720.DurationFactor(c.Duration), c.Action, c.Capacity, c.Ratio, marker)
		} else {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.3f%s\n",
				c.ID, c.Description, c.Action, c.Capacity, c.Ratio, marker)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	return nil
}
