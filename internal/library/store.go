package library

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/asdesign/internal/as1720"
	"github.com/alexiusacademia/asdesign/internal/logging"
)

//go:embed data/*.yaml
var embedded embed.FS

// Store is an in-memory Provider. It is immutable after construction and
// safe for concurrent readers.
type Store struct {
	source string
	data   map[Category]dataset
}

// Option configures store construction
type Option func(*options)

type options struct {
	log *logging.Logger
}

// WithLogger logs dataset loads at debug level
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{log: logging.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Embedded returns the store compiled into the binary
func Embedded(opts ...Option) (*Store, error) {
	o := buildOptions(opts)
	s := &Store{source: "embedded", data: make(map[Category]dataset)}
	for _, cat := range []Category{OpenSections, HollowSections, TimberSections} {
		raw, err := embedded.ReadFile("data/" + cat.String() + ".yaml")
		if err != nil {
			return nil, err
		}
		rows, err := parseYAML(raw)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", cat, err)
		}
		s.data[cat] = rows
		o.log.Debug("library dataset loaded", "source", s.source, "category", cat.String(), "rows", len(rows))
	}
	s.data[TimberGrades] = timberGradeRows()
	o.log.Debug("library dataset loaded", "source", s.source, "category", TimberGrades.String(), "rows", len(s.data[TimberGrades]))
	return s, nil
}

// NewDirProvider loads `<category>.yaml`, `.yml` or `.toml` files from dir.
// Categories without a file are not served by the returned store.
func NewDirProvider(dir string, opts ...Option) (*Store, error) {
	o := buildOptions(opts)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("library dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library dir: %s is not a directory", dir)
	}

	s := &Store{source: dir, data: make(map[Category]dataset)}
	for _, cat := range Categories() {
		rows, path, err := loadCategory(dir, cat)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.data[cat] = rows
		o.log.Debug("library dataset loaded", "source", path, "category", cat.String(), "rows", len(rows))
	}
	return s, nil
}

func loadCategory(dir string, cat Category) (dataset, string, error) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		path := filepath.Join(dir, cat.String()+ext)
		raw, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, err
		}
		var rows dataset
		if ext == ".toml" {
			rows, err = parseTOML(raw)
		} else {
			rows, err = parseYAML(raw)
		}
		if err != nil {
			return nil, path, fmt.Errorf("%s: %w", path, err)
		}
		return rows, path, nil
	}
	return nil, "", os.ErrNotExist
}

func parseYAML(raw []byte) (dataset, error) {
	var rows []map[string]any
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return finish(rows)
}

// tomlFile is the TOML layout: one [[row]] table per library row
type tomlFile struct {
	Rows []map[string]any `toml:"row"`
}

func parseTOML(raw []byte) (dataset, error) {
	var f tomlFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return finish(f.Rows)
}

func finish(rows []map[string]any) (dataset, error) {
	out := make(dataset, 0, len(rows))
	for i, r := range rows {
		p := Params(r)
		if p.String("section") == "" {
			return nil, fmt.Errorf("row %d: missing section", i+1)
		}
		p["name"] = rowName(p)
		out = append(out, p)
	}
	return out, nil
}

func timberGradeRows() dataset {
	names := as1720.GradeNames()
	out := make(dataset, 0, len(names))
	for _, n := range names {
		g, err := as1720.LookupGrade(n)
		if err != nil {
			continue
		}
		out = append(out, Params{
			"section":  g.Name,
			"name":     g.Name,
			"grade":    g.Name,
			"mat_type": g.Type.String(),
			"f_b":      g.Fb,
			"f_t":      g.Ft,
			"f_s":      g.Fs,
			"f_c":      g.Fc,
			"f_p":      g.Fp,
			"e":        g.E,
			"g":        g.G,
			"density":  g.Density,
		})
	}
	return out
}

// Source names where the store was loaded from
func (s *Store) Source() string {
	return s.source
}

// Lookup returns a copy of the row whose name or section matches, case-insensitive
func (s *Store) Lookup(cat Category, name string) (Params, error) {
	rows, ok := s.data[cat]
	if !ok {
		return nil, &LookupError{Category: cat.String(), Name: name, Err: ErrUnknownCategory}
	}
	p, ok := rows.lookup(name)
	if !ok {
		return nil, &LookupError{Category: cat.String(), Name: name, Err: ErrNotFound}
	}
	return p, nil
}

// Names returns every row name in a category, in dataset order
func (s *Store) Names(cat Category) ([]string, error) {
	rows, ok := s.data[cat]
	if !ok {
		return nil, &LookupError{Category: cat.String(), Err: ErrUnknownCategory}
	}
	return rows.names(), nil
}

// Chain tries each provider in order. A provider that does not serve a
// category or lacks the name is skipped.
type Chain []Provider

func (c Chain) Lookup(cat Category, name string) (Params, error) {
	var last error = &LookupError{Category: cat.String(), Name: name, Err: ErrUnknownCategory}
	for _, p := range c {
		row, err := p.Lookup(cat, name)
		if err == nil {
			return row, nil
		}
		if !errors.Is(err, ErrUnknownCategory) || !errors.Is(last, ErrNotFound) {
			last = err
		}
	}
	return nil, last
}

func (c Chain) Names(cat Category) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	served := false
	for _, p := range c {
		names, err := p.Names(cat)
		if errors.Is(err, ErrUnknownCategory) {
			continue
		}
		if err != nil {
			return nil, err
		}
		served = true
		for _, n := range names {
			if !seen[normalize(n)] {
				seen[normalize(n)] = true
				out = append(out, n)
			}
		}
	}
	if !served {
		return nil, &LookupError{Category: cat.String(), Err: ErrUnknownCategory}
	}
	return out, nil
}
