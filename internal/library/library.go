// Package library holds the tabulated section and grade datasets and the
// providers that serve them by name.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var (
	// ErrNotFound is returned when no row matches the requested name
	ErrNotFound = errors.New("not found in library")

	// ErrUnknownCategory is returned for a category the provider does not serve
	ErrUnknownCategory = errors.New("unknown library category")
)

// Category identifies one dataset of the library
type Category int

const (
	OpenSections Category = iota
	HollowSections
	TimberSections
	TimberGrades
)

var categoryFiles = map[Category]string{
	OpenSections:   "open_sections",
	HollowSections: "hollow_sections",
	TimberSections: "timber_sections",
	TimberGrades:   "timber_grades",
}

// Categories lists every category in display order
func Categories() []Category {
	return []Category{OpenSections, HollowSections, TimberSections, TimberGrades}
}

func (c Category) String() string {
	if s, ok := categoryFiles[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts the file stem ("open_sections") or a short CLI
// spelling ("open", "hollow", "timber", "grades")
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for c, name := range categoryFiles {
		if key == name {
			return c, nil
		}
	}
	switch key {
	case "open", "steel":
		return OpenSections, nil
	case "hollow", "hss":
		return HollowSections, nil
	case "timber", "boards":
		return TimberSections, nil
	case "grades", "timber_grade":
		return TimberGrades, nil
	}
	return 0, &LookupError{Category: s, Err: ErrUnknownCategory}
}

// LookupError reports a failed library lookup
type LookupError struct {
	Category string
	Name     string
	Err      error
}

func (e *LookupError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("library %q: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("library %s: %q: %v", e.Category, e.Name, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Provider serves read-only library rows by category and name
type Provider interface {
	Lookup(cat Category, name string) (Params, error)
	Names(cat Category) ([]string, error)
}

// Params is one library row. Keys follow the snake_case parameter schema
// (section, name, sec_type, grade, mat_type, d, b, t_f, t_w, t, r_1, r_o, ...).
type Params map[string]any

// String returns the value under key as a string, or "" if absent
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Float returns the numeric value under key, or 0 if absent or not numeric
func (p Params) Float(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// Clone returns a shallow copy so callers cannot mutate provider state
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Decode copies the row into a struct tagged with `mapstructure` keys.
// Numeric strings and integers are converted to the target field types.
func (p Params) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return fmt.Errorf("decode %s: %w", p.String("name"), err)
	}
	return nil
}

// rowName returns the display name "section (grade)" for a row
func rowName(p Params) string {
	if n := p.String("name"); n != "" {
		return n
	}
	sec, grade := p.String("section"), p.String("grade")
	if grade == "" {
		return sec
	}
	return fmt.Sprintf("%s (%s)", sec, grade)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// dataset is an ordered, immutable set of rows for one category
type dataset []Params

func (d dataset) lookup(name string) (Params, bool) {
	key := normalize(name)
	for _, row := range d {
		if normalize(row.String("name")) == key {
			return row.Clone(), true
		}
	}
	for _, row := range d {
		if normalize(row.String("section")) == key {
			return row.Clone(), true
		}
	}
	return nil, false
}

func (d dataset) names() []string {
	out := make([]string, 0, len(d))
	for _, row := range d {
		out = append(out, row.String("name"))
	}
	return out
}
