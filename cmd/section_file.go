package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/asdesign/internal/library"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// readSectionFile decodes a section definition from a JSON, YAML or TOML
// file into a library row. The keys follow the library schema, with an
// optional vertices list for custom polygons:
//
//	name: Angle 100x100x10
//	sec_type: Custom
//	grade: GR300
//	vertices:
//	  - {x: 0, y: 0}
//	  - {x: 100, y: 0}
//	  - ...
func readSectionFile(path string) (library.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	row := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &row)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &row)
	case ".toml":
		err = toml.Unmarshal(raw, &row)
	default:
		return nil, fmt.Errorf("%s: unsupported section file format %q (use .json, .yaml or .toml)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p := library.Params(row)
	if p.String("name") == "" {
		name := p.String("section")
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		p["name"] = name
	}
	return p, nil
}
