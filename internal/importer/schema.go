package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a bulk import file. The same
// shape is accepted as JSON or YAML.
type ImportSchema struct {
	Defaults *DefaultsImport `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Sections []SectionImport `json:"sections,omitempty" yaml:"sections,omitempty"`
	Entities []EntityImport  `json:"entities" yaml:"entities"`
}

// DefaultsImport holds values that cascade to every entity that leaves them empty.
type DefaultsImport struct {
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Status     string `json:"status,omitempty" yaml:"status,omitempty"`
	SectionRef string `json:"section_ref,omitempty" yaml:"section_ref,omitempty"`
}

// SectionImport defines a Gantt section. Order defaults to its position in the file.
type SectionImport struct {
	Ref   string `json:"ref" yaml:"ref"`
	Name  string `json:"name" yaml:"name"`
	Order *int   `json:"order,omitempty" yaml:"order,omitempty"`
}

// EntityImport defines one scheduled entity. Date fields are kept exactly as
// written; unparsable values are not an import error.
type EntityImport struct {
	Ref         string            `json:"ref,omitempty" yaml:"ref,omitempty"`
	Kind        string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Title       string            `json:"title" yaml:"title"`
	Status      string            `json:"status,omitempty" yaml:"status,omitempty"`
	SectionRef  string            `json:"section_ref,omitempty" yaml:"section_ref,omitempty"`
	Start       RawDate           `json:"start,omitempty" yaml:"start,omitempty"`
	Date        RawDate           `json:"date,omitempty" yaml:"date,omitempty"`
	Created     RawDate           `json:"created,omitempty" yaml:"created,omitempty"`
	Scheduled   RawDate           `json:"scheduled,omitempty" yaml:"scheduled,omitempty"`
	End         RawDate           `json:"end,omitempty" yaml:"end,omitempty"`
	PlannedDays *int              `json:"planned_days,omitempty" yaml:"planned_days,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// RawDate is a date field as written in the file. YAML would otherwise
// resolve an unquoted 2024-03-10 to a timestamp; the scalar text is kept instead.
type RawDate string

func (d *RawDate) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		*d = ""
		return nil
	}
	*d = RawDate(n.Value)
	return nil
}

// Format is an import file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported import file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseImportSchema decodes data in the given format.
func ParseImportSchema(data []byte, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
	return &schema, nil
}

// LoadImportSchema reads and parses an import file, choosing JSON or YAML by extension.
func LoadImportSchema(path string) (*ImportSchema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, format)
}
