package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format specifies the output format of list-style commands.
type Format string

const (
	// FormatTable outputs a styled table.
	FormatTable Format = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the format is known.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format, accepting "yml" as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q; valid formats: %s", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the valid format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// WriteStructured encodes v as JSON or YAML. The YAML path goes through the
// JSON tags so both formats use the same field names.
func WriteStructured(w io.Writer, v interface{}, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}
