package locked

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/locktext/pkg/locktext/registry"
)

// Format identifies the encoding of a template table.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath detects the format from a file extension.
// Supported extensions: .yaml, .yml, .json
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported template file extension: %q", ext)
	}
}

// FromFile loads a template table from a file, auto-detecting format by extension.
func FromFile(path string) (*registry.Registry[string, string], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template file: %w", err)
	}
	return Parse(data, format)
}

// Parse builds a registry from a flat key to text mapping.
//
// Every key must have the <namespace>.<segment> form and every value must be
// a non-empty string without placeholders. The first invalid entry, in key
// order, is returned as an *InvalidEntryError.
func Parse(data []byte, format Format) (*registry.Registry[string, string], error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported template format: %q", format)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make(map[string]string, len(raw))
	for _, k := range keys {
		text, err := validateEntry(k, raw[k])
		if err != nil {
			return nil, err
		}
		entries[k] = text
	}
	return registry.New(entries), nil
}
