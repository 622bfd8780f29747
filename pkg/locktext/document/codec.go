package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotObject is returned when the top-level value of a document is not an object.
var ErrNotObject = errors.New("document must be an object")

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath detects the format from a file extension.
// Supported extensions: .json, .yaml, .yml
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document extension: %q", ext)
	}
}

// FromFile reads a document, auto-detecting format by extension.
func FromFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data, format)
}

// Decode reads a whole document from r.
func Decode(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format.
//
// JSON numbers are kept as json.Number so they re-encode exactly. YAML
// timestamps and other scalars without a JSON form keep their source text,
// and YAML mapping keys become strings.
func Parse(data []byte, format Format) (Document, error) {
	var v any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		parsed, err := parseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		v = parsed
	default:
		return nil, fmt.Errorf("unsupported document format: %q", format)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse %s: %w", format, ErrNotObject)
	}
	return Document(m), nil
}

// Encode writes d as JSON followed by a newline.
// A non-empty indent pretty-prints with that indent. Object keys are
// written in sorted order, not in the order they were decoded.
func (d Document) Encode(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(map[string]any(d)); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}
