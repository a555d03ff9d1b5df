// Package export renders resolved diagrams for downstream code generators
// as JSON, YAML or HCL.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/violet-to-doctrine/parser/internal/result"
)

// Format selects the rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// File names for the single-file renderings.
const (
	JSONFile = "model.json"
	YAMLFile = "model.yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatHCL}

// ParseFormat parses a format name, case-insensitively; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatHCL:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want json, yaml or hcl)", s)
}

// Render returns a map of filename -> content for res in the given format.
func Render(res *result.ParseResult, format Format) (map[string][]byte, error) {
	doc := NewDocument(res)
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return map[string][]byte{JSONFile: buf.Bytes()}, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return map[string][]byte{YAMLFile: buf.Bytes()}, nil
	case FormatHCL:
		b := NewBuilder()
		for _, p := range doc.Packages {
			b.AddPackage(p)
		}
		for _, c := range doc.Classes {
			b.AddClass(c)
		}
		for _, i := range doc.Interfaces {
			b.AddInterface(i)
		}
		return b.Build(), nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}
