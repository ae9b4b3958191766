package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a declaration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// NormalizeFormat returns the canonical format for a user-provided name, or "" if unknown.
func NormalizeFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yaml", "yml":
		return FormatYAML
	case "toml":
		return FormatTOML
	case "json":
		return FormatJSON
	default:
		return ""
	}
}

// FormatFromPath infers the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if f := NormalizeFormat(strings.TrimPrefix(filepath.Ext(path), ".")); f != "" {
		return f
	}
	return FormatYAML
}

// decodeFile decodes strictly: unknown keys are decode errors so typos never
// silently fall back to builder defaults. JSON is read by the YAML decoder.
func decodeFile(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case FormatYAML, FormatJSON, "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &f, nil
}
