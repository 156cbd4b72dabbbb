package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes catalog bytes in the format implied by ext and validates them.
func Parse(data []byte, ext string) (*Catalog, error) {
	spec, err := parseSpec(data, ext)
	if err != nil {
		return nil, err
	}
	normalized, err := NormalizeSpec(spec)
	if err != nil {
		return nil, err
	}
	return New(normalized.Questions), nil
}

func parseSpec(data []byte, ext string) (Spec, error) {
	if strings.EqualFold(ext, ".json") {
		return parseJSONSpec(data)
	}
	return parseYAMLSpec(data)
}

func parseJSONSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	var trailer json.RawMessage
	switch err := decoder.Decode(&trailer); {
	case err == io.EOF:
	case err == nil:
		return Spec{}, fmt.Errorf("parse json: multiple documents are not supported")
	default:
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	return spec, nil
}

func parseYAMLSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	// A yaml.Node accepts any document, so KnownFields does not mask a trailer.
	var trailer yaml.Node
	switch err := decoder.Decode(&trailer); {
	case err == io.EOF:
	case err == nil:
		return Spec{}, fmt.Errorf("parse yaml: multiple documents are not supported")
	default:
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	return spec, nil
}
