package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned when a config file holds more than one
// YAML document.
var ErrMultipleDocuments = errors.New("multiple YAML documents are not supported")

// ParseConfig strictly decodes a single .coach/config.yml document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	var trailer yaml.Node
	switch err := decoder.Decode(&trailer); {
	case err == io.EOF:
		return cfg, nil
	case err == nil:
		return Config{}, fmt.Errorf("parse config: %w", ErrMultipleDocuments)
	default:
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
}
