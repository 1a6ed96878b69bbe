package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parsers maps a file extension to its decoder. Extensionless files fall
// back to YAML, the primary format.
var parsers = map[string]func([]byte) (Config, error){
	"":      FromYAML,
	".yaml": FromYAML,
	".yml":  FromYAML,
	".json": FromJSON,
}

// FromFile loads configuration from a file, picking the format from the
// extension (.yaml, .yml, .json). A file without an extension is parsed as
// YAML.
func FromFile(path string) (Config, error) {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Config{}, fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return parse(data)
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	return parseWith("yaml", yaml.Unmarshal, data)
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	return parseWith("json", json.Unmarshal, data)
}

func parseWith(format string, unmarshal func([]byte, any) error, data []byte) (Config, error) {
	var m map[string]any
	if err := unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", format, err)
	}
	return New(m), nil
}
