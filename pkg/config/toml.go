package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ToTOML serializes the configuration to TOML.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// FromTOML parses a configuration from TOML. Unknown keys are rejected.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for idx, key := range undecoded {
			keys[idx] = key.String()
		}
		return nil, fmt.Errorf("parse toml: unknown keys: %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Decode parses data as TOML when path ends in .toml and as YAML otherwise.
func Decode(path string, data []byte) (*Config, error) {
	if IsTOML(path) {
		return FromTOML(data)
	}
	return FromYAML(data)
}

// IsTOML reports whether path names a TOML file.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
