// Package config describes the layers of a map and the transform of each
// layer's grid. Files are YAML or TOML; only grid geometry is configured
// here, never cell contents.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilegrid/geom"
	"github.com/milk9111/tilegrid/grid"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownFormat = errors.New("unknown config format")
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("config: %s: %w", path, ErrUnknownFormat)
}

type Config struct {
	Layers []LayerSpec `yaml:"layers" toml:"layers"`
}

type LayerSpec struct {
	Name string   `yaml:"name" toml:"name"`
	Grid GridSpec `yaml:"grid" toml:"grid"`
}

type GridSpec struct {
	Type string `yaml:"type" toml:"type"`
	// Scale is nil when omitted and then defaults to 1.
	Scale     *float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotation  float64  `yaml:"rotation" toml:"rotation"`
	XShift    float64  `yaml:"x_shift" toml:"x_shift"`
	YShift    float64  `yaml:"y_shift" toml:"y_shift"`
	Diagonals bool     `yaml:"diagonals,omitempty" toml:"diagonals,omitempty"`
}

// Kind returns the parsed grid type.
func (g GridSpec) Kind() (grid.Kind, error) {
	return grid.ParseKind(g.Type)
}

func (g GridSpec) ScaleOrDefault() float64 {
	if g.Scale == nil {
		return 1
	}
	return *g.Scale
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates config data.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: unmarshal toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: unknown toml key %q: %w", undecoded[0].String(), ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("config: parse %q: %w", format, ErrUnknownFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names and grid parameters without building anything.
func (c *Config) Validate() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("config: no layers: %w", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Layers))
	for i, l := range c.Layers {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			return fmt.Errorf("config: layer %d has no name: %w", i, ErrInvalidConfig)
		}
		if seen[name] {
			return fmt.Errorf("config: layer %q defined twice: %w", name, ErrInvalidConfig)
		}
		seen[name] = true

		if _, err := l.Grid.Kind(); err != nil {
			return fmt.Errorf("config: layer %q: %w", name, err)
		}
		// dry run on a scratch transform so the setters' rules apply
		t := geom.NewTransform()
		for _, err := range []error{
			t.SetScale(l.Grid.ScaleOrDefault()),
			t.SetRotation(l.Grid.Rotation),
			t.SetXShift(l.Grid.XShift),
			t.SetYShift(l.Grid.YShift),
		} {
			if err != nil {
				return fmt.Errorf("config: layer %q: %w", name, err)
			}
		}
	}
	return nil
}

// Marshal encodes c in the given format.
func (c *Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("config: marshal toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("config: marshal %q: %w", format, ErrUnknownFormat)
}
