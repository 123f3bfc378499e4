package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in config: a unit square ground layer and a
// hex overlay sharing its origin.
func Default() *Config {
	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}
