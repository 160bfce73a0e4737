// Package config loads CLI configuration from a TOML file.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings of the wrangle CLI
type Config struct {
	Delimiter  string `toml:"delimiter"`   // field delimiter for DSV files
	NilValue   string `toml:"nil_value"`   // string representing missing values in DSV files
	MaxRows    int    `toml:"max_rows"`    // maximum rows rendered per table. 0 means all.
	TimeFormat string `toml:"time_format"` // layout for datetime columns
	Verbose    bool   `toml:"verbose"`     // enable debug logging
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Delimiter: ",",
		MaxRows:   20,
	}
}

// Load reads configuration from a TOML file, applying defaults for
// absent keys. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ","
	}
	return cfg, nil
}
