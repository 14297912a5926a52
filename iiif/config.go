package iiif

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/BurntSushi/toml"
)

// LoadConfig reads the TOML configuration file.
func LoadConfig(filename string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(filename, &config); err != nil {
		return nil, fmt.Errorf("cannot read configuration %s: %w", filename, err)
	}

	if config.Cache.Extents != "" {
		size, err := bytefmt.ToBytes(config.Cache.Extents)
		if err != nil {
			return nil, fmt.Errorf("cache size %#v: %w", config.Cache.Extents, err)
		}
		config.Cache.ExtentsSize = int64(size)
	}

	return &config, nil
}
