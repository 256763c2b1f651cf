package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	InitialSize int
	Strength    float64
	LogLevel    string
}

func defaultConfig() config {
	return config{
		InitialSize: 100,
		Strength:    1,
		LogLevel:    "info",
	}
}

type fileConfig struct {
	InitialSize int     `toml:"initial_size"`
	Strength    float64 `toml:"strength"`
	LogLevel    string  `toml:"log_level"`
}

// loadConfig overlays the keys present in the TOML file at path onto cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load ecsdemo config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load ecsdemo config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("initial_size") {
		cfg.InitialSize = raw.InitialSize
	}
	if meta.IsDefined("strength") {
		cfg.Strength = raw.Strength
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.InitialSize < 0 {
		return fmt.Errorf("invalid initial_size %d: must not be negative", c.InitialSize)
	}
	return nil
}
