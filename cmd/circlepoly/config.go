package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"honnef.co/go/circlepoly"
)

var formats = []string{"text", "json", "svg"}

// Config is the circle to generate and how to print it. It is read from a
// YAML file, for example:
//
//	radius: 7.5
//	segments: 32
//	format: svg
type Config struct {
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Format   string  `yaml:"format"`
	Float32  bool    `yaml:"float32"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Radius:   circlepoly.DefaultSpec.Radius,
		Segments: circlepoly.DefaultSpec.Segments,
		Format:   "text",
	}
}

// LoadConfig reads a configuration file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("unknown format %q, want one of %v", cfg.Format, formats)
	}
	return nil
}

func (cfg Config) Spec() circlepoly.CircleSpec {
	return circlepoly.CircleSpec{Radius: cfg.Radius, Segments: cfg.Segments}
}
