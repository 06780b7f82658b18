package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for flags that are not given explicitly.
type Config struct {
	// Universe is the universe size used by complement and split.
	Universe int `yaml:"universe"`
	// Ratio is the share of the universe placed in the training mask.
	Ratio float64 `yaml:"ratio"`
	// Seed seeds the split generator. Zero means a random seed.
	Seed uint64 `yaml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Ratio: 0.8,
	}
}

// loadConfig reads the YAML file at path over the defaults.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if c.Universe < 0 {
		return Config{}, fmt.Errorf("invalid config %q: negative universe %d", path, c.Universe)
	}
	return c, nil
}
