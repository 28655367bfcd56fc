// SPDX-License-Identifier: MIT

package config

import "github.com/katalvlaran/multipole/expansion"

// Config is the effective configuration below the flag layer.
type Config struct {
	Scenario Scenario
	Path     string // scenario file, empty for Default()
	Order    int
	Epsilon  float64
}

// Resolve merges defaults, the scenario file and the environment.
// path (typically a flag) wins over e.Scenario; an empty path and an unset
// MULTIPOLE_SCENARIO select Default().
func Resolve(path string, e Env) (Config, error) {
	if path == "" {
		path = e.Scenario
	}

	sc := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		sc = loaded
	}

	cfg := Config{
		Scenario: sc,
		Path:     path,
		Order:    expansion.DefaultOrder,
		Epsilon:  expansion.DefaultEpsilon,
	}
	if sc.Order != nil {
		cfg.Order = *sc.Order
	}
	if sc.Epsilon != nil {
		cfg.Epsilon = *sc.Epsilon
	}
	if e.Order != nil {
		cfg.Order = *e.Order
	}
	if e.Epsilon != nil {
		cfg.Epsilon = *e.Epsilon
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the evaluation knobs so they can be turned into
// expansion options without panicking.
func (c Config) Validate() error {
	return checkKnobs(c.Order, c.Epsilon)
}

// Options returns the expansion options for c.
func (c Config) Options() []expansion.Option {
	return []expansion.Option{
		expansion.WithOrder(c.Order),
		expansion.WithEpsilon(c.Epsilon),
	}
}
