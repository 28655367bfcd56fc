// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides. Nil pointers mean "unset".
type Env struct {
	Order    *int     `env:"MULTIPOLE_ORDER"`
	Epsilon  *float64 `env:"MULTIPOLE_EPSILON"`
	Scenario string   `env:"MULTIPOLE_SCENARIO"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// ParseEnvFrom loads Env from an explicit variable map instead of the
// process environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}
