// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multipole/charges"
)

// Generator kinds.
const (
	KindSquare = "square"
	KindRing   = "ring"
	KindArray  = "array"
	KindRandom = "random"
)

// Generator names one of the charges package generators and its parameters.
// Unused parameters for a kind are ignored.
type Generator struct {
	Kind   string  `yaml:"kind" json:"kind"`
	N      int     `yaml:"n,omitempty" json:"n,omitempty"`           // ring, array, random
	Q      float64 `yaml:"q,omitempty" json:"q,omitempty"`           // square, ring
	Half   float64 `yaml:"half,omitempty" json:"half,omitempty"`     // square
	Radius float64 `yaml:"radius,omitempty" json:"radius,omitempty"` // ring, random
	Seed   int64   `yaml:"seed,omitempty" json:"seed,omitempty"`     // random
}

// Scenario is the on-disk description of a run.
//
//	name: dipole
//	order: 40
//	charges:
//	  - {q: 1,  pos: [0, 0.5]}
//	  - {q: -1, pos: [0, -0.5]}
//
// or
//
//	generator: {kind: ring, n: 8, radius: 1, q: 1}
//
// Order and Epsilon are optional; nil means "use the library default", so
// an explicit "order: 0" or "epsilon: 0" survives a write/read cycle.
type Scenario struct {
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Order     *int        `yaml:"order,omitempty" json:"order,omitempty"`
	Epsilon   *float64    `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Charges   charges.Set `yaml:"charges,omitempty" json:"charges,omitempty"`
	Generator *Generator  `yaml:"generator,omitempty" json:"generator,omitempty"`
}

// Default is the four unit charges at (±1, ±1).
func Default() Scenario {
	return Scenario{
		Name:      "square",
		Generator: &Generator{Kind: KindSquare, Q: 1, Half: 1},
	}
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a YAML scenario, rejecting unknown keys, and validates it.
// An empty document is an error (ErrNoCharges).
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

// Validate checks the scenario without building its Set.
func (sc Scenario) Validate() error {
	if sc.Order != nil {
		if err := checkKnobs(*sc.Order, 0); err != nil {
			return err
		}
	}
	if sc.Epsilon != nil {
		if err := checkKnobs(0, *sc.Epsilon); err != nil {
			return err
		}
	}
	switch {
	case sc.Generator == nil && len(sc.Charges) == 0:
		return ErrNoCharges
	case sc.Generator != nil && len(sc.Charges) > 0:
		return ErrBothSources
	case sc.Generator != nil:
		switch normalize(sc.Generator.Kind) {
		case KindSquare, KindRing, KindArray, KindRandom:
		default:
			return fmt.Errorf("%q: %w", sc.Generator.Kind, ErrUnknownGenerator)
		}
	}

	return nil
}

// Set returns the charges of the scenario, running the generator if one is
// named. The result is validated and owned by the caller.
func (sc Scenario) Set() (charges.Set, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	var (
		set charges.Set
		err error
	)
	if g := sc.Generator; g != nil {
		switch normalize(g.Kind) {
		case KindSquare:
			set, err = charges.Square(g.Q, g.Half)
		case KindRing:
			set, err = charges.Ring(g.N, g.Radius, g.Q)
		case KindArray:
			set, err = charges.Array(g.N)
		case KindRandom:
			set, err = charges.Random(g.N, g.Radius, g.Seed)
		}
	} else {
		set = sc.Charges.Clone()
	}
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

func checkKnobs(order int, eps float64) error {
	if order < 0 {
		return fmt.Errorf("order=%d: %w", order, ErrInvalidOrder)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("epsilon=%v: %w", eps, ErrInvalidEpsilon)
	}

	return nil
}

func normalize(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
