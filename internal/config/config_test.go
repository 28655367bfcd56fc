// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multipole/charges"
	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/internal/config"
	"github.com/katalvlaran/multipole/vector"
)

const dipoleYAML = `
name: dipole
order: 40
charges:
  - {q: 1, pos: [0, 0.5]}
  - {q: -1, pos: [0, -0.5]}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParse_Charges(t *testing.T) {
	sc, err := config.Parse([]byte(dipoleYAML))
	require.NoError(t, err)
	assert.Equal(t, "dipole", sc.Name)
	require.NotNil(t, sc.Order)
	assert.Equal(t, 40, *sc.Order)
	assert.Nil(t, sc.Epsilon, "absent epsilon stays unset")

	set, err := sc.Set()
	require.NoError(t, err)
	assert.Equal(t, charges.Set{
		{Q: 1, Pos: vector.Vec{0, 0.5}},
		{Q: -1, Pos: vector.Vec{0, -0.5}},
	}, set)

	set[0].Pos[0] = 9
	assert.Equal(t, 0.0, sc.Charges[0].Pos[0], "Set returns a copy")
}

func TestParse_Generators(t *testing.T) {
	cases := []struct {
		yaml string
		n    int
	}{
		{"generator: {kind: square, q: 2, half: 1}", 4},
		{"generator: {kind: Ring, n: 7, radius: 1, q: 1}", 7},
		{"generator: {kind: array, n: 3}", 9},
		{"generator: {kind: random, n: 5, radius: 2, seed: 9}", 5},
	}
	for _, tc := range cases {
		sc, err := config.Parse([]byte(tc.yaml))
		require.NoError(t, err, tc.yaml)
		set, err := sc.Set()
		require.NoError(t, err, tc.yaml)
		assert.Len(t, set, tc.n, tc.yaml)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "", config.ErrNoCharges},
		{"name only", "name: x", config.ErrNoCharges},
		{"both", "generator: {kind: square, q: 1, half: 1}\ncharges: [{q: 1, pos: [1, 0]}]", config.ErrBothSources},
		{"unknown kind", "generator: {kind: hexagon}", config.ErrUnknownGenerator},
		{"negative order", "order: -1\ngenerator: {kind: array, n: 2}", config.ErrInvalidOrder},
		{"negative epsilon", "epsilon: -1\ngenerator: {kind: array, n: 2}", config.ErrInvalidEpsilon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte("charge: []"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestScenario_SetErrors(t *testing.T) {
	sc, err := config.Parse([]byte("generator: {kind: ring, n: 0, radius: 1}"))
	require.NoError(t, err)
	_, err = sc.Set()
	assert.ErrorIs(t, err, charges.ErrTooFewCharges)

	sc, err = config.Parse([]byte("charges: [{q: 1, pos: [1, 0]}, {q: 1, pos: [1, 0, 0]}]"))
	require.NoError(t, err)
	_, err = sc.Set()
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestDefault(t *testing.T) {
	set, err := config.Default().Set()
	require.NoError(t, err)
	want, err := charges.Square(1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, set)
}

func TestLoad(t *testing.T) {
	sc, err := config.Load(writeScenario(t, dipoleYAML))
	require.NoError(t, err)
	assert.Equal(t, "dipole", sc.Name)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEnvFrom(t *testing.T) {
	e, err := config.ParseEnvFrom(map[string]string{})
	require.NoError(t, err)
	assert.Nil(t, e.Order)
	assert.Nil(t, e.Epsilon)
	assert.Empty(t, e.Scenario)

	e, err = config.ParseEnvFrom(map[string]string{
		"MULTIPOLE_ORDER":    "12",
		"MULTIPOLE_EPSILON":  "1e-9",
		"MULTIPOLE_SCENARIO": "x.yaml",
	})
	require.NoError(t, err)
	require.NotNil(t, e.Order)
	require.NotNil(t, e.Epsilon)
	assert.Equal(t, 12, *e.Order)
	assert.Equal(t, 1e-9, *e.Epsilon)
	assert.Equal(t, "x.yaml", e.Scenario)

	_, err = config.ParseEnvFrom(map[string]string{"MULTIPOLE_ORDER": "many"})
	assert.Error(t, err)
}

func TestParseEnv_Process(t *testing.T) {
	t.Setenv("MULTIPOLE_ORDER", "7")
	e, err := config.ParseEnv()
	require.NoError(t, err)
	require.NotNil(t, e.Order)
	assert.Equal(t, 7, *e.Order)
}

func TestResolve_Precedence(t *testing.T) {
	path := writeScenario(t, dipoleYAML)

	cfg, err := config.Resolve("", config.Env{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg.Scenario)
	assert.Equal(t, expansion.DefaultOrder, cfg.Order)
	assert.Equal(t, expansion.DefaultEpsilon, cfg.Epsilon)

	cfg, err = config.Resolve("", config.Env{Scenario: path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 40, cfg.Order, "file wins over defaults")

	order, eps := 5, 1e-6
	cfg, err = config.Resolve(path, config.Env{Order: &order, Epsilon: &eps, Scenario: "ignored.yaml"})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path, "explicit path wins over MULTIPOLE_SCENARIO")
	assert.Equal(t, 5, cfg.Order, "env wins over file")
	assert.Equal(t, 1e-6, cfg.Epsilon)

	o := expansion.NewOptions(cfg.Options()...)
	assert.Equal(t, 5, o.Order())
	assert.Equal(t, 1e-6, o.Epsilon())
}

func TestResolve_ExplicitZeroKnobs(t *testing.T) {
	path := writeScenario(t, "order: 0\nepsilon: 0\ngenerator: {kind: square, q: 1, half: 1}\n")

	sc, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Order)
	require.NotNil(t, sc.Epsilon)

	cfg, err := config.Resolve(path, config.Env{})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Order, "explicit zero order is not the default")
	assert.Equal(t, 0.0, cfg.Epsilon, "explicit zero epsilon is not the default")
}

func TestResolve_Errors(t *testing.T) {
	bad := -3
	_, err := config.Resolve("", config.Env{Order: &bad})
	assert.ErrorIs(t, err, config.ErrInvalidOrder)

	_, err = config.Resolve(filepath.Join(t.TempDir(), "nope.yaml"), config.Env{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
