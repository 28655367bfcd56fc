// SPDX-License-Identifier: MIT

// Package config loads the scenario the multipole CLI evaluates: a YAML file
// naming either explicit charges or a generator, plus environment overrides
// for the evaluation knobs.
//
// Precedence is flags > environment > file > defaults; this package resolves
// the last three and leaves flags to the command layer.
package config
