// SPDX-License-Identifier: MIT

// Package cli wires the multipole command tree: eval, coeffs, convergence,
// map and scenario, sharing the scenario, order, epsilon, debug and json
// flags resolved in the root command's PersistentPreRunE.
package cli
