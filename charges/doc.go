// SPDX-License-Identifier: MIT

// Package charges models finite sets of point charges and evaluates their
// exact (closed-form) potential and electric field.
//
// 🚀 What lives here?
//
//	A Set is an ordered slice of Charge records, each a magnitude plus a
//	position vector. The slice order is the iteration order of every
//	algorithm in multipole, which keeps floating-point results
//	bit-reproducible for a given Set.
//
// ✨ Key features:
//   - Set.Validate / Set.Bounds: contract checks and the Rmin/Rmax annulus
//   - Array, Square, Ring, Random: deterministic test configurations
//   - Potential: brute-force Σ q_i / |r − r_i| (ground truth for expansions)
//   - Field:     Σ q_i (r − r_i) / |r − r_i|³
//
// Units are Gaussian with k = 1: a unit charge at distance 1 has potential 1.
package charges
