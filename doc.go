// Package multipole computes the electrostatic potential of point charges
// with a truncated multipole (Legendre) expansion, and checks it against the
// exact Coulomb sum.
//
// 🚀 What is multipole?
//
//	A small, dependency-light toolkit that brings together:
//		• Numerics: compensated summation, Euclidean vectors, Legendre polynomials
//		• Charges: point-charge sets, test generators, exact potential & field
//		• Expansion: interior / exterior series, regime selection, convergence study
//		• Plotting: convergence curves and potential heat maps (gonum/plot)
//		• CLI: eval, coeffs, convergence, map and scenario commands
//
// ✨ Why a multipole expansion?
//
//   - Far from the charges the potential collapses to a few moments
//   - Coefficients depend only on direction, so a Series re-evaluates a ray cheaply
//   - Both regimes share one Legendre recurrence, so truncations are consistent
//
// Packages:
//
//	kahan/      — compensated (Kahan) summation
//	vector/     — Vec, magnitude, dot product, distance
//	legendre/   — P_n(x) and P_n'(x) by the Bonnet recurrence
//	charges/    — Charge, Set, Bounds, generators, exact Potential & Field
//	expansion/  — Decompose, Coefficients, Select, Assemble, Potential, Series
//	plotting/   — Convergence and PotentialMap figures
//	cmd/multipole — the command-line tool
//
// Quick ASCII example (four unit charges, observer on the x axis):
//
//	  +     +
//	     O ─────── r
//	  +     +
//
// Outside the square the exterior series converges; at the centre, the
// interior one does.
//
//	go install github.com/katalvlaran/multipole/cmd/multipole@latest
package multipole
