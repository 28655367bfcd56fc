// SPDX-License-Identifier: MIT

// Package expansion evaluates the potential of a point-charge Set with a
// truncated multipole (Legendre) series.
//
// 🚀 What is the multipole expansion?
//
//	For an observation point r and a charge at r_i with angle θ_i between
//	them, 1/|r − r_i| expands in Legendre polynomials in two ways:
//
//	  Outside (r > r_i):  V = Σ_n c_n / r^(n+1),  c_n = Σ_i q_i r_i^n     P_n(cos θ_i)
//	  Inside  (r < r_i):  V = Σ_n c_n · r^n,      c_n = Σ_i q_i / r_i^(n+1) P_n(cos θ_i)
//
//	Which form converges depends on where |r| sits relative to the annulus
//	[Rmin, Rmax] spanned by the charges.
//
// ✨ Pipeline:
//  1. Select: pick Outside or Inside from |r| and the Set's Bounds;
//     inside the annulus a midpoint heuristic decides (flagged Ambiguous).
//  2. Coefficients: per charge, per order: Decompose → Legendre → regime formula.
//  3. Assemble: compensated sum of the per-order terms.
//
// The Regime is chosen once and threaded explicitly; it carries both the
// coefficient formula and the matching assembly formula, so the two can
// never disagree.
//
// ⚙️ Usage:
//
//	set, _ := charges.Square(1, 1)
//	v, regime, err := expansion.Potential(vector.Vec{2, 0}, set,
//	  expansion.WithOrder(60))
//
// Numeric conventions (total functions, never errors):
//   - cos θ is 0 when either magnitude is 0, and clamped to [-1, 1];
//   - a charge at the origin contributes 0 to every Inside coefficient;
//   - an Outside evaluation at the origin returns 0.
//
// Concurrency: every function is pure; a Set may be shared by goroutines
// evaluating different points.
//
// Complexity: O(len(set) · nmax) per point.
package expansion
