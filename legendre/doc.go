// SPDX-License-Identifier: MIT

// Package legendre evaluates Legendre polynomials P_n(x) and their
// derivatives on the closed interval [-1, 1].
//
// 🚀 Why Legendre polynomials?
//
//	They are the angular basis of the multipole expansion:
//	  1/|r − r'| = Σ_n r'^n / r^(n+1) · P_n(cos θ)   for r > r'
//	so every order of the expansion needs P_n at the cosine of the angle
//	between the observation point and a charge.
//
// ✨ Key features:
//   - Eval:   P_n(x) and P_n'(x) via Bonnet's three-term recurrence
//   - Values: the whole table P_0..P_nmax in one upward pass
//   - exact endpoint derivatives, no 0/0 at x = ±1
//
// Both entry points share one recurrence step, so Values(nmax, x)[n] is
// bit-identical to the first result of Eval(n, x).
//
// Performance:
//
//   - Eval:   O(n) time, O(1) memory
//   - Values: O(nmax) time, O(nmax) memory (reuses dst when large enough)
package legendre
