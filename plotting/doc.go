// SPDX-License-Identifier: MIT

// Package plotting renders multipole results as PNG figures with gonum/plot.
//
// 📈 Figures:
//   - Convergence:  relative error of the truncated series against order,
//     on a logarithmic Y axis.
//   - PotentialMap: heat map of the multipole potential over a square window
//     around a planar charge Set, with the exact field drawn as unit arrows
//     and the charges as a scatter overlay (+ red, − blue).
//
// Each figure has a builder returning *plot.Plot (for callers that want to
// restyle or embed it) and a convenience wrapper that saves it to a file.
//
// ⚙️ Usage:
//
//	set, _ := charges.Square(1, 1)
//	err := plotting.PotentialMap(set, plotting.DefaultMapOptions(), "square.png")
package plotting
