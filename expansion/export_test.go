// SPDX-License-Identifier: MIT

package expansion

// ClampUnit exposes clampUnit to the external test package.
var ClampUnit = clampUnit
