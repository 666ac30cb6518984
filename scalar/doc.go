// Package scalar provides tiny generic extremum helpers — max and min of
// two or three values of any ordered type.
//
// The alignment engine compares three dynamic-program states per cell, so
// these helpers live in their own package instead of being re-declared at
// the bottom of every algorithm file.
//
// Semantics:
//   - strict >/< comparison; on ties the first-compared operand wins
//     (indistinguishable for equal values, so results are order-independent)
//   - defined for all finite and infinite float inputs; Max2(-Inf, x) == x
//   - pure functions, no error conditions
package scalar
