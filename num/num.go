// Package num implements various utility functions for modular arithmetic
// over big integers.
package num

import "math/big"

// ModInverse returns the modular inverse of x modulo q.
// Output is always in [0, q).
// Panics if x and q are not coprime.
func ModInverse(x, q *big.Int) *big.Int {
	inv := big.NewInt(0)
	if inv.ModInverse(x, q) == nil {
		panic("modular inverse does not exist")
	}
	return inv
}

// ModSqrt returns a square root of x modulo an odd prime q,
// together with whether x is a quadratic residue.
// The returned root is in [0, q); the other root is its negation.
func ModSqrt(x, q *big.Int) (*big.Int, bool) {
	r := big.NewInt(0)
	if r.ModSqrt(x, q) == nil {
		return nil, false
	}
	return r, true
}
