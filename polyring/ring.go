// Package polyring implements polynomial arithmetic over a prime field,
// with polynomials represented by their coefficients.
package polyring

import "math/big"

// Ring is a polynomial ring over a prime field.
type Ring struct {
	modulus *big.Int
}

// NewRing creates a new Ring with the given modulus.
// Panics if the modulus is not an odd prime.
func NewRing(q *big.Int) *Ring {
	if q.Sign() <= 0 || q.Bit(0) == 0 || !q.ProbablyPrime(0) {
		panic("modulus is not an odd prime")
	}

	return &Ring{
		modulus: q,
	}
}

// Modulus returns the modulus of the Ring.
func (r *Ring) Modulus() *big.Int {
	return r.modulus
}

// NewPoly creates a new Poly from the given coefficients.
// The coefficients are copied and reduced modulo the ring modulus.
func (r *Ring) NewPoly(coeffs []*big.Int) Poly {
	c := make([]*big.Int, len(coeffs))
	for i := range c {
		c[i] = big.NewInt(0).Mod(coeffs[i], r.modulus)
	}
	return Poly{Coeffs: trim(c)}
}

// NewPolyInt64 creates a new Poly from the given int64 coefficients.
func (r *Ring) NewPolyInt64(coeffs ...int64) Poly {
	c := make([]*big.Int, len(coeffs))
	for i := range c {
		c[i] = big.NewInt(0).Mod(big.NewInt(coeffs[i]), r.modulus)
	}
	return Poly{Coeffs: trim(c)}
}

// ZeroPoly returns the zero polynomial.
func (r *Ring) ZeroPoly() Poly {
	return Poly{}
}

// trim strips trailing zero coefficients.
func trim(coeffs []*big.Int) []*big.Int {
	i := len(coeffs)
	for i > 0 && coeffs[i-1].Sign() == 0 {
		i--
	}
	return coeffs[:i]
}
