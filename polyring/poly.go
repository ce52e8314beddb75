package polyring

import "math/big"

// Poly is a polynomial in coefficient form.
// Coeffs[i] is the coefficient of X^i, always fully reduced modulo the ring
// modulus, with trailing zero coefficients trimmed.
// The zero polynomial has no coefficients.
type Poly struct {
	Coeffs []*big.Int
}

// Degree returns the degree of the Poly.
// The zero polynomial has degree -1.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.Coeffs) == 0
}

// Equal returns whether p and q are equal as trimmed coefficient sequences.
func (p Poly) Equal(q Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(q.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of p.
func (p Poly) Copy() Poly {
	coeffs := make([]*big.Int, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = big.NewInt(0).Set(p.Coeffs[i])
	}
	return Poly{Coeffs: coeffs}
}
