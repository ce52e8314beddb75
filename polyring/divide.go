package polyring

import (
	"errors"
	"math/big"

	"github.com/erhant/babySNARK/num"
)

// ErrDivisionByZeroPoly is returned when dividing by the zero polynomial.
var ErrDivisionByZeroPoly = errors.New("polyring: division by zero polynomial")

// QuoRem computes the Euclidean division of p by d, returning quotient and
// remainder such that p = d*quo + rem with deg(rem) < deg(d).
// Returns [ErrDivisionByZeroPoly] if d trims to the zero polynomial.
func (r *Ring) QuoRem(p, d Poly) (quo, rem Poly, err error) {
	if d.IsZero() {
		return Poly{}, Poly{}, ErrDivisionByZeroPoly
	}

	if p.Degree() < d.Degree() {
		return Poly{}, p.Copy(), nil
	}

	remCoeffs := make([]*big.Int, len(p.Coeffs))
	for i := range remCoeffs {
		remCoeffs[i] = big.NewInt(0).Set(p.Coeffs[i])
	}

	dDeg := d.Degree()
	dLeadInv := num.ModInverse(d.Coeffs[dDeg], r.modulus)

	quoCoeffs := make([]*big.Int, len(p.Coeffs)-dDeg)
	mul := big.NewInt(0)
	for i := len(remCoeffs) - 1; i >= dDeg; i-- {
		c := big.NewInt(0).Mul(remCoeffs[i], dLeadInv)
		c.Mod(c, r.modulus)
		quoCoeffs[i-dDeg] = c

		if c.Sign() == 0 {
			continue
		}
		for j := 0; j <= dDeg; j++ {
			mul.Mul(c, d.Coeffs[j])
			remCoeffs[i-dDeg+j].Sub(remCoeffs[i-dDeg+j], mul)
			remCoeffs[i-dDeg+j].Mod(remCoeffs[i-dDeg+j], r.modulus)
		}
	}

	quo = Poly{Coeffs: trim(quoCoeffs)}
	rem = Poly{Coeffs: trim(remCoeffs[:dDeg])}
	return quo, rem, nil
}
