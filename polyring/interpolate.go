package polyring

import (
	"math/big"

	"github.com/erhant/babySNARK/num"
)

// Vanishing returns the monic polynomial with roots exactly at the given
// points, t(X) = (X - points[0]) * ... * (X - points[k-1]).
func (r *Ring) Vanishing(points []*big.Int) Poly {
	coeffs := make([]*big.Int, len(points)+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}
	coeffs[0].SetInt64(1)

	mul := big.NewInt(0)
	for i, s := range points {
		// Multiply by (X - s) in place, top coefficient first.
		for j := i + 1; j > 0; j-- {
			mul.Mul(coeffs[j], s)
			coeffs[j].Sub(coeffs[j-1], mul)
			coeffs[j].Mod(coeffs[j], r.modulus)
		}
		mul.Mul(coeffs[0], s)
		coeffs[0].Neg(mul)
		coeffs[0].Mod(coeffs[0], r.modulus)
	}

	return Poly{Coeffs: coeffs}
}

// Interpolate returns the unique polynomial of degree < k passing through
// the k points (xs[i], ys[i]), computed by Lagrange interpolation.
// Panics if the lengths differ or the evaluation points are not distinct.
func (r *Ring) Interpolate(xs, ys []*big.Int) Poly {
	if len(xs) != len(ys) {
		panic("point and value counts differ")
	}
	if len(xs) == 0 {
		return Poly{}
	}

	t := r.Vanishing(xs)

	res := Poly{}
	for i := range xs {
		// Basis numerator t(X) / (X - xs[i]), by synthetic division.
		li := r.divideByLinear(t, xs[i])

		d := r.Evaluate(li, xs[i])
		if d.Sign() == 0 {
			panic("interpolation points are not distinct")
		}

		w := big.NewInt(0).Mul(ys[i], num.ModInverse(d, r.modulus))
		w.Mod(w, r.modulus)
		res = r.ScalarMulAdd(li, w, res)
	}

	return res
}

// divideByLinear returns p / (X - a), assuming the division is exact.
func (r *Ring) divideByLinear(p Poly, a *big.Int) Poly {
	coeffs := make([]*big.Int, len(p.Coeffs)-1)
	mul := big.NewInt(0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		coeffs[i] = big.NewInt(0).Set(p.Coeffs[i+1])
		if i < len(coeffs)-1 {
			mul.Mul(coeffs[i+1], a)
			coeffs[i].Add(coeffs[i], mul)
			coeffs[i].Mod(coeffs[i], r.modulus)
		}
	}
	return Poly{Coeffs: trim(coeffs)}
}
