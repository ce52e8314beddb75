package polyring

import "math/big"

// Add returns p0 + p1.
func (r *Ring) Add(p0, p1 Poly) Poly {
	n := max(len(p0.Coeffs), len(p1.Coeffs))
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		c := big.NewInt(0)
		if i < len(p0.Coeffs) {
			c.Add(c, p0.Coeffs[i])
		}
		if i < len(p1.Coeffs) {
			c.Add(c, p1.Coeffs[i])
		}
		if c.Cmp(r.modulus) >= 0 {
			c.Sub(c, r.modulus)
		}
		coeffs[i] = c
	}
	return Poly{Coeffs: trim(coeffs)}
}

// Sub returns p0 - p1.
func (r *Ring) Sub(p0, p1 Poly) Poly {
	n := max(len(p0.Coeffs), len(p1.Coeffs))
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		c := big.NewInt(0)
		if i < len(p0.Coeffs) {
			c.Add(c, p0.Coeffs[i])
		}
		if i < len(p1.Coeffs) {
			c.Sub(c, p1.Coeffs[i])
		}
		if c.Sign() < 0 {
			c.Add(c, r.modulus)
		}
		coeffs[i] = c
	}
	return Poly{Coeffs: trim(coeffs)}
}

// Neg returns -p.
func (r *Ring) Neg(p Poly) Poly {
	coeffs := make([]*big.Int, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
		if p.Coeffs[i].Sign() != 0 {
			coeffs[i].Sub(r.modulus, p.Coeffs[i])
		}
	}
	return Poly{Coeffs: trim(coeffs)}
}

// ScalarMul returns p * c.
func (r *Ring) ScalarMul(p Poly, c *big.Int) Poly {
	coeffs := make([]*big.Int, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = big.NewInt(0).Mul(p.Coeffs[i], c)
		coeffs[i].Mod(coeffs[i], r.modulus)
	}
	return Poly{Coeffs: trim(coeffs)}
}

// ScalarMulAdd returns pOut + p * c.
func (r *Ring) ScalarMulAdd(p Poly, c *big.Int, pOut Poly) Poly {
	return r.Add(pOut, r.ScalarMul(p, c))
}

// Mul returns p0 * p1, computed as the convolution of the coefficients.
func (r *Ring) Mul(p0, p1 Poly) Poly {
	if p0.IsZero() || p1.IsZero() {
		return Poly{}
	}

	coeffs := make([]*big.Int, len(p0.Coeffs)+len(p1.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}

	mul := big.NewInt(0)
	for i := range p0.Coeffs {
		if p0.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := range p1.Coeffs {
			mul.Mul(p0.Coeffs[i], p1.Coeffs[j])
			coeffs[i+j].Add(coeffs[i+j], mul)
		}
	}
	for i := range coeffs {
		coeffs[i].Mod(coeffs[i], r.modulus)
	}

	return Poly{Coeffs: trim(coeffs)}
}

// Evaluate returns p(x), computed with Horner's method.
func (r *Ring) Evaluate(p Poly, x *big.Int) *big.Int {
	res := big.NewInt(0)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.Coeffs[i])
		res.Mod(res, r.modulus)
	}
	return res
}
