package babysnark

import (
	"fmt"
	"math/big"

	"github.com/erhant/babySNARK/num"
	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

// avgExtraPerRow is the expected number of nonzero entries per row beyond
// the always-dense first column.
const avgExtraPerRow = 1

// SampleInstance generates a random m x n square span program together with
// a satisfying witness of length n.
//
// The matrix is sparse: the first column is dense, the remaining entries are
// nonzero with probability avgExtraPerRow/n, and every column is touched at
// least once. Each row is rescaled so that (U*a)_i^2 = 1. Randomness comes
// from the stream sampler, which is meant for testing, not for secrets.
func SampleInstance(m, n, nStmt int) (SSP, []*big.Int, error) {
	if m <= 0 || n <= 0 {
		return SSP{}, nil, fmt.Errorf("%w: empty dimensions m=%d n=%d", ErrInvalidInstance, m, n)
	}
	if nStmt < 0 || nStmt >= n {
		return SSP{}, nil, fmt.Errorf("%w: invalid split nStmt=%d n=%d", ErrInvalidInstance, nStmt, n)
	}

	ring := polyring.NewRing(pairing.ScalarField())
	q := ring.Modulus()
	ss := polyring.NewStreamSampler(ring)

	sampleNonZero := func(x *big.Int) {
		for {
			ss.SampleModAssign(x)
			if x.Sign() != 0 {
				return
			}
		}
	}

	a := make([]*big.Int, n)
	for k := range a {
		a[k] = ss.SampleMod()
	}

	u := make([][]*big.Int, m)
	dots := make([]*big.Int, m)
	mul := big.NewInt(0)
	for {
		for i := range u {
			u[i] = make([]*big.Int, n)
			u[i][0] = big.NewInt(0)
			sampleNonZero(u[i][0])
			for k := 1; k < n; k++ {
				u[i][k] = big.NewInt(0)
				if ss.SampleN(uint64(n)) < avgExtraPerRow {
					ss.SampleModAssign(u[i][k])
				}
			}
		}

		// Make sure no column is left entirely zero, so that every witness
		// entry actually constrains the program.
		for k := 1; k < n; k++ {
			empty := true
			for i := range u {
				if u[i][k].Sign() != 0 {
					empty = false
					break
				}
			}
			if empty {
				sampleNonZero(u[k%m][k])
			}
		}

		// A zero row sum cannot be rescaled to square to one; resample the
		// whole matrix in that (cryptographically unlikely) case.
		zeroDot := false
		for i := range u {
			dots[i] = big.NewInt(0)
			for k := range u[i] {
				if u[i][k].Sign() == 0 {
					continue
				}
				mul.Mul(u[i][k], a[k])
				dots[i].Add(dots[i], mul)
			}
			dots[i].Mod(dots[i], q)
			if dots[i].Sign() == 0 {
				zeroDot = true
				break
			}
		}
		if !zeroDot {
			break
		}
	}

	// Rescale each row by the inverse square root of (U*a)_i^2, making the
	// inner product +-1.
	for i := range u {
		sq := big.NewInt(0).Mul(dots[i], dots[i])
		sq.Mod(sq, q)
		root, ok := num.ModSqrt(sq, q)
		if !ok {
			panic("square has no square root")
		}
		scale := num.ModInverse(root, q)
		for k := range u[i] {
			u[i][k].Mul(u[i][k], scale)
			u[i][k].Mod(u[i][k], q)
		}
	}

	inst, err := NewSSP(u, nStmt)
	if err != nil {
		return SSP{}, nil, err
	}
	return inst, a, nil
}
