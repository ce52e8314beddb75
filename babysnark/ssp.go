// Package babysnark implements a pairing-based non-interactive argument of
// knowledge for Square Span Programs.
//
// A Square Span Program is given by a public m x n matrix U over the scalar
// field of the pairing group. A witness vector a of length n satisfies the
// program when (U*a) squared elementwise equals the all-ones vector. The
// first nStmt entries of a form the public statement; the rest stay secret.
//
// The protocol has three roles: [Setup] emits a common reference string from
// a one-shot trapdoor, [Prover.Prove] commits to the witness and quotient
// polynomials, and [Verifier.Verify] accepts or rejects with two pairing
// checks.
package babysnark

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

// SSP is a compiled Square Span Program instance.
// Create one with [NewSSP].
type SSP struct {
	u     [][]*big.Int
	nStmt int

	// support[k] marks the rows where column k is nonzero.
	support []*bitset.BitSet
}

// NewSSP creates a new SSP from the constraint matrix u and the statement
// length nStmt. The matrix entries are copied and reduced modulo the scalar
// field of the pairing group.
//
// The statement must be a proper prefix of the witness: nStmt < n.
func NewSSP(u [][]*big.Int, nStmt int) (SSP, error) {
	if len(u) == 0 || len(u[0]) == 0 {
		return SSP{}, fmt.Errorf("%w: empty constraint matrix", ErrInvalidInstance)
	}

	n := len(u[0])
	for i := range u {
		if len(u[i]) != n {
			return SSP{}, fmt.Errorf("%w: ragged constraint matrix", ErrInvalidInstance)
		}
	}

	if nStmt < 0 || nStmt >= n {
		return SSP{}, fmt.Errorf("%w: invalid split nStmt=%d n=%d", ErrInvalidInstance, nStmt, n)
	}

	q := pairing.ScalarField()
	mat := make([][]*big.Int, len(u))
	support := make([]*bitset.BitSet, n)
	for k := 0; k < n; k++ {
		support[k] = bitset.New(uint(len(u)))
	}
	for i := range u {
		mat[i] = make([]*big.Int, n)
		for k := range u[i] {
			mat[i][k] = big.NewInt(0).Mod(u[i][k], q)
			if mat[i][k].Sign() != 0 {
				support[k].Set(uint(i))
			}
		}
	}

	return SSP{
		u:     mat,
		nStmt: nStmt,

		support: support,
	}, nil
}

// Rows returns the number of constraints m.
func (s SSP) Rows() int {
	return len(s.u)
}

// Cols returns the witness length n.
func (s SSP) Cols() int {
	return len(s.u[0])
}

// NStmt returns the statement length.
func (s SSP) NStmt() int {
	return s.nStmt
}

// ColumnSupport returns the set of rows where column k is nonzero.
func (s SSP) ColumnSupport(k int) *bitset.BitSet {
	return s.support[k]
}

// EvaluationPoints returns the public evaluation points r_i = i for
// i = 1..m, one per constraint row.
func (s SSP) EvaluationPoints() []*big.Int {
	rs := make([]*big.Int, s.Rows())
	for i := range rs {
		rs[i] = big.NewInt(int64(i + 1))
	}
	return rs
}

// VanishingPoly returns the monic polynomial of degree m with roots at the
// evaluation points.
func (s SSP) VanishingPoly(r *polyring.Ring) polyring.Poly {
	return r.Vanishing(s.EvaluationPoints())
}

// ColumnPolys returns, for each column k, the unique polynomial of degree
// < m interpolating the column values at the evaluation points.
func (s SSP) ColumnPolys(r *polyring.Ring) []polyring.Poly {
	rs := s.EvaluationPoints()

	cols := make([]polyring.Poly, s.Cols())
	ys := make([]*big.Int, s.Rows())
	for k := range cols {
		if s.support[k].None() {
			cols[k] = r.ZeroPoly()
			continue
		}
		for i := range ys {
			ys[i] = s.u[i][k]
		}
		cols[k] = r.Interpolate(rs, ys)
	}
	return cols
}
