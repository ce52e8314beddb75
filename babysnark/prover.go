package babysnark

import (
	"fmt"
	"math/big"

	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

// Prover proves satisfiability of a fixed square span program.
type Prover struct {
	inst SSP

	ring *polyring.Ring

	vanish polyring.Poly
	cols   []polyring.Poly
}

// NewProver creates a new Prover, deriving the vanishing and per-column
// polynomials of the program.
func NewProver(inst SSP) *Prover {
	ring := polyring.NewRing(pairing.ScalarField())

	return &Prover{
		inst: inst,

		ring: ring,

		vanish: inst.VanishingPoly(ring),
		cols:   inst.ColumnPolys(ring),
	}
}

// Prove generates a proof that the witness satisfies the program.
//
// The witness must have length n and satisfy (U*a)_i^2 = 1 for every row;
// otherwise [ErrUnsatisfiedWitness] is returned and no proof is emitted.
func (p *Prover) Prove(crs CRS, witness []*big.Int) (Proof, error) {
	m, n, nStmt := p.inst.Rows(), p.inst.Cols(), p.inst.NStmt()

	if len(witness) != n {
		return Proof{}, fmt.Errorf("%w: witness length %d, want %d", ErrInvalidInstance, len(witness), n)
	}
	if len(crs) != CRSLen(m, n, nStmt) {
		return Proof{}, fmt.Errorf("%w: malformed CRS of length %d, want %d", ErrInvalidInstance, len(crs), CRSLen(m, n, nStmt))
	}

	// Witness-only polynomial vw, then the full v on top of it.
	vw := p.ring.ZeroPoly()
	for k := nStmt; k < n; k++ {
		vw = p.ring.ScalarMulAdd(p.cols[k], witness[k], vw)
	}
	v := vw
	for k := 0; k < nStmt; k++ {
		v = p.ring.ScalarMulAdd(p.cols[k], witness[k], v)
	}

	// p = v^2 - 1 must vanish at every evaluation point, so t divides it
	// exactly for a satisfying witness.
	pp := p.ring.Sub(p.ring.Mul(v, v), p.ring.NewPolyInt64(1))
	h, rem, err := p.ring.QuoRem(pp, p.vanish)
	if err != nil {
		return Proof{}, err
	}
	if !rem.IsZero() {
		return Proof{}, fmt.Errorf("%w: nonzero remainder of degree %d", ErrUnsatisfiedWitness, rem.Degree())
	}

	if vw.Degree() >= m {
		return Proof{}, fmt.Errorf("%w: deg(vw)=%d, want < %d", ErrDegreeBound, vw.Degree(), m)
	}
	if h.Degree() > m {
		return Proof{}, fmt.Errorf("%w: deg(h)=%d, want <= %d", ErrDegreeBound, h.Degree(), m)
	}

	taus := crs.tauPowers(m)
	H := pairing.MultiExp(taus[:len(h.Coeffs)], h.Coeffs)
	Vw := pairing.MultiExp(taus[:len(vw.Coeffs)], vw.Coeffs)
	Bw := pairing.MultiExp(crs.betaCols(m), witness[nStmt:])

	return Proof{H: H, Bw: Bw, Vw: Vw}, nil
}
