package babysnark

import (
	"fmt"
	"math/big"

	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

// Verifier verifies proofs for a fixed square span program.
type Verifier struct {
	inst SSP

	ring *polyring.Ring

	vanish polyring.Poly
	cols   []polyring.Poly
}

// NewVerifier creates a new Verifier, deriving the vanishing and per-column
// polynomials of the program independently of the prover.
func NewVerifier(inst SSP) *Verifier {
	ring := polyring.NewRing(pairing.ScalarField())

	return &Verifier{
		inst: inst,

		ring: ring,

		vanish: inst.VanishingPoly(ring),
		cols:   inst.ColumnPolys(ring),
	}
}

// Verify checks the proof against the public statement.
//
// An invalid proof is reported as false, never as an error; the error
// return covers malformed inputs only.
func (v *Verifier) Verify(crs CRS, stmt []*big.Int, pf Proof) (bool, error) {
	m, n, nStmt := v.inst.Rows(), v.inst.Cols(), v.inst.NStmt()

	if len(stmt) != nStmt {
		return false, fmt.Errorf("%w: statement length %d, want %d", ErrInvalidInstance, len(stmt), nStmt)
	}
	if len(crs) != CRSLen(m, n, nStmt) {
		return false, fmt.Errorf("%w: malformed CRS of length %d, want %d", ErrInvalidInstance, len(crs), CRSLen(m, n, nStmt))
	}

	taus := crs.tauPowers(m)

	// Commitment to the vanishing polynomial.
	T := pairing.MultiExp(taus[:len(v.vanish.Coeffs)], v.vanish.Coeffs)

	// Statement-side commitment Vs, and the full V = Vs + Vw.
	vs := v.ring.ZeroPoly()
	for k := 0; k < nStmt; k++ {
		vs = v.ring.ScalarMulAdd(v.cols[k], stmt[k], vs)
	}
	Vs := pairing.MultiExp(taus[:len(vs.Coeffs)], vs.Coeffs)
	V := Vs.Add(pf.Vw)

	// Check 1: Bw and Vw are built from the same witness-column combination,
	// e(Bw, gamma*G) = e(Vw, beta*gamma*G).
	lhs := pairing.Pair(pf.Bw, crs.gammaG(m))
	rhs := pairing.Pair(pf.Vw, crs.betaGammaG(m))
	if !lhs.Equal(&rhs) {
		return false, nil
	}

	// Check 2: the quadratic constraint holds at tau,
	// e(H, T) * e(G, G) = e(V, V), i.e. h(tau)*t(tau) + 1 = v(tau)^2.
	g := pairing.Gen()
	lhs = pairing.PairProduct([]pairing.Point{pf.H, g}, []pairing.Point{T, g})
	rhs = pairing.Pair(V, V)
	return lhs.Equal(&rhs), nil
}
