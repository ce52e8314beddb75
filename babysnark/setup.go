package babysnark

import (
	"fmt"
	"math/big"

	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

// Setup samples a fresh trapdoor (tau, beta, gamma) and builds the common
// reference string for the given program.
//
// The trapdoor never escapes this call: it is used once to encode the CRS
// elements and then dropped. A CRS must not be reused across independent
// programs.
func Setup(inst SSP) (CRS, error) {
	if len(inst.u) == 0 {
		return nil, fmt.Errorf("%w: program not compiled with NewSSP", ErrInvalidInstance)
	}

	m, n, nStmt := inst.Rows(), inst.Cols(), inst.NStmt()
	if nStmt >= n {
		return nil, fmt.Errorf("%w: invalid split nStmt=%d n=%d", ErrInvalidInstance, nStmt, n)
	}

	ring := polyring.NewRing(pairing.ScalarField())
	q := ring.Modulus()

	us := polyring.NewUniformSampler(ring)
	tau := us.SampleMod()
	beta := us.SampleMod()
	gamma := us.SampleMod()

	g := pairing.Gen()
	crs := make(CRS, 0, CRSLen(m, n, nStmt))

	tauPow := big.NewInt(1)
	for i := 0; i <= m; i++ {
		crs = append(crs, g.ScalarMul(tauPow))
		tauPow = big.NewInt(0).Mul(tauPow, tau)
		tauPow.Mod(tauPow, q)
	}

	crs = append(crs, g.ScalarMul(gamma))

	betaGamma := big.NewInt(0).Mul(beta, gamma)
	betaGamma.Mod(betaGamma, q)
	crs = append(crs, g.ScalarMul(betaGamma))

	cols := inst.ColumnPolys(ring)
	for k := nStmt; k < n; k++ {
		bu := big.NewInt(0).Mul(beta, ring.Evaluate(cols[k], tau))
		bu.Mod(bu, q)
		crs = append(crs, g.ScalarMul(bu))
	}

	return crs, nil
}
