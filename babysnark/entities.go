package babysnark

import "github.com/erhant/babySNARK/pairing"

// CRS is a common reference string: a flat sequence of group elements laid
// out as
//
//	CRS[0..m]     tau^i * G
//	CRS[m+1]      gamma * G
//	CRS[m+2]      beta*gamma * G
//	CRS[m+3..]    beta*U_k(tau) * G for each witness-only column k
//
// The trapdoor scalars tau, beta, gamma are destroyed after [Setup].
type CRS []pairing.Point

// CRSLen returns the expected CRS length for an m x n program with
// statement length nStmt.
func CRSLen(m, n, nStmt int) int {
	return (m + 1) + 2 + (n - nStmt)
}

// tauPowers returns the power-of-tau commitment basis.
func (crs CRS) tauPowers(m int) []pairing.Point {
	return crs[:m+1]
}

// gammaG returns the gamma*G element.
func (crs CRS) gammaG(m int) pairing.Point {
	return crs[m+1]
}

// betaGammaG returns the beta*gamma*G element.
func (crs CRS) betaGammaG(m int) pairing.Point {
	return crs[m+2]
}

// betaCols returns the beta-blinded witness-column elements.
func (crs CRS) betaCols(m int) []pairing.Point {
	return crs[m+3:]
}

// Proof is a Baby SNARK proof.
type Proof struct {
	// H commits to the quotient polynomial h = (v^2 - 1) / t.
	H pairing.Point
	// Bw is the beta-blinded commitment to the witness-only polynomial.
	Bw pairing.Point
	// Vw commits to the witness-only polynomial in the tau basis.
	Vw pairing.Point
}
