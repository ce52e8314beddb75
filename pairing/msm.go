package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MultiExp returns the multi-scalar multiplication
// scalars[0]*points[0] + ... + scalars[k-1]*points[k-1].
// Panics if the slice lengths differ.
//
// An empty input yields the identity element.
func MultiExp(points []Point, scalars []*big.Int) Point {
	if len(points) != len(scalars) {
		panic("mismatched multi-scalar multiplication inputs")
	}
	if len(points) == 0 {
		return Identity()
	}

	g1s := make([]bls12381.G1Affine, len(points))
	g2s := make([]bls12381.G2Affine, len(points))
	frScalars := make([]fr.Element, len(scalars))
	for i := range points {
		g1s[i] = points[i].G1
		g2s[i] = points[i].G2
		frScalars[i].SetBigInt(scalars[i])
	}

	var out Point
	if _, err := out.G1.MultiExp(g1s, frScalars, ecc.MultiExpConfig{}); err != nil {
		panic(err)
	}
	if _, err := out.G2.MultiExp(g2s, frScalars, ecc.MultiExpConfig{}); err != nil {
		panic(err)
	}
	return out
}
