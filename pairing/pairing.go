package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GT is an element of the pairing target group.
type GT = bls12381.GT

// Pair computes the bilinear map e(p, q).
func Pair(p, q Point) GT {
	return PairProduct([]Point{p}, []Point{q})
}

// PairProduct computes the product of pairings, e(ps[0], qs[0]) * ... *
// e(ps[k-1], qs[k-1]). Panics if the slice lengths differ.
func PairProduct(ps, qs []Point) GT {
	if len(ps) != len(qs) {
		panic("mismatched pairing inputs")
	}

	g1s := make([]bls12381.G1Affine, len(ps))
	g2s := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		g1s[i] = ps[i].G1
		g2s[i] = qs[i].G2
	}

	gt, err := bls12381.Pair(g1s, g2s)
	if err != nil {
		panic(err)
	}
	return gt
}
