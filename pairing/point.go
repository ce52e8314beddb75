// Package pairing exposes a symmetric pairing group over BLS12-381.
//
// BLS12-381 pairings are asymmetric, e: G1 x G2 -> GT. A symmetric group is
// recovered by carrying every logical element in both source groups with the
// same discrete logarithm, so that any two elements can be paired.
package pairing

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Point is an element of the symmetric pairing group.
// The G1 and G2 components always share the same discrete logarithm.
// The zero value is the identity element.
type Point struct {
	G1 bls12381.G1Affine
	G2 bls12381.G2Affine
}

// Gen returns the group generator.
func Gen() Point {
	_, _, g1, g2 := bls12381.Generators()
	return Point{G1: g1, G2: g2}
}

// Identity returns the identity element.
func Identity() Point {
	return Point{}
}

// ScalarField returns the order of the group, which is the modulus of the
// scalar field.
func ScalarField() *big.Int {
	return fr.Modulus()
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var out Point

	var j1 bls12381.G1Jac
	j1.FromAffine(&p.G1)
	j1.AddMixed(&q.G1)
	out.G1.FromJacobian(&j1)

	var j2 bls12381.G2Jac
	j2.FromAffine(&p.G2)
	j2.AddMixed(&q.G2)
	out.G2.FromJacobian(&j2)

	return out
}

// ScalarMul returns c * p.
func (p Point) ScalarMul(c *big.Int) Point {
	var out Point
	out.G1.ScalarMultiplication(&p.G1, c)
	out.G2.ScalarMultiplication(&p.G2, c)
	return out
}

// Equal returns whether p and q are equal.
func (p Point) Equal(q Point) bool {
	return p.G1.Equal(&q.G1) && p.G2.Equal(&q.G2)
}

// IsInfinity returns whether p is the identity element.
func (p Point) IsInfinity() bool {
	return p.G1.IsInfinity() && p.G2.IsInfinity()
}
