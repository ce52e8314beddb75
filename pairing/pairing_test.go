package pairing_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erhant/babySNARK/pairing"
)

func TestBilinearity(t *testing.T) {
	g := pairing.Gen()

	a := big.NewInt(1234567)
	b := big.NewInt(7654321)
	ab := big.NewInt(0).Mul(a, b)

	// e(aG, bG) == e(G, G)^(ab)
	lhs := pairing.Pair(g.ScalarMul(a), g.ScalarMul(b))

	base := pairing.Pair(g, g)
	var rhs pairing.GT
	rhs.Exp(base, ab)

	assert.True(t, lhs.Equal(&rhs))
}

func TestScalarMulAdd(t *testing.T) {
	g := pairing.Gen()

	a := big.NewInt(31337)
	b := big.NewInt(1729)
	sum := big.NewInt(0).Add(a, b)

	lhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	assert.True(t, lhs.Equal(g.ScalarMul(sum)))
}

func TestIdentity(t *testing.T) {
	g := pairing.Gen()

	assert.True(t, pairing.Identity().IsInfinity())
	assert.True(t, g.Add(pairing.Identity()).Equal(g))
	assert.True(t, g.ScalarMul(big.NewInt(0)).IsInfinity())
	assert.True(t, g.ScalarMul(pairing.ScalarField()).IsInfinity())
}

func TestMultiExp(t *testing.T) {
	g := pairing.Gen()

	points := make([]pairing.Point, 8)
	scalars := make([]*big.Int, 8)
	for i := range points {
		points[i] = g.ScalarMul(big.NewInt(int64(i + 2)))
		scalars[i] = big.NewInt(int64(1000 - 7*i))
	}

	want := pairing.Identity()
	for i := range points {
		want = want.Add(points[i].ScalarMul(scalars[i]))
	}

	assert.True(t, pairing.MultiExp(points, scalars).Equal(want))
	assert.True(t, pairing.MultiExp(nil, nil).IsInfinity())
}

func TestPairProductFoldsPairs(t *testing.T) {
	g := pairing.Gen()
	p := g.ScalarMul(big.NewInt(3))
	q := g.ScalarMul(big.NewInt(5))

	// e(p, g) * e(q, g) == e(p + q, g)
	lhs := pairing.PairProduct([]pairing.Point{p, q}, []pairing.Point{g, g})
	rhs := pairing.Pair(p.Add(q), g)
	assert.True(t, lhs.Equal(&rhs))
}
