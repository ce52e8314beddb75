package num_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erhant/babySNARK/num"
)

func TestModInverse(t *testing.T) {
	q := big.NewInt(53)

	for x := int64(1); x < 53; x++ {
		inv := num.ModInverse(big.NewInt(x), q)
		prod := big.NewInt(0).Mul(inv, big.NewInt(x))
		prod.Mod(prod, q)
		assert.Equal(t, int64(1), prod.Int64())
	}

	assert.Panics(t, func() { num.ModInverse(big.NewInt(0), q) })
}

func TestModSqrt(t *testing.T) {
	q := big.NewInt(53)

	// 49 = 7^2 is a residue mod 53.
	root, ok := num.ModSqrt(big.NewInt(49), q)
	assert.True(t, ok)
	sq := big.NewInt(0).Mul(root, root)
	sq.Mod(sq, q)
	assert.Equal(t, int64(49), sq.Int64())

	// 53 = 5 mod 8, so 2 is a non-residue.
	_, ok = num.ModSqrt(big.NewInt(2), q)
	assert.False(t, ok)
}
