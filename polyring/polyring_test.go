package polyring_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/erhant/babySNARK/pairing"
	"github.com/erhant/babySNARK/polyring"
)

var (
	ringSmall = polyring.NewRing(big.NewInt(53))
	ringLarge = polyring.NewRing(pairing.ScalarField())
)

func genPoly(r *polyring.Ring, maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Int64Range(0, 1<<62)).Map(func(cs []int64) polyring.Poly {
		return r.NewPolyInt64(cs...)
	})
}

func testRingProperties(t *testing.T, r *polyring.Ring) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("add commutes", prop.ForAll(
		func(p0, p1 polyring.Poly) bool {
			return r.Add(p0, p1).Equal(r.Add(p1, p0))
		},
		genPoly(r, 16), genPoly(r, 16),
	))

	properties.Property("mul commutes", prop.ForAll(
		func(p0, p1 polyring.Poly) bool {
			return r.Mul(p0, p1).Equal(r.Mul(p1, p0))
		},
		genPoly(r, 16), genPoly(r, 16),
	))

	properties.Property("mul distributes over add", prop.ForAll(
		func(p0, p1, p2 polyring.Poly) bool {
			lhs := r.Mul(p0, r.Add(p1, p2))
			rhs := r.Add(r.Mul(p0, p1), r.Mul(p0, p2))
			return lhs.Equal(rhs)
		},
		genPoly(r, 8), genPoly(r, 8), genPoly(r, 8),
	))

	properties.Property("neg is the additive inverse", prop.ForAll(
		func(p polyring.Poly) bool {
			return r.Add(p, r.Neg(p)).IsZero()
		},
		genPoly(r, 16),
	))

	properties.Property("sub then add is identity", prop.ForAll(
		func(p0, p1 polyring.Poly) bool {
			return r.Add(r.Sub(p0, p1), p1).Equal(p0)
		},
		genPoly(r, 16), genPoly(r, 16),
	))

	properties.Property("division reconstructs the dividend", prop.ForAll(
		func(p, d polyring.Poly) bool {
			if d.IsZero() {
				return true
			}
			quo, rem, err := r.QuoRem(p, d)
			if err != nil {
				return false
			}
			if rem.Degree() >= d.Degree() {
				return false
			}
			return r.Add(r.Mul(d, quo), rem).Equal(p)
		},
		genPoly(r, 24), genPoly(r, 12),
	))

	properties.TestingRun(t)
}

func TestRingPropertiesSmallField(t *testing.T) {
	testRingProperties(t, ringSmall)
}

func TestRingPropertiesLargeField(t *testing.T) {
	testRingProperties(t, ringLarge)
}

func TestInterpolateRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	for _, r := range []*polyring.Ring{ringSmall, ringLarge} {
		k := 10
		xs := make([]*big.Int, k)
		for i := range xs {
			xs[i] = big.NewInt(int64(i + 1))
		}

		properties.Property("interpolation reproduces the target values mod "+r.Modulus().String(), prop.ForAll(
			func(raw []int64) bool {
				ys := make([]*big.Int, k)
				for i := range ys {
					ys[i] = big.NewInt(0).Mod(big.NewInt(raw[i]), r.Modulus())
				}

				p := r.Interpolate(xs, ys)
				if p.Degree() >= k {
					return false
				}
				for i := range xs {
					if r.Evaluate(p, xs[i]).Cmp(ys[i]) != 0 {
						return false
					}
				}
				return true
			},
			gen.SliceOfN(k, gen.Int64Range(0, 1<<62)),
		))
	}

	properties.TestingRun(t)
}

func TestVanishing(t *testing.T) {
	r := ringSmall
	points := []*big.Int{big.NewInt(1), big.NewInt(5), big.NewInt(12)}

	tp := r.Vanishing(points)
	assert.Equal(t, len(points), tp.Degree())
	assert.Equal(t, 0, tp.Coeffs[tp.Degree()].Cmp(big.NewInt(1)))

	for _, s := range points {
		assert.Equal(t, 0, r.Evaluate(tp, s).Sign())
	}
	assert.NotEqual(t, 0, r.Evaluate(tp, big.NewInt(2)).Sign())
}

func TestQuoRemExact(t *testing.T) {
	r := ringSmall

	// (X - 1)(X - 2) divided by (X - 1) is exactly (X - 2).
	d := r.NewPolyInt64(-1, 1)
	p := r.Mul(d, r.NewPolyInt64(-2, 1))

	quo, rem, err := r.QuoRem(p, d)
	assert.NoError(t, err)
	assert.True(t, rem.IsZero())
	assert.True(t, quo.Equal(r.NewPolyInt64(-2, 1)))
}

func TestQuoRemByZero(t *testing.T) {
	r := ringSmall

	_, _, err := r.QuoRem(r.NewPolyInt64(1, 2, 3), r.ZeroPoly())
	assert.ErrorIs(t, err, polyring.ErrDivisionByZeroPoly)

	// A divisor that trims to zero is a zero divisor too.
	_, _, err = r.QuoRem(r.NewPolyInt64(1, 2, 3), r.NewPolyInt64(0, 0))
	assert.ErrorIs(t, err, polyring.ErrDivisionByZeroPoly)
}

func TestTrimmedEquality(t *testing.T) {
	r := ringSmall

	assert.True(t, r.NewPolyInt64(1, 2, 0, 0).Equal(r.NewPolyInt64(1, 2)))
	assert.True(t, r.NewPolyInt64(0).IsZero())
	assert.Equal(t, -1, r.ZeroPoly().Degree())
	assert.True(t, r.NewPolyInt64(53, 106).IsZero())
}

func TestNewPolyReduces(t *testing.T) {
	r := ringSmall

	coeffs := []*big.Int{big.NewInt(54), big.NewInt(-1), big.NewInt(106)}
	assert.True(t, r.NewPoly(coeffs).Equal(r.NewPolyInt64(1, 52)))
}

func TestInterpolateDuplicatePoints(t *testing.T) {
	r := ringSmall
	xs := []*big.Int{big.NewInt(3), big.NewInt(3)}
	ys := []*big.Int{big.NewInt(1), big.NewInt(2)}

	assert.Panics(t, func() { r.Interpolate(xs, ys) })
}

func TestSampleMod(t *testing.T) {
	us := polyring.NewUniformSamplerWithSeed(ringSmall, []byte{1, 2, 3, 4})
	ss := polyring.NewStreamSampler(ringLarge)

	for i := 0; i < 1024; i++ {
		x := us.SampleMod()
		assert.True(t, x.Sign() >= 0 && x.Cmp(ringSmall.Modulus()) < 0)

		y := ss.SampleMod()
		assert.True(t, y.Sign() >= 0 && y.Cmp(ringLarge.Modulus()) < 0)
	}
}
