package polyring

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/erhant/babySNARK/csprng"
)

// UniformSampler samples uniformly random field elements.
// It is backed by a blake2b XOF and is suitable for secret randomness.
type UniformSampler struct {
	ring *Ring

	*csprng.UniformSampler

	modBuf  []byte
	msbMask byte
}

// NewUniformSampler creates a new UniformSampler.
func NewUniformSampler(r *Ring) *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(r, seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler with seed.
func NewUniformSamplerWithSeed(r *Ring, seed []byte) *UniformSampler {
	modBuf, msbMask := modSampleParams(r.modulus)
	return &UniformSampler{
		ring: r,

		UniformSampler: csprng.NewUniformSamplerWithSeed(seed),

		modBuf:  modBuf,
		msbMask: msbMask,
	}
}

// SampleMod samples a uniformly random value modulo the ring modulus.
func (s *UniformSampler) SampleMod() *big.Int {
	x := big.NewInt(0)
	s.SampleModAssign(x)
	return x
}

// SampleModAssign samples a uniformly random value modulo the ring modulus.
func (s *UniformSampler) SampleModAssign(xOut *big.Int) {
	sampleModAssign(s, s.modBuf, s.msbMask, s.ring.modulus, xOut)
}

// StreamSampler samples uniformly random field elements.
// It is backed by AES-CTR and intended for test instance generation.
type StreamSampler struct {
	ring *Ring

	*csprng.StreamSampler

	modBuf  []byte
	msbMask byte
}

// NewStreamSampler creates a new StreamSampler.
func NewStreamSampler(r *Ring) *StreamSampler {
	modBuf, msbMask := modSampleParams(r.modulus)
	return &StreamSampler{
		ring: r,

		StreamSampler: csprng.NewStreamSampler(),

		modBuf:  modBuf,
		msbMask: msbMask,
	}
}

// SampleMod samples a uniformly random value modulo the ring modulus.
func (s *StreamSampler) SampleMod() *big.Int {
	x := big.NewInt(0)
	s.SampleModAssign(x)
	return x
}

// SampleModAssign samples a uniformly random value modulo the ring modulus.
func (s *StreamSampler) SampleModAssign(xOut *big.Int) {
	sampleModAssign(s, s.modBuf, s.msbMask, s.ring.modulus, xOut)
}

func modSampleParams(q *big.Int) (modBuf []byte, msbMask byte) {
	k := (q.BitLen() + 7) / 8
	b := uint(q.BitLen() % 8)
	if b == 0 {
		b = 8
	}

	return make([]byte, k), byte((1 << b) - 1)
}

// sampleModAssign rejection-samples a value in [0, q) from the prng.
func sampleModAssign(prng io.Reader, modBuf []byte, msbMask byte, q, xOut *big.Int) {
	for {
		if _, err := io.ReadFull(prng, modBuf); err != nil {
			panic(err)
		}

		modBuf[0] &= msbMask

		xOut.SetBytes(modBuf)
		if xOut.Cmp(q) < 0 {
			return
		}
	}
}
