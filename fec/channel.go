package fec

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Observe-l/polarsc/polar/kernel"
)

// Sigma is the noise deviation of a BPSK AWGN channel at ebn0 dB for a code
// of the given rate.
func Sigma(ebn0 float64, rate float64) float64 {
	return math.Sqrt(1 / (2 * rate * math.Pow(10, ebn0/10)))
}

// Channel maps code bits to BPSK symbols (0 -> +1, 1 -> -1), adds white
// Gaussian noise and returns channel LLRs 2y/sigma^2.
type Channel struct {
	sigma float64
	rng   *rand.Rand
}

// NewChannel seeds a channel. Equal seeds give equal noise.
func NewChannel(sigma float64, seed uint64) *Channel {
	return &Channel{sigma: sigma, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *Channel) Sigma() float64 { return c.sigma }

// Transmit fills llr with the channel output for x.
func (c *Channel) Transmit(x []uint8, llr []float64) {
	if len(x) != len(llr) {
		panic(fmt.Sprintf("fec: transmit %d bits into %d LLRs", len(x), len(llr)))
	}
	scale := 2 / (c.sigma * c.sigma)
	for i, b := range x {
		y := 1 - 2*float64(b&1)
		if c.sigma > 0 {
			y += c.sigma * c.rng.NormFloat64()
		}
		llr[i] = scale * y
	}
}

// Quantize converts float LLRs to the decoder's element type. Float types
// pass through. Integer types are scaled by 2^frac, rounded and clamped to
// the symmetric range of a bits-wide signed value, or of R when R is
// narrower.
func Quantize[R kernel.LLR](llr []float64, out []R, bits, frac int) {
	if len(llr) != len(out) {
		panic(fmt.Sprintf("fec: quantize %d LLRs into %d", len(llr), len(out)))
	}
	var zero R
	var width int
	switch any(zero).(type) {
	case int8:
		width = 8
	case int16:
		width = 16
	case int32:
		width = 32
	default:
		for i, v := range llr {
			out[i] = R(v)
		}
		return
	}
	// A quantizer wider than the lane would wrap on conversion.
	limit := math.Ldexp(1, min(bits, width)-1) - 1
	scale := math.Ldexp(1, frac)
	for i, v := range llr {
		q := math.Round(v * scale)
		q = math.Max(-limit, math.Min(limit, q))
		out[i] = R(q)
	}
}
