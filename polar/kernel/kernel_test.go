package kernel

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ms8 = MinSum[int8]
type ms32 = MinSum[float32]

func TestSaturationPolicy(t *testing.T) {
	th8 := SaturationInit[int8]()
	require.Equal(t, int8(-127), th8)
	assert.Equal(t, int8(-127), Saturate(int8(math.MinInt8), th8))
	assert.Equal(t, int8(-127), Saturate(int8(-127), th8))
	assert.Equal(t, int8(5), Saturate(int8(5), th8))

	require.Zero(t, SaturationInit[float32]())
	require.Zero(t, SaturationInit[int16]())
	for _, v := range []float32{-1e9, -128, -127, 0, 3.5} {
		assert.Equal(t, v, Saturate(v, SaturationInit[float32]()))
	}
	assert.Equal(t, int16(math.MinInt16), Saturate(int16(math.MinInt16), SaturationInit[int16]()))
}

func TestAddSatSticksToBounds(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), addSat[int8](-100, -100))
	assert.Equal(t, int8(math.MaxInt8), addSat[int8](100, 100))
	assert.Equal(t, int8(-1), addSat[int8](100, -101))
	assert.Equal(t, int16(math.MinInt16), addSat[int16](-30000, -30000))
	assert.Equal(t, float32(-200), addSat[float32](-100, -100))
}

func TestGClampsInt8(t *testing.T) {
	la := []int8{-100, 100, 7}
	lb := []int8{-100, -100, 7}
	u := []uint8{0, 1, 1}
	lc := make([]int8, 3)
	G[int8, ms8](la, lb, u, lc, 3, 1)
	assert.Equal(t, []int8{-127, -127, 0}, lc)

	G0[int8, ms8](la, lb, lc, 3, 1)
	assert.Equal(t, []int8{-127, 0, 14}, lc)
}

func TestHZeroDecidesZero(t *testing.T) {
	for _, frames := range []int{1, 3} {
		l := make([]float32, 4*frames)
		l[0] = float32(math.Copysign(0, -1))
		s := []uint8{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}[:4*frames]
		H[float32, ms32](l, s, 4, frames)
		for _, b := range s {
			require.Zero(t, b)
		}

		l8 := make([]int8, 4*frames)
		H[int8, ms8](l8, s, 4, frames)
		for _, b := range s {
			require.Zero(t, b)
		}
	}
}

func TestH0ClearsWhateverIsThere(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 2}, {16, 4}, {33, 5}} {
		n, frames := shape[0], shape[1]
		s := make([]uint8, n*frames+1)
		for i := range s {
			s[i] = 1
		}
		H0(s, n, frames)
		for i := 0; i < n*frames; i++ {
			require.Zero(t, s[i], "n=%d frames=%d i=%d", n, frames, i)
		}
		require.Equal(t, uint8(1), s[n*frames], "wrote past the shape")
	}
}

func TestXOLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, shape := range [][2]int{{1, 1}, {4, 2}, {13, 3}} {
		n, frames := shape[0], shape[1]
		a, b := randBits(r, n*frames), randBits(r, n*frames)

		c := make([]uint8, n*frames)
		XO0(b, c, n, frames)
		require.Equal(t, b, c)

		XO(a, b, c, n, frames)
		back := make([]uint8, n*frames)
		XO(c, b, back, n, frames)
		require.Equal(t, a, back)

		// In place, the way the decoder merges a left half.
		inPlace := append([]uint8(nil), a...)
		XO(inPlace, b, inPlace, n, frames)
		require.Equal(t, c, inPlace)
	}
}

func TestRepBroadcastsCommonSign(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{1, 2, 3, 4, 8, 16, 32} {
		for _, frames := range []int{1, 4} {
			for _, sign := range []int8{1, -1} {
				l := make([]int8, n*frames)
				for i := range l {
					l[i] = sign * int8(1+r.IntN(127))
				}
				s := make([]uint8, n*frames)
				Rep[int8, ms8](l, s, n, frames)
				want := uint8(0)
				if sign < 0 {
					want = 1
				}
				for i, b := range s {
					require.Equal(t, want, b, "n=%d frames=%d i=%d", n, frames, i)
				}
			}
		}
	}
}

func TestRepDecidesPerFrame(t *testing.T) {
	// Two frames interleaved: frame 0 sums to +1, frame 1 to -6.
	l := []float32{
		3, -2,
		-4, -1,
		2, -3,
	}
	s := make([]uint8, 6)
	Rep[float32, ms32](l, s, 3, 2)
	assert.Equal(t, []uint8{0, 1, 0, 1, 0, 1}, s)
}

func TestRepSaturatesAddends(t *testing.T) {
	// -128 is clamped to -127 before the sum, so +127 cancels it to zero.
	l := []int8{math.MinInt8, math.MaxInt8}
	s := make([]uint8, 2)
	Rep[int8, ms8](l, s, 2, 1)
	assert.Equal(t, []uint8{0, 0}, s)
}

func TestSpcKeepsEvenParity(t *testing.T) {
	t.Run("no flip", func(t *testing.T) {
		s := make([]uint8, 4)
		Spc[int8, ms8]([]int8{2, -1, 3, -4}, s, 4, 1)
		assert.Equal(t, []uint8{0, 1, 0, 1}, s)
	})
	t.Run("flip weakest", func(t *testing.T) {
		s := make([]uint8, 4)
		Spc[int8, ms8]([]int8{2, -1, 3, 4}, s, 4, 1)
		assert.Equal(t, []uint8{0, 0, 0, 0}, s)

		Spc[int8, ms8]([]int8{-2, -1, 3, -4}, s, 4, 1)
		assert.Equal(t, []uint8{1, 0, 0, 1}, s)
	})
	t.Run("tie goes to first lane", func(t *testing.T) {
		s := make([]uint8, 4)
		Spc[int8, ms8]([]int8{3, -1, 1, 5}, s, 4, 1)
		assert.Equal(t, []uint8{0, 0, 0, 0}, s)
	})
	t.Run("single negative", func(t *testing.T) {
		s := make([]uint8, 8)
		Spc[float32, ms32]([]float32{1, 2, 3, -9, 4, 5, 6, 7}, s, 8, 1)
		assert.Equal(t, []uint8{1, 0, 0, 1, 0, 0, 0, 0}, s)
	})
	t.Run("all negative", func(t *testing.T) {
		for _, n := range []int{2, 3, 4, 5, 8} {
			l := make([]float32, n)
			for i := range l {
				l[i] = -float32(i + 1)
			}
			s := make([]uint8, n)
			Spc[float32, ms32](l, s, n, 1)
			assert.Zero(t, parity(s), "n=%d", n)
			if n%2 == 1 {
				assert.Equal(t, uint8(0), s[0], "n=%d", n)
			}
		}
	})
	t.Run("every sign pattern", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 4, 6} {
			for mask := 0; mask < 1<<n; mask++ {
				l := make([]int8, n)
				for i := range l {
					l[i] = int8(10 + i)
					if mask>>i&1 == 1 {
						l[i] = -l[i]
					}
				}
				s := make([]uint8, n)
				Spc[int8, ms8](l, s, n, 1)
				require.Zero(t, parity(s), "n=%d mask=%b", n, mask)
			}
		}
	})
	t.Run("frames are independent", func(t *testing.T) {
		// Frame 0 has odd parity, frame 1 even.
		l := []int8{
			5, -5,
			-1, -2,
			7, 3,
		}
		s := make([]uint8, 6)
		Spc[int8, ms8](l, s, 3, 2)
		assert.Equal(t, []uint8{0, 1, 0, 1, 0, 0}, s)
	})
}

func TestGRBroadcastsFirstBit(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	n, frames := 5, 3
	la, lb := randLLR[float32](r, n*frames), randLLR[float32](r, n*frames)
	u := []uint8{1, 0, 1}
	full := make([]uint8, n*frames)
	for e := 0; e < n; e++ {
		copy(full[e*frames:], u)
	}
	want := make([]float32, n*frames)
	G[float32, ms32](la, lb, full, want, n, frames)

	// Only the first frames bits are read.
	u = append(u, 9, 9, 9)
	got := make([]float32, n*frames)
	GR[float32, ms32](la, lb, u, got, n, frames)
	assert.Equal(t, want, got)
}

func TestInterAndIntraAgree(t *testing.T) {
	t.Run("int8", func(t *testing.T) { checkIntra[int8, MinSum[int8]](t) })
	t.Run("int16", func(t *testing.T) { checkIntra[int16, MinSum[int16]](t) })
	t.Run("float32", func(t *testing.T) { checkIntra[float32, MinSum[float32]](t) })
	t.Run("float64 boxplus", func(t *testing.T) { checkIntra[float64, BoxPlus[float64]](t) })
}

func checkIntra[R LLR, C Combiner[R]](t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	inter, intra := NewSet[R, C](false), NewSet[R, C](true)
	for _, n := range IntraSizes {
		for _, frames := range []int{1, 4} {
			name := fmt.Sprintf("n=%d frames=%d", n, frames)
			m := n * frames
			la, lb := randLLR[R](r, m), randLLR[R](r, m)
			u, v := randBits(r, m), randBits(r, m)

			for _, k := range []Name{KF, KG0} {
				want, got := make([]R, m), make([]R, m)
				inter.Combine(k, n)(la, lb, want, frames)
				intra.Combine(k, n)(la, lb, got, frames)
				require.Equal(t, want, got, "%s %s", k, name)
			}
			for _, k := range []Name{KG, KGR} {
				want, got := make([]R, m), make([]R, m)
				inter.Propagate(k, n)(la, lb, u, want, frames)
				intra.Propagate(k, n)(la, lb, u, got, frames)
				require.Equal(t, want, got, "%s %s", k, name)
			}
			for _, k := range []Name{KH, KH0, KRep, KSpc} {
				want, got := make([]uint8, m), make([]uint8, m)
				inter.Decide(k, n)(la, want, frames)
				intra.Decide(k, n)(la, got, frames)
				require.Equal(t, want, got, "%s %s", k, name)
			}
			for _, k := range []Name{KXO, KXO0} {
				want, got := make([]uint8, m), make([]uint8, m)
				inter.Merge(k, n)(u, v, want, frames)
				intra.Merge(k, n)(u, v, got, frames)
				require.Equal(t, want, got, "%s %s", k, name)
			}
		}
	}
}

func TestSetRejectsWrongFamily(t *testing.T) {
	s := NewSet[float32, ms32](true)
	assert.Panics(t, func() { s.Combine(KH, 4) })
	assert.Panics(t, func() { s.Propagate(KF, 4) })
	assert.Panics(t, func() { s.Decide(KXO, 4) })
	assert.Panics(t, func() { s.Merge(KRep, 4) })
}

func TestShortBufferPanics(t *testing.T) {
	assert.Panics(t, func() {
		F[float32, ms32](make([]float32, 4), make([]float32, 3), make([]float32, 4), 2, 2)
	})
	assert.Panics(t, func() {
		Spc[int8, ms8](make([]int8, 8), make([]uint8, 7), 4, 2)
	})
	assert.Panics(t, func() {
		NewSet[int8, ms8](true).Combine(KF, 8)(make([]int8, 7), make([]int8, 8), make([]int8, 8), 1)
	})
}

func TestCombiners(t *testing.T) {
	assert.Equal(t, float32(2), ms32{}.F(2, 3))
	assert.Equal(t, float32(-2), ms32{}.F(-2, 3))
	assert.Equal(t, float32(2), ms32{}.F(-2, -3))
	assert.Equal(t, float32(5), ms32{}.G(2, 3, 0))
	assert.Equal(t, float32(1), ms32{}.G(2, 3, 1))

	exact := 2 * math.Atanh(math.Tanh(1.0)*math.Tanh(1.5))
	assert.InDelta(t, exact, BoxPlus[float64]{}.F(2, 3), 1e-12)
	assert.InDelta(t, -exact, BoxPlus[float64]{}.F(-2, 3), 1e-12)
	assert.InDelta(t, 30.0, BoxPlus[float64]{}.F(30, 400), 1e-9)
	assert.Equal(t, int8(-2), BoxPlus[int8]{}.F(-2, 3))
	assert.True(t, floatLane[float32]())
	assert.False(t, floatLane[int32]())
}

func TestNames(t *testing.T) {
	for n := KF; n < numNames; n++ {
		got, err := ParseName(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
		assert.NotZero(t, n.Family(), "%s", n)
	}
	_, err := ParseName("box")
	assert.Error(t, err)
}

func randLLR[R LLR](r *rand.Rand, m int) []R {
	out := make([]R, m)
	for i := range out {
		out[i] = R(r.IntN(255) - 127)
	}
	return out
}

func randBits(r *rand.Rand, m int) []uint8 {
	out := make([]uint8, m)
	for i := range out {
		out[i] = uint8(r.IntN(2))
	}
	return out
}

func parity(s []uint8) uint8 {
	var p uint8
	for _, b := range s {
		p ^= b
	}
	return p
}
