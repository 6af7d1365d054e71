package sc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Observe-l/polarsc/fec"
	"github.com/Observe-l/polarsc/polar/kernel"
	"github.com/Observe-l/polarsc/polar/pattern"
	"github.com/Observe-l/polarsc/polar/tree"
)

// referenceSC is plain recursive successive-cancellation decoding with the
// min-sum update rules. It returns the codeword estimate of one frame.
func referenceSC(l []float64, frozen []bool) []uint8 {
	n := len(l)
	if n == 1 {
		if frozen[0] || l[0] >= 0 {
			return []uint8{0}
		}
		return []uint8{1}
	}
	half := n / 2
	lc := make([]float64, half)
	for i := range lc {
		a, b := l[i], l[i+half]
		m := min(abs(a), abs(b))
		if (a < 0) != (b < 0) {
			m = -m
		}
		lc[i] = m
	}
	xl := referenceSC(lc, frozen[:half])
	for i := range lc {
		if xl[i] != 0 {
			lc[i] = l[i+half] - l[i]
		} else {
			lc[i] = l[i+half] + l[i]
		}
	}
	xr := referenceSC(lc, frozen[half:])
	x := make([]uint8, n)
	for i := 0; i < half; i++ {
		x[i] = xl[i] ^ xr[i]
		x[i+half] = xr[i]
	}
	return x
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func randomMask(r *rand.Rand, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = r.IntN(2) == 0
	}
	return out
}

func randomLLR(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 3 * r.NormFloat64()
	}
	return out
}

func specialized(t *testing.T, frozen []bool, catalog string) *tree.Tree {
	t.Helper()
	c, err := pattern.ParseCatalog(catalog)
	require.NoError(t, err)
	tr := tree.New(frozen)
	tr.Specialize(c)
	return tr
}

// frame extracts frame f from an element-major batch.
func frame[T any](batch []T, frames, f int) []T {
	out := make([]T, len(batch)/frames)
	for e := range out {
		out[e] = batch[e*frames+f]
	}
	return out
}

// isCodeword reports whether every frame of x has zero frozen u-bits.
func isCodeword(x []uint8, frozen []bool, frames int) bool {
	u := append([]uint8(nil), x...)
	fec.Transform(u, frames)
	for i, f := range frozen {
		if !f {
			continue
		}
		for _, b := range u[i*frames : (i+1)*frames] {
			if b != 0 {
				return false
			}
		}
	}
	return true
}

// Rep, Rate0, Rate1 and the left-child shortcuts all decode exactly like
// plain SC, so with SPC left out the decoder must agree bit for bit.
const scEquivalent = "R0,R0L,R1,REP,REPL"

func TestDecodeMatchesReferenceSC(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, intra := range []bool{false, true} {
		for _, n := range []int{2, 4, 8, 32, 128, 512} {
			for _, catalog := range []string{"", scEquivalent} {
				frozen := randomMask(r, n)
				tr := specialized(t, frozen, catalog)
				const frames = 3
				d := New[float64, kernel.MinSum[float64]](tr, frames, WithIntra(intra))
				for trial := 0; trial < 5; trial++ {
					llr := randomLLR(r, n*frames)
					x := d.Decode(llr)
					for f := 0; f < frames; f++ {
						want := referenceSC(frame(llr, frames, f), frozen)
						require.Equal(t, want, frame(x, frames, f),
							"n=%d catalog=%q intra=%v frame=%d", n, catalog, intra, f)
					}
				}
			}
		}
	}
}

func TestDecodeAlwaysReturnsCodewords(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	for _, catalog := range []string{"", scEquivalent, "R0,R1,REP,SPC", "R0,R0L,R1,REP,REPL,SPC"} {
		for _, n := range []int{4, 16, 64, 256} {
			frozen := randomMask(r, n)
			tr := specialized(t, frozen, catalog)
			d := New[float32, kernel.MinSum[float32]](tr, 2)
			llr := make([]float32, n*2)
			for trial := 0; trial < 10; trial++ {
				for i := range llr {
					llr[i] = float32(2 * r.NormFloat64())
				}
				require.True(t, isCodeword(d.Decode(llr), frozen, 2), "catalog=%q n=%d", catalog, n)
			}
		}
	}
}

func TestDecodeSPCCorrectsWeakestBit(t *testing.T) {
	tr := specialized(t, []bool{true, false, false, false}, "R0,R1,REP,SPC")
	require.Equal(t, pattern.Spc, tr.Node(tr.Root()).Pattern)
	d := New[int8, kernel.MinSum[int8]](tr, 1)
	// Hard decisions 0,1,0,1 already have even parity.
	assert.Equal(t, []uint8{0, 1, 0, 1}, d.Decode([]int8{2, -1, 3, -4}))
	// Odd parity: the least confident bit flips.
	assert.Equal(t, []uint8{0, 0, 0, 0}, d.Decode([]int8{2, -1, 3, 4}))
	assert.Equal(t, 1, d.Steps())
}

func TestDecodeClampsInt8ChannelFloor(t *testing.T) {
	tr := specialized(t, []bool{true, false, false, false}, "R0,R1,REP,SPC")
	d := New[int8, kernel.MinSum[int8]](tr, 1)
	// -128 reads as the most reliable 1, so the parity fix lands on the 2.
	assert.Equal(t, []uint8{1, 1, 0, 0}, d.Decode([]int8{-128, 2, 3, 4}))

	r := rand.New(rand.NewPCG(5, 6))
	frozen := randomMask(r, 64)
	const frames = 4
	raw := make([]int8, 64*frames)
	floored := make([]int8, len(raw))
	for i := range raw {
		raw[i] = int8(r.IntN(256) - 128)
		if i%7 == 0 {
			raw[i] = -128
		}
		floored[i] = max(raw[i], -127)
	}
	for _, catalog := range []string{"", "R0,R0L,R1,REP,REPL,SPC"} {
		tr := specialized(t, frozen, catalog)
		a := New[int8, kernel.MinSum[int8]](tr, frames)
		b := New[int8, kernel.MinSum[int8]](tr, frames)
		assert.Equal(t, b.Decode(floored), a.Decode(raw), "catalog %q", catalog)
	}
}

func TestDecodeFramesAreIndependent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))
	const n, frames = 128, 5
	frozen, err := fec.FrozenBits(fec.ConstructionGA, n, 64, 0.8)
	require.NoError(t, err)
	tr := specialized(t, frozen, "R0,R0L,R1,REP,REPL,SPC")

	batch := New[float64, kernel.BoxPlus[float64]](tr, frames)
	single := New[float64, kernel.BoxPlus[float64]](tr, 1)
	llr := randomLLR(r, n*frames)
	x := append([]uint8(nil), batch.Decode(llr)...)
	for f := 0; f < frames; f++ {
		assert.Equal(t, single.Decode(frame(llr, frames, f)), frame(x, frames, f), "frame %d", f)
	}
}

func TestDecodeIntraMatchesInter(t *testing.T) {
	r := rand.New(rand.NewPCG(4, 4))
	for _, n := range []int{8, 64, 256} {
		frozen := randomMask(r, n)
		tr := specialized(t, frozen, "R0,R0L,R1,REP,REPL,SPC")
		const frames = 4
		inter := New[int16, kernel.MinSum[int16]](tr, frames, WithIntra(false))
		intra := New[int16, kernel.MinSum[int16]](tr, frames, WithIntra(true))
		assert.Equal(t, inter.Steps(), intra.Steps())
		llr := make([]int16, n*frames)
		for trial := 0; trial < 10; trial++ {
			for i := range llr {
				llr[i] = int16(r.IntN(41) - 20)
			}
			want := append([]uint8(nil), inter.Decode(llr)...)
			require.Equal(t, want, intra.Decode(llr), "n=%d", n)
		}
	}
}

func TestDecodeNoiseless(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))
	const n, k, frames = 256, 128, 4
	frozen, err := fec.FrozenBits(fec.ConstructionBEC, n, k, 0.5)
	require.NoError(t, err)
	for _, systematic := range []bool{false, true} {
		enc, err := fec.NewEncoder(frozen, systematic)
		require.NoError(t, err)
		info := make([]uint8, k*frames)
		for i := range info {
			info[i] = uint8(r.IntN(2))
		}
		x := make([]uint8, n*frames)
		require.NoError(t, enc.Encode(info, x, frames))
		llr := make([]int8, n*frames)
		for i, b := range x {
			llr[i] = 10 - 20*int8(b)
		}
		for _, catalog := range []string{"", "R0,R0L,R1,REP,REPL,SPC"} {
			tr := specialized(t, frozen, catalog)
			d := New[int8, kernel.MinSum[int8]](tr, frames, WithSystematic(systematic))
			assert.Equal(t, k, d.K())
			assert.Equal(t, n, d.N())
			assert.Equal(t, frames, d.Frames())
			got := make([]uint8, k*frames)
			d.DecodeInto(llr, got)
			assert.Equal(t, info, got, "systematic=%v catalog=%q", systematic, catalog)
			assert.Equal(t, x, d.Decode(llr))
		}
	}
}

func TestSpecializationShrinksSteps(t *testing.T) {
	frozen, err := fec.FrozenBits(fec.ConstructionGA, 1024, 512, 0.7)
	require.NoError(t, err)
	plain := New[float32, kernel.MinSum[float32]](specialized(t, frozen, ""), 1)
	fast := New[float32, kernel.MinSum[float32]](specialized(t, frozen, "R0,R0L,R1,REP,REPL,SPC"), 1)
	assert.Less(t, fast.Steps(), plain.Steps())
}

func TestNewPanics(t *testing.T) {
	tr := tree.New([]bool{true, false, false, false})
	assert.Panics(t, func() { New[float32, kernel.MinSum[float32]](tr, 1) }, "unspecialized")
	tr.Specialize(pattern.DefaultCatalog())
	assert.Panics(t, func() { New[float32, kernel.MinSum[float32]](tr, 0) })

	d := New[float32, kernel.MinSum[float32]](tr, 2)
	assert.Panics(t, func() { d.Decode(make([]float32, 4)) })
	assert.Panics(t, func() { d.DecodeInto(make([]float32, 8), make([]uint8, 3)) })
}

func TestObserverAndLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)
	core, logs := observer.New(zap.DebugLevel)

	tr := specialized(t, []bool{true, true, false, false, true, false, false, false}, "")
	d := New[float32, kernel.MinSum[float32]](tr, 3, WithObserver(obs), WithLogger(zap.New(core)))
	require.Equal(t, 1, logs.FilterMessage("sc decoder compiled").Len())
	entry := logs.All()[0]
	assert.EqualValues(t, 8, entry.ContextMap()["n"])
	assert.EqualValues(t, 3, entry.ContextMap()["frames"])

	obs.EXPECT().ObserveDecode(3, gomock.Any()).Times(2)
	d.Decode(make([]float32, 24))
	d.Decode(make([]float32, 24))
}
