// Package sc drives successive-cancellation decoding over a specialized
// polar tree.
//
// New walks the tree once and compiles it into a flat list of kernel calls
// bound to the decoder's own buffers, so Decode is a straight loop with no
// tree traversal and no allocation. Each Decode call handles a batch of
// frames laid out element-major: the LLR of code bit e in frame f is at
// index e*frames+f.
package sc

import (
	"fmt"
	"math/bits"
	"time"

	"go.uber.org/zap"

	"github.com/Observe-l/polarsc/fec"
	"github.com/Observe-l/polarsc/polar/kernel"
	"github.com/Observe-l/polarsc/polar/pattern"
	"github.com/Observe-l/polarsc/polar/tree"
)

// Observer is told about every completed Decode call.
type Observer interface {
	ObserveDecode(frames int, elapsed time.Duration)
}

type options struct {
	intra      bool
	systematic bool
	observer   Observer
	logger     *zap.Logger
}

// Option configures a Decoder.
type Option func(*options)

// WithIntra selects the unrolled kernels for small nodes. It defaults to
// kernel.DefaultIntra.
func WithIntra(on bool) Option { return func(o *options) { o.intra = on } }

// WithSystematic makes DecodeInto read information bits straight from the
// codeword estimate instead of re-encoding it.
func WithSystematic(on bool) Option { return func(o *options) { o.systematic = on } }

func WithObserver(obs Observer) Option { return func(o *options) { o.observer = obs } }

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// skipLeft marks patterns whose left child is known to decode to zeros, so
// the f kernel and the left subtree are not run at all.
var skipLeft = [pattern.NumTags]bool{
	pattern.Rate0Left: true,
}

// Decoder is a successive-cancellation decoder for one tree and one batch
// size. It owns its buffers and is not safe for concurrent use; run one
// Decoder per goroutine over a shared tree instead.
type Decoder[R kernel.LLR, C kernel.Combiner[R]] struct {
	tree    *tree.Tree
	frames  int
	llr     [][]R // llr[h] holds the LLRs of the active node of height h
	bits    []uint8
	scratch []uint8
	info    []int
	steps   []func()
	floor   R
	opts    options
}

// New compiles a decoder for t, which must already be specialized.
func New[R kernel.LLR, C kernel.Combiner[R]](t *tree.Tree, frames int, opts ...Option) *Decoder[R, C] {
	if !t.Specialized() {
		panic("sc: tree is not specialized")
	}
	if frames < 1 {
		panic(fmt.Sprintf("sc: invalid frame count %d", frames))
	}
	o := options{intra: kernel.DefaultIntra(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	n := t.N()
	d := &Decoder[R, C]{
		tree:    t,
		frames:  frames,
		llr:     make([][]R, bits.TrailingZeros(uint(n))+1),
		bits:    make([]uint8, n*frames),
		scratch: make([]uint8, n*frames),
		floor:   kernel.SaturationInit[R](),
		opts:    o,
	}
	for h := range d.llr {
		d.llr[h] = make([]R, (1<<h)*frames)
	}
	for i, f := range t.Frozen() {
		if !f {
			d.info = append(d.info, i)
		}
	}
	d.compile(kernel.NewSet[R, C](o.intra), t.Root())
	o.logger.Debug("sc decoder compiled",
		zap.Int("n", n),
		zap.Int("k", len(d.info)),
		zap.Int("frames", frames),
		zap.Int("steps", len(d.steps)),
		zap.Bool("intra", o.intra),
		zap.String("target", kernel.Target()),
		zap.Int("lanes", kernel.Lanes[R]()),
	)
	return d
}

func (d *Decoder[R, C]) compile(set kernel.Set[R, C], i int) {
	node := d.tree.Node(i)
	fr := d.frames
	l := d.llr[node.Height]
	s := d.bits[node.Offset*fr : (node.Offset+node.N)*fr]
	f, g, h := node.Pattern.Slots()

	if node.IsLeaf() || node.Pattern.Terminal() {
		decide := set.Decide(h, node.N)
		d.steps = append(d.steps, func() { decide(l, s, fr) })
		return
	}

	half := node.N / 2
	la, lb := l[:half*fr], l[half*fr:node.N*fr]
	lc := d.llr[node.Height-1]
	sl, sr := s[:half*fr], s[half*fr:]

	if !skipLeft[node.Pattern] {
		combine := set.Combine(f, half)
		d.steps = append(d.steps, func() { combine(la, lb, lc, fr) })
		d.compile(set, node.Left)
	}

	switch g.Family() {
	case kernel.FamilyCombine:
		g0 := set.Combine(g, half)
		d.steps = append(d.steps, func() { g0(la, lb, lc, fr) })
	case kernel.FamilyPropagate:
		gk := set.Propagate(g, half)
		d.steps = append(d.steps, func() { gk(la, lb, sl, lc, fr) })
	default:
		panic(fmt.Sprintf("sc: pattern %s has no usable g kernel", node.Pattern))
	}
	d.compile(set, node.Right)

	merge := set.Merge(h, half)
	d.steps = append(d.steps, func() { merge(sl, sr, sl, fr) })
}

// Decode runs the decoder over one batch of channel LLRs and returns the
// codeword estimate, frame-interleaved. The returned slice is owned by the
// decoder and overwritten by the next call.
func (d *Decoder[R, C]) Decode(llr []R) []uint8 {
	root := d.llr[len(d.llr)-1]
	if len(llr) != len(root) {
		panic(fmt.Sprintf("sc: got %d LLRs, want %d", len(llr), len(root)))
	}
	start := time.Now()
	copy(root, llr)
	if d.floor != 0 {
		// -128 has no int8 magnitude; the kernels assume the floor holds.
		for i, v := range root {
			root[i] = kernel.Saturate(v, d.floor)
		}
	}
	for _, step := range d.steps {
		step()
	}
	if d.opts.observer != nil {
		d.opts.observer.ObserveDecode(d.frames, time.Since(start))
	}
	return d.bits
}

// DecodeInto decodes llr and writes the K information bits of every frame
// to info, frame-interleaved.
func (d *Decoder[R, C]) DecodeInto(llr []R, info []uint8) {
	fr := d.frames
	if len(info) != len(d.info)*fr {
		panic(fmt.Sprintf("sc: info buffer holds %d bits, want %d", len(info), len(d.info)*fr))
	}
	src := d.Decode(llr)
	if !d.opts.systematic {
		copy(d.scratch, src)
		fec.Transform(d.scratch, fr)
		src = d.scratch
	}
	for j, pos := range d.info {
		copy(info[j*fr:(j+1)*fr], src[pos*fr:(pos+1)*fr])
	}
}

// Frames is the batch size.
func (d *Decoder[R, C]) Frames() int { return d.frames }

// N is the code length.
func (d *Decoder[R, C]) N() int { return d.tree.N() }

// K is the number of information bits per frame.
func (d *Decoder[R, C]) K() int { return len(d.info) }

// Steps is the number of kernel calls one Decode makes.
func (d *Decoder[R, C]) Steps() int { return len(d.steps) }
