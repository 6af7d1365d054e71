// Package sim runs Monte-Carlo BER/FER simulations of the SC decoder over an
// AWGN channel.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Observe-l/polarsc/fec"
	"github.com/Observe-l/polarsc/internal/config"
	"github.com/Observe-l/polarsc/polar/kernel"
	"github.com/Observe-l/polarsc/polar/sc"
	"github.com/Observe-l/polarsc/polar/tree"
)

// Point is the outcome of one Eb/N0 point.
type Point struct {
	EbN0        float64
	K           int
	Frames      int
	FrameErrors int
	BitErrors   int
	// Decode is the decoder time summed over workers.
	Decode time.Duration
}

func (p Point) FER() float64 {
	if p.Frames == 0 {
		return 0
	}
	return float64(p.FrameErrors) / float64(p.Frames)
}

func (p Point) BER() float64 {
	if p.Frames == 0 {
		return 0
	}
	return float64(p.BitErrors) / float64(p.Frames*p.K)
}

// Throughput is the information rate of one decoder in Mbit/s.
func (p Point) Throughput() float64 {
	if p.Decode <= 0 {
		return 0
	}
	return float64(p.Frames*p.K) / p.Decode.Seconds() / 1e6
}

// FrameErrorObserver is told how many frames failed at each point.
type FrameErrorObserver interface {
	ObserveFrameErrors(ebn0 string, n int)
}

type options struct {
	runID    string
	logger   *zap.Logger
	observer sc.Observer
	errors   FrameErrorObserver
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// WithRunID tags every log line of the run. Run picks a random UUID
// otherwise.
func WithRunID(id string) Option { return func(o *options) { o.runID = id } }

// WithObserver is handed to every decoder the workers create.
func WithObserver(obs sc.Observer) Option { return func(o *options) { o.observer = obs } }

func WithFrameErrorObserver(obs FrameErrorObserver) Option {
	return func(o *options) { o.errors = obs }
}

// Run simulates every point of the configured sweep over t, which must be
// specialized. Workers share t and each owns a decoder. A point stops once
// MaxFrameErrors or MaxFrames is reached; the last batches in flight still
// count, so both limits may be overshot by up to one batch per worker.
func Run(ctx context.Context, cfg *config.Config, t *tree.Tree, opts ...Option) ([]Point, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	o.logger = o.logger.With(zap.String("run", o.runID))
	if t.N() != cfg.Code.N {
		return nil, fmt.Errorf("sim: tree has N=%d, config N=%d", t.N(), cfg.Code.N)
	}
	enc, err := fec.NewEncoder(t.Frozen(), cfg.Code.Systematic)
	if err != nil {
		return nil, err
	}
	run, err := dispatch(cfg.Decoder.Type, cfg.Decoder.Combine)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("simulation tree",
		zap.Int("n", t.N()),
		zap.Int("k", t.K()),
		zap.Any("patterns", patternCounts(t)),
	)

	var points []Point
	for i, ebn0 := range cfg.Simulation.Points() {
		p, err := run(ctx, cfg, t, enc, ebn0, uint64(i), &o)
		if err != nil {
			return points, err
		}
		points = append(points, p)
		if o.errors != nil {
			o.errors.ObserveFrameErrors(fmt.Sprintf("%.2f", ebn0), p.FrameErrors)
		}
		o.logger.Info("point done",
			zap.Float64("ebn0", ebn0),
			zap.Int("frames", p.Frames),
			zap.Int("frame_errors", p.FrameErrors),
			zap.Float64("fer", p.FER()),
			zap.Float64("ber", p.BER()),
			zap.Float64("mbps", p.Throughput()),
		)
	}
	return points, nil
}

func patternCounts(t *tree.Tree) map[string]int {
	out := make(map[string]int)
	for tag, n := range t.Counts() {
		out[tag.Short()] = n
	}
	return out
}

type runFunc func(ctx context.Context, cfg *config.Config, t *tree.Tree, enc *fec.Encoder, ebn0 float64, index uint64, o *options) (Point, error)

// dispatch picks the generic instantiation for a lane type and combiner.
func dispatch(typ, combine string) (runFunc, error) {
	boxplus := false
	switch combine {
	case "minsum":
	case "boxplus":
		boxplus = true
	default:
		return nil, fmt.Errorf("sim: unknown combine %q", combine)
	}
	switch typ {
	case "int8":
		return pick[int8](boxplus), nil
	case "int16":
		return pick[int16](boxplus), nil
	case "int32":
		return pick[int32](boxplus), nil
	case "float32":
		return pick[float32](boxplus), nil
	case "float64":
		return pick[float64](boxplus), nil
	}
	return nil, fmt.Errorf("sim: unknown lane type %q", typ)
}

func pick[R kernel.LLR](boxplus bool) runFunc {
	if boxplus {
		return runPoint[R, kernel.BoxPlus[R]]
	}
	return runPoint[R, kernel.MinSum[R]]
}

func runPoint[R kernel.LLR, C kernel.Combiner[R]](ctx context.Context, cfg *config.Config, t *tree.Tree, enc *fec.Encoder, ebn0 float64, index uint64, o *options) (Point, error) {
	s := cfg.Simulation
	fr := cfg.Decoder.Frames
	sigma := fec.Sigma(ebn0, cfg.Code.Rate())
	n, k := t.N(), t.K()

	decOpts := []sc.Option{
		sc.WithIntra(cfg.Decoder.Intra),
		sc.WithSystematic(cfg.Code.Systematic),
		sc.WithLogger(o.logger),
	}
	if o.observer != nil {
		decOpts = append(decOpts, sc.WithObserver(o.observer))
	}

	var frames, frameErrs, bitErrs, nanos atomic.Int64
	done := func() bool {
		return frameErrs.Load() >= int64(s.MaxFrameErrors) || frames.Load() >= int64(s.MaxFrames)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for w := 0; w < s.Workers; w++ {
		seed := s.Seed ^ index<<32 ^ uint64(w)
		g.Go(func() error {
			dec := sc.New[R, C](t, fr, decOpts...)
			ch := fec.NewChannel(sigma, seed)
			rng := rand.New(rand.NewPCG(seed, ^seed))
			info := make([]uint8, k*fr)
			got := make([]uint8, k*fr)
			x := make([]uint8, n*fr)
			soft := make([]float64, n*fr)
			llr := make([]R, n*fr)
			for !done() {
				if err := ctx.Err(); err != nil {
					return err
				}
				for i := range info {
					info[i] = uint8(rng.Uint32() & 1)
				}
				if err := enc.Encode(info, x, fr); err != nil {
					return err
				}
				ch.Transmit(x, soft)
				fec.Quantize(soft, llr, cfg.Decoder.QuantBits, cfg.Decoder.QuantFrac)

				start := time.Now()
				dec.DecodeInto(llr, got)
				nanos.Add(int64(time.Since(start)))

				var fe, be int64
				for f := 0; f < fr; f++ {
					wrong := int64(0)
					for j := 0; j < k; j++ {
						if got[j*fr+f] != info[j*fr+f] {
							wrong++
						}
					}
					if wrong > 0 {
						fe++
						be += wrong
					}
				}
				frames.Add(int64(fr))
				frameErrs.Add(fe)
				bitErrs.Add(be)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Point{}, err
	}
	return Point{
		EbN0:        ebn0,
		K:           k,
		Frames:      int(frames.Load()),
		FrameErrors: int(frameErrs.Load()),
		BitErrors:   int(bitErrs.Load()),
		Decode:      time.Duration(nanos.Load()),
	}, nil
}
