package sim

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Observe-l/polarsc/internal/config"
	"github.com/Observe-l/polarsc/internal/metrics"
	"github.com/Observe-l/polarsc/polar/tree"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Code.N, cfg.Code.K = 64, 32
	cfg.Decoder.Type = "float32"
	cfg.Decoder.Frames = 8
	cfg.Simulation.EbN0Min, cfg.Simulation.EbN0Max, cfg.Simulation.EbN0Step = 8, 8, 1
	cfg.Simulation.MaxFrames = 400
	cfg.Simulation.MaxFrameErrors = 50
	cfg.Simulation.Workers = 2
	return cfg
}

func buildTree(t *testing.T, cfg *config.Config) *tree.Tree {
	t.Helper()
	frozen, err := cfg.Code.Frozen()
	require.NoError(t, err)
	c, err := cfg.Decoder.ParseCatalog()
	require.NoError(t, err)
	tr := tree.New(frozen)
	tr.Specialize(c)
	return tr
}

func TestRunHighSNRDecodesCleanly(t *testing.T) {
	for _, typ := range config.ValidTypes {
		for _, combine := range config.ValidCombines {
			t.Run(typ+"/"+combine, func(t *testing.T) {
				cfg := smallConfig()
				cfg.Decoder.Type = typ
				cfg.Decoder.Combine = combine
				require.NoError(t, cfg.Validate())
				points, err := Run(context.Background(), cfg, buildTree(t, cfg))
				require.NoError(t, err)
				require.Len(t, points, 1)
				p := points[0]
				assert.GreaterOrEqual(t, p.Frames, cfg.Simulation.MaxFrames)
				assert.Zero(t, p.FrameErrors)
				assert.Zero(t, p.BER())
				assert.Equal(t, 32, p.K)
			})
		}
	}
}

func TestRunLowSNRStopsOnFrameErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulation.EbN0Min, cfg.Simulation.EbN0Max = -6, -6
	cfg.Simulation.MaxFrames = 1 << 20
	points, err := Run(context.Background(), cfg, buildTree(t, cfg))
	require.NoError(t, err)
	p := points[0]
	assert.GreaterOrEqual(t, p.FrameErrors, cfg.Simulation.MaxFrameErrors)
	assert.Less(t, p.Frames, cfg.Simulation.MaxFrames)
	assert.Greater(t, p.FER(), 0.5)
	assert.Greater(t, p.BER(), 0.0)
}

func TestRunSystematic(t *testing.T) {
	cfg := smallConfig()
	cfg.Code.Systematic = true
	cfg.Decoder.Type = "int8"
	points, err := Run(context.Background(), cfg, buildTree(t, cfg))
	require.NoError(t, err)
	assert.Zero(t, points[0].FrameErrors)
}

func TestRunIsDeterministicWithOneWorker(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulation.EbN0Min, cfg.Simulation.EbN0Max, cfg.Simulation.EbN0Step = 0, 1, 0.5
	cfg.Simulation.Workers = 1
	tr := buildTree(t, cfg)
	a, err := Run(context.Background(), cfg, tr)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, tr)
	require.NoError(t, err)
	require.Len(t, a, 3)
	for i := range a {
		assert.Equal(t, a[i].Frames, b[i].Frames)
		assert.Equal(t, a[i].FrameErrors, b[i].FrameErrors)
		assert.Equal(t, a[i].BitErrors, b[i].BitErrors)
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := smallConfig()
	cfg.Simulation.MaxFrames = 1 << 30
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, cfg, buildTree(t, cfg))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejects(t *testing.T) {
	cfg := smallConfig()
	tr := buildTree(t, cfg)

	bad := *cfg
	bad.Decoder.Type = "int64"
	_, err := Run(context.Background(), &bad, tr)
	assert.Error(t, err)

	bad = *cfg
	bad.Decoder.Combine = "sum"
	_, err = Run(context.Background(), &bad, tr)
	assert.Error(t, err)

	bad = *cfg
	bad.Code.N = 128
	_, err = Run(context.Background(), &bad, tr)
	assert.Error(t, err)
}

func TestRunFeedsObserversAndLogs(t *testing.T) {
	cfg := smallConfig()
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	points, err := Run(context.Background(), cfg, buildTree(t, cfg),
		WithLogger(zap.New(core)), WithObserver(m), WithFrameErrorObserver(m), WithRunID("sweep-1"))
	require.NoError(t, err)
	done := logs.FilterMessage("point done")
	require.Equal(t, 1, done.Len())
	assert.Equal(t, "sweep-1", done.All()[0].ContextMap()["run"])

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, points))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `[{"ebn0":8,`), out)
	assert.Contains(t, out, fmt.Sprintf(`"frames":%d,`, points[0].Frames))
	assert.Contains(t, out, `"frame_errors":0,`)
}

func TestRunGeneratesRunID(t *testing.T) {
	cfg := smallConfig()
	core, logs := observer.New(zap.InfoLevel)
	_, err := Run(context.Background(), cfg, buildTree(t, cfg), WithLogger(zap.New(core)))
	require.NoError(t, err)
	id, ok := logs.FilterMessage("point done").All()[0].ContextMap()["run"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestPointRates(t *testing.T) {
	p := Point{K: 10, Frames: 100, FrameErrors: 5, BitErrors: 20, Decode: time.Second}
	assert.InDelta(t, 0.05, p.FER(), 1e-12)
	assert.InDelta(t, 0.02, p.BER(), 1e-12)
	assert.InDelta(t, 0.001, p.Throughput(), 1e-12)
	assert.Zero(t, Point{}.FER())
	assert.Zero(t, Point{}.BER())
	assert.Zero(t, Point{}.Throughput())
}

func TestWriteMarkdown(t *testing.T) {
	cfg := smallConfig()
	var buf bytes.Buffer
	points := []Point{{EbN0: 1, K: 32, Frames: 100, FrameErrors: 10, BitErrors: 40, Decode: time.Millisecond}}
	require.NoError(t, WriteMarkdown(&buf, cfg, points))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Polar SC Simulation Report (N=64, K=32)"))
	assert.Contains(t, out, "| 1.00 | 100 | 10 | 1.000e-01 | 1.250e-02 |")
}
