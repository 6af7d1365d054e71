package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Observe-l/polarsc/internal/metrics"
	"github.com/Observe-l/polarsc/internal/sim"
)

var (
	simFlags   codeFlags
	simWorkers int
	simFrames  int
	simReport  string
	simMetrics string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a BER/FER sweep over an AWGN channel",
	Long: `Encode random frames, send them through BPSK over AWGN, quantize the LLRs
and decode them with the specialized SC decoder, sweeping Eb/N0 as
configured. The report is Markdown unless the path ends in .json.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simFlags.register(simulateCmd)
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "parallel decoders (overrides config)")
	simulateCmd.Flags().IntVar(&simFrames, "max-frames", 0, "frame limit per point (overrides config)")
	simulateCmd.Flags().StringVarP(&simReport, "report", "o", "", "report path (default: stdout)")
	simulateCmd.Flags().StringVar(&simMetrics, "metrics-addr", "", "serve Prometheus metrics on this address")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	simFlags.apply(cfg)
	if simWorkers > 0 {
		cfg.Simulation.Workers = simWorkers
	}
	if simFrames > 0 {
		cfg.Simulation.MaxFrames = simFrames
	}
	if simReport != "" {
		cfg.Simulation.Report = simReport
	}
	if simMetrics != "" {
		cfg.Metrics.Addr = simMetrics
	}
	t, _, err := buildTree(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	collector := metrics.New()
	collector.ObserveTree(t.Counts())
	if cfg.Metrics.Addr != "" {
		shutdown, err := serveMetrics(cfg.Metrics.Addr, collector)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	points, err := sim.Run(ctx, cfg, t,
		sim.WithLogger(logger),
		sim.WithObserver(collector),
		sim.WithFrameErrorObserver(collector),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warn("simulation interrupted", zap.Int("points", len(points)))
	}
	return writeReport(cmd, points)
}

func writeReport(cmd *cobra.Command, points []sim.Point) error {
	path := cfg.Simulation.Report
	if path == "" {
		return sim.WriteMarkdown(cmd.OutOrStdout(), cfg, points)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if strings.HasSuffix(path, ".json") {
		err = sim.WriteJSON(f, points)
	} else {
		err = sim.WriteMarkdown(f, cfg, points)
	}
	if err != nil {
		return err
	}
	logger.Info("report written", zap.String("path", path))
	return f.Close()
}

func serveMetrics(addr string, c *metrics.Collector) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
