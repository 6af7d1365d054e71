// Package metrics exports decoder activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Observe-l/polarsc/polar/pattern"
)

const namespace = "polarsc"

// Collector counts decoded frames and decode latency, and records the
// pattern make-up of the tree being decoded. It satisfies sc.Observer and
// is safe for concurrent use by many decoders.
type Collector struct {
	registry *prometheus.Registry
	frames   prometheus.Counter
	decodes  prometheus.Histogram
	nodes    *prometheus.GaugeVec
	errors   *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_decoded_total",
			Help:      "Frames decoded.",
		}),
		decodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_seconds",
			Help:      "Wall time of one batched decode call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Decoder-visible tree nodes per pattern.",
		}, []string{"pattern"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frame_errors_total",
			Help:      "Frames decoded with at least one bit error, by Eb/N0 point.",
		}, []string{"ebn0"}),
	}
	c.registry.MustRegister(c.frames, c.decodes, c.nodes, c.errors)
	return c
}

// ObserveDecode implements sc.Observer.
func (c *Collector) ObserveDecode(frames int, elapsed time.Duration) {
	c.frames.Add(float64(frames))
	c.decodes.Observe(elapsed.Seconds())
}

// ObserveTree publishes pattern counts, zeroing patterns that are absent.
func (c *Collector) ObserveTree(counts map[pattern.Tag]int) {
	for _, t := range pattern.All() {
		c.nodes.WithLabelValues(t.Short()).Set(float64(counts[t]))
	}
}

// ObserveFrameErrors adds frame errors seen at one Eb/N0 point.
func (c *Collector) ObserveFrameErrors(ebn0 string, n int) {
	c.errors.WithLabelValues(ebn0).Add(float64(n))
}

// Registry exposes the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
