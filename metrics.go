package shortestpath

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm names used as the "algorithm" label.
const (
	algDijkstra    = "dijkstra"
	algPair        = "pair"
	algAllPaths    = "all_paths"
	algBellmanFord = "bellman_ford"
	algAcyclic     = "acyclic"
)

// Metrics records the work done by the searches. Create one with NewMetrics
// and pass it to any call with WithMetrics. A nil *Metrics records nothing.
//
// Metrics is safe for concurrent use.
type Metrics struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	pushes      *prometheus.CounterVec
	stale       *prometheus.CounterVec
	relaxations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. If reg is
// nil the collectors are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortestpath_runs_total",
			Help: "Total shortest path computations by algorithm and result",
		}, []string{"algorithm", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shortestpath_run_duration_seconds",
			Help:    "Shortest path computation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		pushes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortestpath_frontier_pushes_total",
			Help: "Total entries pushed onto the frontier",
		}, []string{"algorithm"}),
		stale: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortestpath_frontier_stale_total",
			Help: "Total superseded frontier entries discarded on pop",
		}, []string{"algorithm"}),
		relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortestpath_relaxations_total",
			Help: "Total edge relaxations that improved a distance",
		}, []string{"algorithm"}),
	}
}

// runStats counts the work of a single call. It is only reported at the
// end of the call so the hot loops don't touch the collectors.
type runStats struct {
	algorithm   string
	start       time.Time
	pushes      int
	stale       int
	relaxations int
}

func newRunStats(algorithm string) *runStats {
	return &runStats{algorithm: algorithm, start: time.Now()}
}

func (m *Metrics) observe(s *runStats, err error) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(s.algorithm, resultLabel(err)).Inc()
	m.duration.WithLabelValues(s.algorithm).Observe(time.Since(s.start).Seconds())
	m.pushes.WithLabelValues(s.algorithm).Add(float64(s.pushes))
	m.stale.WithLabelValues(s.algorithm).Add(float64(s.stale))
	m.relaxations.WithLabelValues(s.algorithm).Add(float64(s.relaxations))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidGraph):
		return "invalid_graph"
	case errors.Is(err, ErrNodeNotFound):
		return "node_not_found"
	case errors.Is(err, ErrNegativeCycle):
		return "negative_cycle"
	case errors.Is(err, ErrTooManyPaths):
		return "too_many_paths"
	case errors.Is(err, ErrCycle):
		return "cycle"
	default:
		return "error"
	}
}
