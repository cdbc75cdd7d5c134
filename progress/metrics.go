// SPDX-License-Identifier: MIT
package progress

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathfind/astar"
)

// Search outcomes recorded by ObserveResult.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeHalted      = "halted"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors for a family of searches.
// Collectors are safe for concurrent use, so one Metrics may be shared.
type Metrics struct {
	iterations prometheus.Counter
	frontier   prometheus.Histogram
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
}

// NewMetrics registers the collectors on reg under namespace.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		iterations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_iterations_total",
			Help:      "Total A* loop iterations",
		}),
		frontier: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "astar_frontier_size",
			Help:      "Open nodes at the start of each iteration",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astar_searches_total",
			Help:      "Total A* searches by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "astar_expanded_nodes",
			Help:      "Nodes closed per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// Hook counts iterations and samples the frontier size. It never halts.
func (m *Metrics) Hook() astar.Hook {
	return func(s astar.Status) bool {
		m.iterations.Inc()
		m.frontier.Observe(float64(s.FrontierLen()))
		return true
	}
}

// Outcome classifies the result of a search.
func Outcome[N comparable](res *astar.Result[N], err error) string {
	switch {
	case err != nil || res == nil:
		return OutcomeError
	case res.Found:
		return OutcomeFound
	case res.Halted:
		return OutcomeHalted
	}
	return OutcomeUnreachable
}

// ObserveResult records the outcome of a finished search and returns it.
func ObserveResult[N comparable](m *Metrics, res *astar.Result[N], err error) string {
	outcome := Outcome(res, err)
	m.searches.WithLabelValues(outcome).Inc()
	if res != nil {
		m.expanded.Observe(float64(res.Expanded))
	}
	return outcome
}
