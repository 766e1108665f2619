// Package metrics exposes growth progress as Prometheus metrics.
//
// A Collector is a growth.Observer: install it with growth.WithObserver and
// every completed step updates the step counter, the attempts histogram and
// the graph gauges (size, edge count, depth from the root). Metrics are
// registered on the caller's Registerer, so tests and embedders can keep
// them off the global registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lichtenberg/core"
	"github.com/katalvlaran/lichtenberg/growth"
	"github.com/katalvlaran/lichtenberg/paths"
)

// Step outcomes used as the "outcome" label value.
const (
	OutcomeInserted = "inserted" // a new vertex was created
	OutcomeMerged   = "merged"   // retry cap hit, expansion vertex linked to a near vertex
	OutcomeStalled  = "stalled"  // retry cap hit on a degenerate force, nothing linked
)

const namespace = "lichtenberg"

// Collector records growth steps.
type Collector struct {
	graph *core.Graph

	steps    *prometheus.CounterVec
	attempts prometheus.Histogram
	vertices prometheus.Gauge
	edges    prometheus.Gauge
	pathLen  prometheus.Gauge
	depth    prometheus.Gauge
}

// NewCollector registers the growth metrics on reg and reads graph sizes
// from g after every step.
func NewCollector(reg prometheus.Registerer, g *core.Graph) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		graph: g,
		steps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "growth_steps_total",
				Help:      "Completed growth steps by outcome",
			},
			[]string{"outcome"},
		),
		attempts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "growth_step_attempts",
				Help:      "Selection/proposal rounds needed per growth step",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 7), // 1..64, the default retry cap
			},
		),
		vertices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Number of vertices in the growing graph",
		}),
		edges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of unique edges in the growing graph",
		}),
		pathLen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reinforced_path_vertices",
			Help:      "Length of the path reinforced by the last step",
		}),
		depth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_depth",
			Help:      "Largest hop count from the root to any vertex",
		}),
	}
}

// OnStep implements growth.Observer.
func (c *Collector) OnStep(res growth.StepResult) {
	c.steps.WithLabelValues(Outcome(res)).Inc()
	c.attempts.Observe(float64(res.Attempts))
	c.pathLen.Set(float64(len(res.Path)))
	if c.graph == nil {
		return
	}
	c.vertices.Set(float64(c.graph.VertexCount()))
	c.edges.Set(float64(c.graph.EdgeCount()))
	if len(res.Path) == 0 {
		return
	}
	// The reinforced path always ends at the root.
	if d, err := paths.Depths(c.graph, res.Path[len(res.Path)-1]); err == nil {
		c.depth.Set(float64(d.MaxDepth()))
	}
}

// Outcome classifies a step result.
func Outcome(res growth.StepResult) string {
	switch {
	case res.Inserted:
		return OutcomeInserted
	case res.Touched != res.Expansion:
		return OutcomeMerged
	default:
		return OutcomeStalled
	}
}

// Steps returns the step counter, labeled by outcome.
func (c *Collector) Steps() *prometheus.CounterVec { return c.steps }

// Attempts returns the attempts-per-step histogram.
func (c *Collector) Attempts() prometheus.Histogram { return c.attempts }
