package explorer

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the per-Explorer collectors.
type metrics struct {
	steps   prometheus.Counter
	blocked prometheus.Counter
	routes  *prometheus.CounterVec
	nodes   prometheus.Gauge
}

// newMetrics builds the collectors and registers them with reg. Explorers that
// share a registerer share its collectors: counters accumulate across them.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		steps: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "robolab",
			Subsystem: "explorer",
			Name:      "drives_total",
			Help:      "Drive commands issued to the robot",
		})),
		blocked: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "robolab",
			Subsystem: "explorer",
			Name:      "blocked_total",
			Help:      "Headings found impassable",
		})),
		routes: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "robolab",
			Subsystem: "explorer",
			Name:      "routes_total",
			Help:      "Planning decisions by planner",
		}, []string{"planner"})),
		nodes: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "robolab",
			Subsystem: "explorer",
			Name:      "known_nodes",
			Help:      "Intersections recorded in the path table",
		})),
	}
}

// register adds c to reg, or returns the collector already registered under
// the same descriptor. A nil reg leaves c unregistered. Any other
// registration error is a programming mistake and panics.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}
