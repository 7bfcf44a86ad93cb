// SPDX-License-Identifier: GPL-2.0-only

// Package obsmetrics wires the discovery core's counters and histograms into
// a prometheus.Registerer (SPEC_FULL §6 "observability"). Grounded on
// grafana-k6's api/prometheus package for the name-the-vecs-as-package-level-
// vars-then-register-them-in-a-constructor shape.
package obsmetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every vector this package emits. A nil *Metrics (returned
// when no Registerer is supplied) has every method implemented as a no-op,
// so callers never need a nil check at the call site.
type Metrics struct {
	dictLookups     prometheus.Counter
	dictMatches     prometheus.Counter
	chainProbeDepth prometheus.Histogram
	commandsEmitted prometheus.Counter
}

// New registers and returns a Metrics bound to reg. reg == nil disables
// metrics entirely: every recording method becomes a no-op.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		dictLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brcore",
			Name:      "dict_lookups_total",
			Help:      "Static dictionary probe attempts.",
		}),
		dictMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brcore",
			Name:      "dict_matches_total",
			Help:      "Static dictionary probes that found a matching word.",
		}),
		chainProbeDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brcore",
			Name:      "chain_probe_depth",
			Help:      "Number of chain entries walked per FindLongestMatch call on a chain hasher.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		commandsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brcore",
			Name:      "commands_emitted_total",
			Help:      "Commands appended by CreateBackwardReferences.",
		}),
	}

	reg.MustRegister(m.dictLookups, m.dictMatches, m.chainProbeDepth, m.commandsEmitted)
	return m
}

func (m *Metrics) ObserveDictProbe(matched bool) {
	if m == nil {
		return
	}
	m.dictLookups.Inc()
	if matched {
		m.dictMatches.Inc()
	}
}

func (m *Metrics) ObserveChainProbeDepth(n int) {
	if m == nil {
		return
	}
	m.chainProbeDepth.Observe(float64(n))
}

func (m *Metrics) ObserveCommandsEmitted(n int) {
	if m == nil {
		return
	}
	m.commandsEmitted.Add(float64(n))
}
