package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts HTTP requests by route template and status code.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sealstack",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status code",
	}, []string{"route", "status"})

	// requestLatency measures handler latency by route template.
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sealstack",
		Subsystem: "http",
		Name:      "request_latency_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"route"})

	// moduleCoherence tracks the coherence score distribution of assembled
	// modules. Scores run 0 through 3.
	moduleCoherence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sealstack",
		Subsystem: "assembly",
		Name:      "module_coherence",
		Help:      "Coherence scores of assembled modules",
		Buckets:   []float64{0, 1, 2, 3},
	})

	// moduleLayers tracks how many of the seven layers each module fills.
	moduleLayers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sealstack",
		Subsystem: "assembly",
		Name:      "module_layers_present",
		Help:      "Number of seal layers present in assembled modules",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7},
	})

	// patternsLoaded reports the size of the in-memory pattern store.
	patternsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sealstack",
		Subsystem: "store",
		Name:      "patterns_loaded",
		Help:      "Patterns held in the immutable store",
	})
)
