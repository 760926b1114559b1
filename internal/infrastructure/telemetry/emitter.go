package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appconfig "snowctl.dev/cli/internal/application/config"
)

// Emitter translates resolver history summaries into prometheus metrics.
// It owns its registry so tests and embedding processes stay isolated from
// the default global registry.
type Emitter struct {
	registry *prometheus.Registry

	sourceUsed   *prometheus.CounterVec
	sourceWins   *prometheus.CounterVec
	keysResolved prometheus.Gauge
	defaultsUsed prometheus.Gauge
	overridden   prometheus.Gauge
}

// NewEmitter builds an emitter with a fresh registry.
func NewEmitter() *Emitter {
	e := &Emitter{
		registry: prometheus.NewRegistry(),
		sourceUsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowctl",
			Subsystem: "config",
			Name:      "source_used_total",
			Help:      "Keys for which a source produced any resolution entry.",
		}, []string{"source"}),
		sourceWins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowctl",
			Subsystem: "config",
			Name:      "source_wins_total",
			Help:      "Keys for which a source's entry was selected as the final value.",
		}, []string{"source"}),
		keysResolved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snowctl",
			Subsystem: "config",
			Name:      "keys_resolved",
			Help:      "Keys resolved in the most recent pass.",
		}),
		defaultsUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snowctl",
			Subsystem: "config",
			Name:      "defaults_used",
			Help:      "Keys that fell back to a caller-supplied default in the most recent pass.",
		}),
		overridden: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snowctl",
			Subsystem: "config",
			Name:      "keys_overridden",
			Help:      "Keys where a lower-priority source lost to a higher-priority one.",
		}),
	}
	e.registry.MustRegister(e.sourceUsed, e.sourceWins, e.keysResolved, e.defaultsUsed, e.overridden)
	return e
}

// Emit applies one resolution pass summary. Every source named in the
// summary gets a series, including zero-valued ones, so dashboards see the
// full source set from the first scrape.
func (e *Emitter) Emit(s appconfig.Summary) {
	for source, count := range s.SourceUsage {
		e.sourceUsed.WithLabelValues(source).Add(float64(count))
	}
	for source, count := range s.SourceWins {
		e.sourceWins.WithLabelValues(source).Add(float64(count))
	}
	e.keysResolved.Set(float64(s.TotalKeysResolved))
	e.defaultsUsed.Set(float64(s.KeysUsingDefaults))
	e.overridden.Set(float64(s.KeysWithOverrides))
}

// Handler exposes the emitter's registry for scraping.
func (e *Emitter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, mainly for tests.
func (e *Emitter) Registry() *prometheus.Registry {
	return e.registry
}
