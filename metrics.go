package tseries

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts parse outcomes. A nil *Metrics records nothing.
type Metrics struct {
	parsed      *prometheus.CounterVec
	failed      *prometheus.CounterVec
	conversions *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when it
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tseries",
			Name:      "parse_total",
			Help:      "Time strings parsed, by inferred resolution.",
		}, []string{"resolution"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tseries",
			Name:      "parse_errors_total",
			Help:      "Strings that could not be parsed, by entrypoint.",
		}, []string{"stage"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tseries",
			Name:      "conversions_total",
			Help:      "Strings converted by ToDatetime, by the parser that accepted them.",
		}, []string{"parser"}),
	}
	if reg != nil {
		reg.MustRegister(m.parsed, m.failed, m.conversions)
	}
	return m
}

func (m *Metrics) observeParse(reso Resolution) {
	if m == nil {
		return
	}
	m.parsed.WithLabelValues(reso.String()).Inc()
}

func (m *Metrics) observeError(stage string) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(stage).Inc()
}

func (m *Metrics) observeConversion(parser string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(parser).Inc()
}
