package tseries

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	_, _, _, err := ParseTimeString("4Q2005", WithMetrics(m))
	require.NoError(t, err)
	_, _, _, err = ParseTimeString("2005-03", WithMetrics(m))
	require.NoError(t, err)
	_, _, _, err = ParseTimeString("not-a-date", WithMetrics(m))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.parsed.WithLabelValues("quarter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parsed.WithLabelValues("month")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failed.WithLabelValues("parse_time_string")))

	_, err = ToDatetime([]string{"2021-01-01", "2021-01-02"}, WithMetrics(m))
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.conversions.WithLabelValues("dateparse")))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeParse(ResoDay)
		m.observeError("x")
		m.observeConversion("y")
	})
	assert.NotNil(t, NewMetrics(nil))
}
