package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.ListRequest("latest_paged")
	m.ListRequest("latest_paged")
	m.VoteRecorded()
	m.LikeAdjusted(true, true)
	m.LikeAdjusted(false, false)
	m.RowsAggregated(5)

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *telemetry.Metrics

	assert.NotPanics(t, func() {
		m.ListRequest("unbounded")
		m.VoteRecorded()
		m.LikeAdjusted(true, true)
		m.RowsAggregated(1)
	})
}
