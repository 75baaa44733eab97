package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quickpoll"

// Metrics holds the application collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	listRequests    *prometheus.CounterVec
	votes           prometheus.Counter
	likeAdjustments *prometheus.CounterVec
	aggregatedRows  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		listRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_requests_total",
			Help:      "Questionnaire list requests by planner strategy.",
		}, []string{"strategy"}),
		votes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_recorded_total",
			Help:      "Responses appended to the store.",
		}),
		likeAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "like_adjustments_total",
			Help:      "Like and unlike requests by direction and result.",
		}, []string{"direction", "result"}),
		aggregatedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregated_rows_total",
			Help:      "Questionnaire rows enriched with response statistics.",
		}),
	}

	reg.MustRegister(m.listRequests, m.votes, m.likeAdjustments, m.aggregatedRows)
	return m
}

func (m *Metrics) ListRequest(strategy string) {
	if m == nil {
		return
	}
	m.listRequests.WithLabelValues(strategy).Inc()
}

func (m *Metrics) VoteRecorded() {
	if m == nil {
		return
	}
	m.votes.Inc()
}

func (m *Metrics) LikeAdjusted(increment, found bool) {
	if m == nil {
		return
	}
	direction := "down"
	if increment {
		direction = "up"
	}
	result := "ok"
	if !found {
		result = "not_found"
	}
	m.likeAdjustments.WithLabelValues(direction, result).Inc()
}

func (m *Metrics) RowsAggregated(n int) {
	if m == nil {
		return
	}
	m.aggregatedRows.Add(float64(n))
}
