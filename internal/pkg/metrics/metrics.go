package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 投票链路指标，注册到默认 Registry，由 /metrics 暴露
var (
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faceoff_votes_total",
			Help: "Total accepted votes, by category.",
		},
		[]string{"category"},
	)

	VoteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faceoff_vote_errors_total",
			Help: "Vote submissions rejected or failed, by reason.",
		},
		[]string{"reason"},
	)

	VoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "faceoff_vote_duration_seconds",
			Help:    "Vote submission latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	BestEffortFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faceoff_best_effort_failures_total",
			Help: "Failed best-effort side updates after a durable vote write, by target.",
		},
		[]string{"target"},
	)

	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "faceoff_aggregation_duration_seconds",
			Help:    "Analytics rollup recomputation duration, by period.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"period"},
	)
)
