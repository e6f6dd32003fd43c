package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RankRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_rank_requests_total",
			Help: "Total number of ranking requests by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)

	RankDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matching_rank_duration_seconds",
			Help: "Duration of ranking requests in seconds",
		},
		[]string{"tier"},
	)

	LikesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_likes_created_total",
			Help: "Total number of likes stored",
		},
	)

	LikeConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_like_conflicts_total",
			Help: "Total number of duplicate like attempts rejected by the unique constraint",
		},
	)
)
