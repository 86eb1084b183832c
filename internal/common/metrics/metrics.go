package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "career_scoring_duration_seconds",
			Help: "Duration of profile scoring runs in seconds",
		},
		[]string{"matcher"},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_recommendations_served_total",
			Help: "Total number of career recommendations returned",
		},
		[]string{"matcher"},
	)

	CandidatesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_candidates_scored_total",
			Help: "Total number of candidate records scored",
		},
		[]string{"matcher"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "career_active_sessions",
			Help: "Number of active user sessions",
		},
	)
)
