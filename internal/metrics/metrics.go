package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	MatchSuggestions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "skillexchange_match_suggestions_total", Help: "Total match suggestion runs"},
	)
	MatchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillexchange_match_score",
			Help:    "Distribution of suggested match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
	StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "skillexchange_status_transitions_total", Help: "Applied status transitions"},
		[]string{"entity", "status"},
	)
	RejectedTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "skillexchange_rejected_transitions_total", Help: "Status transitions refused because the current status is terminal"},
		[]string{"entity"},
	)
	FeedbackRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "skillexchange_feedback_recorded_total", Help: "Total feedback entries recorded"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			MatchSuggestions,
			MatchScores,
			StatusTransitions,
			RejectedTransitions,
			FeedbackRecorded,
		)
	})
}
