package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio_contact"

var (
	// Submissions counts processed submissions by outcome:
	// sent, invalid, unavailable, failed
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "contact form submissions by outcome",
		},
		[]string{"outcome"},
	)
	// EmailsSent counts transport calls by kind (owner, confirmation) and result
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "mail transport calls by email kind and result",
		},
		[]string{"kind", "result"},
	)
	// SendDuration observes how long a single transport call takes
	SendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_send_duration_seconds",
			Help:      "duration of a single mail transport call",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)
	// SanitizedFields counts string fields the sanitizer had to rewrite
	SanitizedFields = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sanitized_fields_total",
			Help:      "submission fields rewritten by the sanitizer",
		},
		[]string{"field"},
	)
	// RateLimited counts requests rejected by the rate limiter
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "requests rejected by the rate limiter",
	})
)
