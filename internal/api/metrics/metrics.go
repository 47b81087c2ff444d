// Package metrics defines all custom Prometheus metrics for the exercise
// tracker API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// UsersCreatedTotal counts successfully created users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// ExercisesLoggedTotal counts successfully logged exercises.
var ExercisesLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_logged_total",
		Help:      "Total number of exercises logged.",
	},
)

// LogQueriesTotal counts log queries.
// Label:
//   - filtered: "true" when a from/to/limit parameter was supplied
var LogQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Total number of exercise log queries, labelled by whether a filter was applied.",
	},
	[]string{"filtered"},
)

// LogQueryDuration measures how long a log query takes end-to-end, including
// the user lookup and the exercise scan.
var LogQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_query_duration_seconds",
		Help:      "Duration of exercise log queries from user lookup to response mapping.",
		Buckets:   prometheus.DefBuckets,
	},
)
