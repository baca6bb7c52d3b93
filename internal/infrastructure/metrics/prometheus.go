// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gotube"

var (
	// ReactionTogglesTotal tracks reaction toggle outcomes.
	// Labels:
	//   - target: video, comment, post
	//   - state: liked, unliked
	ReactionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_toggles_total",
			Help:      "Total number of reaction toggle operations",
		},
		[]string{"target", "state"},
	)

	// DBQueriesTotal tracks database queries.
	// Labels:
	//   - query_type: select, insert, update, delete
	//   - table: videos, comments, reactions
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Total number of database queries",
		},
		[]string{"query_type", "table"},
	)

	// ViewCounterOperationsTotal tracks the Redis view counter.
	// Labels:
	//   - operation: increment, drain
	//   - status: success, error
	ViewCounterOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_counter_operations_total",
			Help:      "Total number of view counter operations",
		},
		[]string{"operation", "status"},
	)

	// SingleflightRequestsTotal tracks feed query coalescing.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)
)

// DB query type constants.
const (
	DBQuerySelect = "select"
	DBQueryInsert = "insert"
	DBQueryUpdate = "update"
	DBQueryDelete = "delete"
)

// Table name constants.
const (
	TableVideos    = "videos"
	TableComments  = "comments"
	TableReactions = "reactions"
)

// View counter constants.
const (
	ViewCounterOpIncrement = "increment"
	ViewCounterOpDrain     = "drain"
	ViewCounterStatusOK    = "success"
	ViewCounterStatusError = "error"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
