// Package metrics defines and registers the Prometheus metrics for the case
// management API. It is the single source of truth for metric names, labels,
// and help strings; everything registers with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caseapi"

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - path: registered route pattern (not the raw URL)
//   - status: response status code
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration measures request handling time end-to-end.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// AuthFailuresTotal counts rejected authentications.
// Label:
//   - reason: "bad_credentials", "token_expired", "token_invalid", "stale_subject"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)
