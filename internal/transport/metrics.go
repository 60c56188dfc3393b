// Prometheus instrumentation for outgoing HTTP traffic, with attention to
// label cardinality:
//
//   - method: HTTP method verb (GET/POST/…)
//   - path:   the request path with numeric segments collapsed to ":id"
//     (e.g. /api/adverts/42 -> /api/adverts/:id)
//   - status: numeric status code as a string, or "error" when no response
//     was obtained
//
// All collectors are safe for concurrent use.
package transport

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// reqsTotal counts requests by method, collapsed path, and status code.
	reqsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adboard_client_requests_total",
			Help: "Total number of backend requests issued by the client.",
		},
		[]string{"method", "path", "status"},
	)

	// reqLatency records request duration in seconds by method and path.
	// Status is intentionally omitted to keep histogram cardinality lower.
	reqLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adboard_client_request_duration_seconds",
			Help:    "Duration of backend requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// reqsInflight gauges the number of in-flight requests.
	reqsInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "adboard_client_requests_inflight",
			Help: "Current number of in-flight backend requests.",
		},
	)
)

func init() {
	prometheus.MustRegister(reqsTotal, reqLatency, reqsInflight)
}

// routeLabel collapses ID-bearing path segments so every advert/user/address
// hits the same metric series. Query strings are dropped entirely.
func routeLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s != "" && isDigits(s) {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
