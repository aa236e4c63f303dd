// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and outbound mail.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency per route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// MailSentTotal counts successfully dispatched emails by kind.
	MailSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_sent_total",
			Help: "Total number of emails accepted by the SMTP server",
		},
		[]string{"kind"},
	)

	// MailFailedTotal counts delivery failures by kind.
	MailFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_failed_total",
			Help: "Total number of emails rejected or undeliverable",
		},
		[]string{"kind"},
	)
)

// RecordMail increments the sent or failed counter for one delivery attempt.
func RecordMail(kind string, err error) {
	if err != nil {
		MailFailedTotal.WithLabelValues(kind).Inc()
		return
	}
	MailSentTotal.WithLabelValues(kind).Inc()
}

// Middleware records per-request counters keyed by the route template, so
// /api/bookings/:id does not explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
