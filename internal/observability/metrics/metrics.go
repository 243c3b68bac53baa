package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	jobsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_jobs_created_total",
		Help: "Count of job postings created",
	})

	applicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_applications_submitted_total",
		Help: "Count of job applications submitted",
	})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_login_attempts_total",
		Help: "Count of admin login attempts by result",
	}, []string{"result"})

	authRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_auth_rejections_total",
		Help: "Count of requests rejected by the authorization gate",
	}, []string{"reason"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveJobCreated increments the created-jobs counter.
func ObserveJobCreated() {
	jobsCreated.Inc()
}

// ObserveApplicationSubmitted increments the submitted-applications counter.
func ObserveApplicationSubmitted() {
	applicationsSubmitted.Inc()
}

// ObserveLogin records a login attempt with a result label
// (accepted, rejected, error).
func ObserveLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// ObserveAuthRejection records a request turned away by the bearer-token
// gate (missing_token, invalid_token).
func ObserveAuthRejection(reason string) {
	authRejections.WithLabelValues(reason).Inc()
}
