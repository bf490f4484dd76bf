package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for the HTTP API and the
// translation, geofence and collaborator calls behind it.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests     *prometheus.CounterVec
	HTTPDurations    *prometheus.HistogramVec
	MorseOperations  *prometheus.CounterVec
	GeofenceChecks   *prometheus.CounterVec
	SecureMessages   *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	httpRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticax_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by route, method and status.",
	}, []string{"route", "method", "status"}), "tacticax_http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tacticax_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"}), "tacticax_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	morseOps, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticax_morse_operations_total",
		Help: "Morse translations performed, labeled by source (encode, decode, speech, flash).",
	}, []string{"source"}), "tacticax_morse_operations_total")
	if err != nil {
		return nil, err
	}

	geofenceChecks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticax_geofence_checks_total",
		Help: "Geofence membership checks, labeled by result.",
	}, []string{"within"}), "tacticax_geofence_checks_total")
	if err != nil {
		return nil, err
	}

	secureMessages, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticax_secure_messages_total",
		Help: "Secure messages processed, labeled by final status.",
	}, []string{"status"}), "tacticax_secure_messages_total")
	if err != nil {
		return nil, err
	}

	upstream, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tacticax_upstream_duration_seconds",
		Help:    "Latency of calls to external AI and speech services.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"upstream", "outcome"}), "tacticax_upstream_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		HTTPRequests:     httpRequests,
		HTTPDurations:    httpDurations,
		MorseOperations:  morseOps,
		GeofenceChecks:   geofenceChecks,
		SecureMessages:   secureMessages,
		UpstreamDuration: upstream,
	}, nil
}

// Middleware records request counts and durations per route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDurations.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// IncMorse counts one translation from the given source.
func (c *Collector) IncMorse(source string) {
	if c == nil || c.MorseOperations == nil {
		return
	}
	c.MorseOperations.WithLabelValues(source).Inc()
}

// IncGeofenceCheck counts one geofence check.
func (c *Collector) IncGeofenceCheck(within bool) {
	if c == nil || c.GeofenceChecks == nil {
		return
	}
	c.GeofenceChecks.WithLabelValues(strconv.FormatBool(within)).Inc()
}

// IncSecureMessage counts one secure message by status.
func (c *Collector) IncSecureMessage(status string) {
	if c == nil || c.SecureMessages == nil {
		return
	}
	c.SecureMessages.WithLabelValues(status).Inc()
}

// ObserveUpstream records the latency of an external call.
func (c *Collector) ObserveUpstream(upstream string, d time.Duration, err error) {
	if c == nil || c.UpstreamDuration == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.UpstreamDuration.WithLabelValues(upstream, outcome).Observe(d.Seconds())
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
