package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatherer: registry,
	}

	registry.MustRegister(m.requests, m.duration)

	return m
}

// Handler records every request. Errors from the chain are rendered here so the recorded
// status is the one sent.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())

		m.requests.WithLabelValues(c.Method(), route, status).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return nil
	}
}

// Endpoint serves the collected metrics in the Prometheus text format.
func (m *Metrics) Endpoint() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))

	return func(c *fiber.Ctx) error {
		h(c.Context())

		return nil
	}
}
