package middleware

import (
	"strconv"
	"time"

	"sculpture_shop/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics records request count, latency and in-flight gauge per
// route. The scrape endpoint itself is left uninstrumented.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/metrics" {
			return next(c)
		}

		metrics.HTTPInflightRequests.Inc()
		start := time.Now()

		err := next(c)

		metrics.HTTPInflightRequests.Dec()

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			c.Path(),
		).Observe(time.Since(start).Seconds())

		return err
	}
}
