package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HTTPMetricsMiddleware collects request counts, latency and response
// sizes for every route.
func HTTPMetricsMiddleware(metrics *Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		err := c.Next()

		duration := time.Since(start)

		method := c.Method()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		statusCode := strconv.Itoa(c.Response().StatusCode())
		responseSize := len(c.Response().Body())

		metrics.RecordHTTPRequest(method, path, statusCode, duration, responseSize)

		if duration > time.Second {
			logger.Warn("Slow HTTP request",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("status_code", statusCode),
				zap.Duration("duration", duration),
			)
		}

		return err
	}
}

// HealthCheckMiddleware provides a simple health check endpoint
func HealthCheckMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Status(200).JSON(fiber.Map{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
				"service":   "smartbank",
			})
		}
		return c.Next()
	}
}
