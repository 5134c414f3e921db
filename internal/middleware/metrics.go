package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// RedisErrors counts Redis command failures, labeled by command name.
// Incremented from the go-redis hook installed in the cache package.
var RedisErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "warbler_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

var (
	metricsOnce sync.Once
	prom        *fiberprometheus.FiberPrometheus
)

// InitMetrics registers application collectors and returns the Fiber
// Prometheus middleware. Safe to call more than once; registration
// happens only on the first call.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	metricsOnce.Do(func() {
		prometheus.MustRegister(RedisErrors)
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware returns the request-metrics middleware for the given instance.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
