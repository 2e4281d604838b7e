package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name. Incremented by
// the cache client hook so repository code stays metrics-free.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quill_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// PageCacheHits counts front-page cache outcomes ("hit" or "miss").
var PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quill_page_cache_requests_total",
	Help: "Front page cache lookups by outcome",
}, []string{"outcome"})

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for HTTP metrics. The
// instance is shared: fiberprometheus registers its collectors on the default
// registry, which tolerates exactly one registration per metric name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
