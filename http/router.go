package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hvac-estimator/logger"
)

type Handlers struct {
	Load    *LoadHandler
	Cost    *CostHandler
	Savings *SavingsHandler
	History *HistoryHandler
}

// NewRouter mounts the estimate endpoints behind rate limiting and metrics.
func NewRouter(h Handlers, limiter Limiter, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(route string, fn http.HandlerFunc) http.Handler {
		return MetricsMiddleware(route, RateLimitMiddleware(limiter, route, log, fn))
	}

	mux.Handle("/estimate/load", limited("/estimate/load", h.Load.EstimateLoad))
	mux.Handle("/estimate/cost", limited("/estimate/cost", h.Cost.EstimateCost))
	mux.Handle("/estimate/savings", limited("/estimate/savings", h.Savings.ProjectSavings))
	mux.Handle("/estimates", limited("/estimates", h.History.ListEstimates))

	mux.Handle("/healthz", Health(log))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
