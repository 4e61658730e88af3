package router

import (
	"net/http"

	"ferry-schedule-service/internal/interface/handler"
	"ferry-schedule-service/pkg/logger"
	"ferry-schedule-service/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// HTTPRouter maps HTTP routes to API handlers
type HTTPRouter struct {
	router  *httprouter.Router
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewHTTPRouter creates the service router. An empty staticDir disables the
// single-page frontend fallback.
func NewHTTPRouter(h *handler.Handler, staticDir string, logger logger.Logger, m *metrics.Metrics) *HTTPRouter {
	r := &HTTPRouter{
		router:  httprouter.New(),
		logger:  logger,
		metrics: m,
	}

	r.register(http.MethodGet, "/api/routes", handler.CORS(http.HandlerFunc(h.ListRoutes)))
	r.register(http.MethodGet, "/api/routes/:id", handler.CORS(http.HandlerFunc(h.GetRoute)))
	r.register(http.MethodGet, "/api/schedule/:id", handler.CORS(http.HandlerFunc(h.GetSchedule)))
	r.router.GlobalOPTIONS = handler.CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r.router.Handler(http.MethodGet, "/health", http.HandlerFunc(h.Health))
	if m != nil {
		r.router.Handler(http.MethodGet, "/metrics", m.Handler())
	}

	if staticDir != "" {
		r.router.NotFound = handler.Instrument("static", logger, m, handler.StaticFiles(staticDir))
	}

	return r
}

func (r *HTTPRouter) register(method, path string, h http.Handler) {
	r.router.Handler(method, path, handler.Instrument(path, r.logger, r.metrics, h))
	r.logger.Debug("Registered route", "method", method, "path", path)
}

// ServeHTTP implements http.Handler
func (r *HTTPRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
