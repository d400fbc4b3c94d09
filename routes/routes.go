package routes

import (
	"fmt"
	"net/http"

	"devhub/events"
	"devhub/metrics"
	"devhub/middleware"
	"devhub/projects"
	"devhub/ratelim"

	"github.com/julienschmidt/httprouter"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Events   *events.Handler
	Projects *projects.Handler
	Metrics  *metrics.Metrics
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	router.GET("/health", Index)
	AddEventsRoutes(router, h.Events, rateLimiter)
	AddProjectsRoutes(router, h.Projects, rateLimiter)
	AddMetricsRoutes(router, h.Metrics)
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func AddEventsRoutes(router *httprouter.Router, h *events.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/events", rateLimiter.Limit(middleware.OptionalAuth(h.GetEvents)))
	router.GET("/api/events/:eventid", rateLimiter.Limit(middleware.OptionalAuth(h.GetEvent)))
}

func AddProjectsRoutes(router *httprouter.Router, h *projects.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/projects", rateLimiter.Limit(middleware.OptionalAuth(h.GetProjects)))
}

func AddMetricsRoutes(router *httprouter.Router, m *metrics.Metrics) {
	router.Handler(http.MethodGet, "/metrics", m.Handler())
}
