package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/revisaquest-backend/internal/config"
	"github.com/heartmarshall/revisaquest-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers the HTTP router mounts.
type RouterDeps struct {
	Health  *HealthHandler
	Plan    *PlanHandler
	Subject *SubjectHandler
	Topic   *TopicHandler
	// Limiter is optional; nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

// NewRouter builds the full HTTP handler: health probes stay open, the
// /api/v1 surface sits behind the user-id middleware, and the common chain
// (request id, CORS, logging, recovery) wraps everything.
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/plans/generate", deps.Plan.Generate)
	api.HandleFunc("GET /api/v1/plans/{date}", deps.Plan.Get)
	api.HandleFunc("POST /api/v1/plans/{id}/complete", deps.Plan.Complete)
	api.HandleFunc("POST /api/v1/plans/{id}/uncomplete", deps.Plan.Uncomplete)

	api.HandleFunc("GET /api/v1/settings", deps.Plan.GetSettings)
	api.HandleFunc("PUT /api/v1/settings", deps.Plan.UpdateSettings)

	api.HandleFunc("POST /api/v1/subjects", deps.Subject.Create)
	api.HandleFunc("GET /api/v1/subjects", deps.Subject.List)
	api.HandleFunc("PATCH /api/v1/subjects/{id}", deps.Subject.Rename)
	api.HandleFunc("POST /api/v1/subjects/{id}/archive", deps.Subject.Archive)
	api.HandleFunc("POST /api/v1/subjects/{id}/restore", deps.Subject.Restore)
	api.HandleFunc("DELETE /api/v1/subjects/{id}", deps.Subject.Delete)

	api.HandleFunc("POST /api/v1/topics", deps.Topic.Create)
	api.HandleFunc("POST /api/v1/topics/batch", deps.Topic.CreateBatch)
	api.HandleFunc("GET /api/v1/topics", deps.Topic.List)
	api.HandleFunc("GET /api/v1/topics/{id}", deps.Topic.Get)
	api.HandleFunc("PATCH /api/v1/topics/{id}", deps.Topic.Update)
	api.HandleFunc("DELETE /api/v1/topics/{id}", deps.Topic.Delete)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.Handle("/api/v1/", middleware.UserID()(api))

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
	}
	if deps.Limiter != nil && cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, deps.Limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	return middleware.Chain(mws...)(mux)
}
