package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/prodcost-backend/internal/config"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Production *ProductionHandler
	Costs      *CostHandler
}

// RouterConfig holds the middleware settings of the router.
type RouterConfig struct {
	CORS              config.CORSConfig
	RequestsPerMinute int
}

// NewRouter mounts every endpoint and wraps the mux in the middleware chain.
// Probes and /metrics are public; /api routes need an authenticated
// operator, and cost summary writes need a supervisor.
func NewRouter(
	log *slog.Logger,
	h Handlers,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	cfg RouterConfig,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	operator := middleware.RequireRole()
	supervisor := middleware.RequireRole(domain.OperatorRoleSupervisor)
	route := func(pattern string, mw middleware.Middleware, fn http.HandlerFunc) {
		mux.Handle(pattern, mw(fn))
	}

	p := h.Production
	route("POST /api/work-plans", operator, p.CreateWorkPlan)
	route("GET /api/work-plans/{id}", operator, p.GetWorkPlan)
	route("POST /api/work-plans/{id}/batches", operator, p.CreateBatch)
	route("POST /api/work-plans/{id}/process-logs", operator, p.LogProcessEvent)
	route("GET /api/work-plans/{id}/process-logs", operator, p.ListProcessEvents)
	route("GET /api/batches/{id}", operator, p.GetBatch)
	route("GET /api/batches/{id}/material-usage", operator, p.ListMaterialUsage)
	route("PUT /api/batches/{id}/material-usage", operator, p.ReplaceMaterialUsage)
	route("GET /api/batches/{id}/production-result", operator, p.GetProductionResult)
	route("PUT /api/batches/{id}/production-result", operator, p.ReplaceProductionResult)

	c := h.Costs
	route("GET /api/work-plans/{id}/elapsed", operator, c.Elapsed)
	route("GET /api/batches/{id}/elapsed", operator, c.ElapsedForBatch)
	route("GET /api/batches/{id}/cost-summary", operator, c.GetCostSummary)
	route("POST /api/batches/{id}/cost-summary", supervisor, c.CalculateCosts)
	route("GET /api/cost-summaries", operator, c.ListCostSummaries)
	route("GET /api/cost-summaries/export", operator, c.ExportCostSummaries)
	route("POST /api/cost-summaries/recalculate", supervisor, c.RecalculateDate)

	chain := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RequestsPerMinute),
		middleware.Auth(tokens),
	)
	return chain(middleware.Metrics(mux))
}
