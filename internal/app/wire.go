package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/costsummary"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/material"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/processlog"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/result"
	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres/workplan"
	"github.com/heartmarshall/prodcost-backend/internal/auth"
	"github.com/heartmarshall/prodcost-backend/internal/config"
	"github.com/heartmarshall/prodcost-backend/internal/costing"
	"github.com/heartmarshall/prodcost-backend/internal/service/costcalc"
	"github.com/heartmarshall/prodcost-backend/internal/service/production"
	"github.com/heartmarshall/prodcost-backend/internal/transport/middleware"
	"github.com/heartmarshall/prodcost-backend/internal/transport/rest"
)

// Services are the wired application services, shared by the HTTP server
// and the prodctl commands.
type Services struct {
	Production *production.Service
	Costs      *costcalc.Service
	Tokens     *auth.JWTManager
}

// NewServices builds the repositories and services on top of pool.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Services {
	plans := workplan.New(pool)
	events := processlog.New(pool)
	materials := material.New(pool)
	results := result.New(pool)
	summaries := costsummary.New(pool)
	auditRepo := audit.New(pool)
	txm := postgres.NewTxManager(pool)

	loc := cfg.Costing.Location

	return &Services{
		Production: production.NewService(logger, plans, events, materials, results, auditRepo, txm, loc),
		Costs: costcalc.NewService(logger, plans, events, materials, results, summaries, auditRepo, txm, costcalc.Config{
			Params:            costingParams(cfg.Costing),
			Location:          loc,
			RecalcConcurrency: cfg.Costing.RecalcConcurrency,
		}),
		Tokens: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

func costingParams(c config.CostingConfig) costing.Params {
	return costing.Params{
		OperatorsCount:   c.OperatorsCount,
		LaborRatePerHour: c.LaborRatePerHour,
		LossPercent:      c.LossPercent,
		UtilityPercent:   c.UtilityPercent,
		AllowMixedUnits:  c.AllowMixedUnits,
	}
}

// NewHandler mounts the REST API over svcs. The returned stop func releases
// the rate limiter's cleanup goroutine.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, svcs *Services) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	loc := cfg.Costing.Location

	handler := rest.NewRouter(logger, rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Production: rest.NewProductionHandler(svcs.Production, loc, logger),
		Costs:      rest.NewCostHandler(svcs.Costs, loc, logger),
	}, svcs.Tokens, limiter, rest.RouterConfig{
		CORS:              cfg.CORS,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	})
	return handler, limiter.Stop
}
