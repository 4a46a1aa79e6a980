package costcalc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/costing"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/pkg/ctxutil"
)

type workPlanRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetBatchForUpdate(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetMetadata(ctx context.Context, batchID uuid.UUID) (*domain.JobMetadata, error)
	ListBatchesByDate(ctx context.Context, day time.Time) ([]domain.Batch, error)
}

type processLogRepo interface {
	List(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error)
}

type materialRepo interface {
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error)
}

type resultRepo interface {
	GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)
}

type summaryRepo interface {
	Upsert(ctx context.Context, s domain.CostSummary) (domain.CostSummary, bool, error)
	GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error)
	ListByDate(ctx context.Context, day time.Time) ([]domain.CostSummary, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the cost service settings.
type Config struct {
	Params costing.Params
	// Location is the production site's time zone for calendar-day filters.
	Location *time.Location
	// RecalcConcurrency bounds the batches recalculated at once by
	// RecalculateDate.
	RecalcConcurrency int
}

// Service runs the time-accounting and cost-aggregation engines against the
// stored production records.
type Service struct {
	plans     workPlanRepo
	events    processLogRepo
	materials materialRepo
	results   resultRepo
	summaries summaryRepo
	audit     auditLogger
	tx        txManager
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new cost calculation service.
func NewService(
	log *slog.Logger,
	plans workPlanRepo,
	events processLogRepo,
	materials materialRepo,
	results resultRepo,
	summaries summaryRepo,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RecalcConcurrency <= 0 {
		cfg.RecalcConcurrency = 1
	}
	return &Service{
		plans:     plans,
		events:    events,
		materials: materials,
		results:   results,
		summaries: summaries,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "costcalc"),
	}
}

func actorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ctxutil.OperatorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}
