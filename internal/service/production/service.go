package production

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/pkg/ctxutil"
)

type workPlanRepo interface {
	Create(ctx context.Context, plan domain.WorkPlan) (domain.WorkPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)
	CreateBatch(ctx context.Context, batch domain.Batch) (domain.Batch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
}

type processLogRepo interface {
	Append(ctx context.Context, ev domain.ProcessEvent) (domain.ProcessEvent, error)
	List(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error)
}

type materialRepo interface {
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error)
	Replace(ctx context.Context, batchID uuid.UUID, records []domain.MaterialUsage) ([]domain.MaterialUsage, error)
}

type resultRepo interface {
	GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)
	Replace(ctx context.Context, batchID uuid.UUID, res domain.ProductionResult) (domain.ProductionResult, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records the shop-floor facts the cost engine works from: work
// plans, batches, process events, material usage and production results.
type Service struct {
	plans     workPlanRepo
	events    processLogRepo
	materials materialRepo
	results   resultRepo
	audit     auditLogger
	tx        txManager
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new production service. loc is the production site's
// time zone used for calendar-day filters; nil means UTC.
func NewService(
	log *slog.Logger,
	plans workPlanRepo,
	events processLogRepo,
	materials materialRepo,
	results resultRepo,
	audit auditLogger,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		plans:     plans,
		events:    events,
		materials: materials,
		results:   results,
		audit:     audit,
		tx:        tx,
		loc:       loc,
		now:       time.Now,
		log:       log.With("service", "production"),
	}
}

// actorFromCtx returns the authenticated operator, or nil for system calls.
func actorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ctxutil.OperatorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}
