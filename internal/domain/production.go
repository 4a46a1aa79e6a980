package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkPlan is a planned job. Process logs are recorded against the work plan;
// its batches inherit its job metadata.
type WorkPlan struct {
	ID             uuid.UUID
	JobCode        string
	JobName        string
	ProductionDate time.Time
	PlannedQty     decimal.Decimal
	Status         WorkPlanStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Batch is one production run of a work plan. Job metadata on the batch is
// optional; missing fields are taken from the parent work plan.
type Batch struct {
	ID             uuid.UUID
	WorkPlanID     uuid.UUID
	BatchCode      string
	JobCode        *string
	JobName        *string
	ProductionDate *time.Time
	Status         BatchStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JobMetadata identifies the job a cost summary belongs to.
type JobMetadata struct {
	JobCode        string
	JobName        string
	ProductionDate time.Time
}

// ProcessEvent is one timestamped start/stop transition of a process station.
// A nil ProcessNumber is a valid partition of its own.
type ProcessEvent struct {
	ID            uuid.UUID
	WorkPlanID    uuid.UUID
	ProcessNumber *int
	Status        EventStatus
	LoggedAt      time.Time
	Note          *string
}

// MaterialUsage is one weighing record of a batch. TotalCost, when stored,
// takes precedence over ActualQty * UnitPrice.
type MaterialUsage struct {
	ID           uuid.UUID
	BatchID      uuid.UUID
	MaterialID   string
	MaterialName *string
	PlannedQty   decimal.Decimal
	ActualQty    decimal.Decimal
	Unit         string
	UnitPrice    decimal.Decimal
	TotalCost    *decimal.Decimal
	WeighedAt    time.Time
}

// Cost returns the stored total cost or ActualQty * UnitPrice.
func (m MaterialUsage) Cost() decimal.Decimal {
	if m.TotalCost != nil {
		return *m.TotalCost
	}
	return m.ActualQty.Mul(m.UnitPrice)
}

// ProductionResult holds the output quantities of a batch.
type ProductionResult struct {
	ID            uuid.UUID
	BatchID       uuid.UUID
	GoodQty       decimal.Decimal
	DefectQty     decimal.Decimal
	Unit          string
	SecondaryQty  *decimal.Decimal
	SecondaryUnit *string
	RecordedAt    time.Time
}

// TotalQty is GoodQty + DefectQty.
func (r ProductionResult) TotalQty() decimal.Decimal {
	return r.GoodQty.Add(r.DefectQty)
}

// CostSummary is the derived, persisted cost figure of one batch.
// There is at most one per batch; recalculation replaces every field.
type CostSummary struct {
	BatchID           uuid.UUID
	WorkPlanID        uuid.UUID
	JobCode           string
	JobName           string
	ProductionDate    time.Time
	InputMaterialQty  decimal.Decimal
	InputMaterialUnit string
	MaterialCost      decimal.Decimal
	OutputQty         decimal.Decimal
	OutputUnitCost    decimal.Decimal
	OutputUnit        string
	TimeUsedMinutes   int64
	OperatorsCount    int
	LaborRatePerHour  decimal.Decimal
	LossPercent       decimal.Decimal
	UtilityPercent    decimal.Decimal
	CalculatedAt      time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
