package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// CreateWorkPlanInput holds the parameters for creating a work plan.
type CreateWorkPlanInput struct {
	JobCode        string          `field:"job_code" validate:"required,max=64"`
	JobName        string          `field:"job_name" validate:"required,max=255"`
	ProductionDate time.Time       `field:"production_date" validate:"required"`
	PlannedQty     decimal.Decimal `field:"planned_qty" validate:"decnonneg"`
}

func (i CreateWorkPlanInput) normalize() CreateWorkPlanInput {
	i.JobCode = strings.TrimSpace(i.JobCode)
	i.JobName = strings.TrimSpace(i.JobName)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateWorkPlanInput) Validate() error {
	return validateStruct(i.normalize())
}

// CreateBatchInput holds the parameters for opening a batch. Nil job
// metadata is inherited from the work plan when costs are calculated.
type CreateBatchInput struct {
	WorkPlanID     uuid.UUID  `field:"work_plan_id" validate:"required"`
	BatchCode      string     `field:"batch_code" validate:"required,max=64"`
	JobCode        *string    `field:"job_code" validate:"omitempty,max=64"`
	JobName        *string    `field:"job_name" validate:"omitempty,max=255"`
	ProductionDate *time.Time `field:"production_date"`
}

func (i CreateBatchInput) normalize() CreateBatchInput {
	i.BatchCode = strings.TrimSpace(i.BatchCode)
	i.JobCode = trimOrNil(i.JobCode)
	i.JobName = trimOrNil(i.JobName)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateBatchInput) Validate() error {
	return validateStruct(i.normalize())
}

// LogProcessEventInput records one start/stop transition. A zero LoggedAt
// means now; a nil ProcessNumber is a partition of its own.
type LogProcessEventInput struct {
	WorkPlanID    uuid.UUID          `field:"work_plan_id" validate:"required"`
	ProcessNumber *int               `field:"process_number" validate:"omitempty,gte=0"`
	Status        domain.EventStatus `field:"status" validate:"required,oneof=start stop"`
	LoggedAt      time.Time          `field:"logged_at"`
	Note          *string            `field:"note" validate:"omitempty,max=500"`
}

// Validate checks all fields and collects all errors.
func (i LogProcessEventInput) Validate() error {
	return validateStruct(i)
}

// MaterialUsageRecord is one weighing line of a material usage replacement.
type MaterialUsageRecord struct {
	MaterialID   string           `field:"material_id" validate:"required,max=64"`
	MaterialName *string          `field:"material_name" validate:"omitempty,max=255"`
	PlannedQty   decimal.Decimal  `field:"planned_qty" validate:"decnonneg"`
	ActualQty    decimal.Decimal  `field:"actual_qty" validate:"decnonneg"`
	Unit         string           `field:"unit" validate:"required,max=16"`
	UnitPrice    decimal.Decimal  `field:"unit_price" validate:"decnonneg"`
	TotalCost    *decimal.Decimal `field:"total_cost" validate:"omitempty,decnonneg"`
	WeighedAt    time.Time        `field:"weighed_at"`
}

// ReplaceMaterialUsageInput supersedes every material usage row of a batch.
// An empty Records slice clears the batch's usage.
type ReplaceMaterialUsageInput struct {
	BatchID uuid.UUID             `field:"batch_id" validate:"required"`
	Records []MaterialUsageRecord `field:"records" validate:"max=500,dive"`
}

func (i ReplaceMaterialUsageInput) normalize() ReplaceMaterialUsageInput {
	records := make([]MaterialUsageRecord, len(i.Records))
	for k, r := range i.Records {
		r.MaterialID = strings.TrimSpace(r.MaterialID)
		r.MaterialName = trimOrNil(r.MaterialName)
		r.Unit = strings.TrimSpace(r.Unit)
		records[k] = r
	}
	i.Records = records
	return i
}

// Validate checks all fields and collects all errors.
func (i ReplaceMaterialUsageInput) Validate() error {
	return validateStruct(i.normalize())
}

// ReplaceProductionResultInput supersedes the production result of a batch.
type ReplaceProductionResultInput struct {
	BatchID       uuid.UUID        `field:"batch_id" validate:"required"`
	GoodQty       decimal.Decimal  `field:"good_qty" validate:"decnonneg"`
	DefectQty     decimal.Decimal  `field:"defect_qty" validate:"decnonneg"`
	Unit          string           `field:"unit" validate:"required,max=16"`
	SecondaryQty  *decimal.Decimal `field:"secondary_qty" validate:"omitempty,decnonneg"`
	SecondaryUnit *string          `field:"secondary_unit" validate:"omitempty,max=16"`
	RecordedAt    time.Time        `field:"recorded_at"`
}

func (i ReplaceProductionResultInput) normalize() ReplaceProductionResultInput {
	i.Unit = strings.TrimSpace(i.Unit)
	i.SecondaryUnit = trimOrNil(i.SecondaryUnit)
	return i
}

// Validate checks all fields and collects all errors.
func (i ReplaceProductionResultInput) Validate() error {
	n := i.normalize()
	var extra []domain.FieldError
	if n.SecondaryQty != nil && n.SecondaryUnit == nil {
		extra = append(extra, domain.FieldError{Field: "secondary_unit", Message: "required with secondary_qty"})
	}
	return validateStruct(n, extra...)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
