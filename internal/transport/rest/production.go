package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/service/production"
)

type productionService interface {
	CreateWorkPlan(ctx context.Context, input production.CreateWorkPlanInput) (domain.WorkPlan, error)
	GetWorkPlan(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)
	CreateBatch(ctx context.Context, input production.CreateBatchInput) (domain.Batch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	LogProcessEvent(ctx context.Context, input production.LogProcessEventInput) (domain.ProcessEvent, error)
	ListProcessEvents(ctx context.Context, workPlanID uuid.UUID, filter domain.ProcessEventFilter) ([]domain.ProcessEvent, error)
	ReplaceMaterialUsage(ctx context.Context, input production.ReplaceMaterialUsageInput) ([]domain.MaterialUsage, error)
	ListMaterialUsage(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error)
	ReplaceProductionResult(ctx context.Context, input production.ReplaceProductionResultInput) (domain.ProductionResult, error)
	GetProductionResult(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)
}

// ProductionHandler serves work plans, batches and the production records
// captured against them.
type ProductionHandler struct {
	svc productionService
	loc *time.Location
	log *slog.Logger
}

// NewProductionHandler creates a ProductionHandler. Date query parameters
// are read as calendar days in loc.
func NewProductionHandler(svc productionService, loc *time.Location, logger *slog.Logger) *ProductionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ProductionHandler{svc: svc, loc: loc, log: logger.With("handler", "production")}
}

// CreateWorkPlan handles POST /api/work-plans.
func (h *ProductionHandler) CreateWorkPlan(w http.ResponseWriter, r *http.Request) {
	var req createWorkPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := production.CreateWorkPlanInput{
		JobCode:    req.JobCode,
		JobName:    req.JobName,
		PlannedQty: req.PlannedQty,
	}
	if req.ProductionDate != nil {
		input.ProductionDate = req.ProductionDate.Time
	}

	plan, err := h.svc.CreateWorkPlan(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkPlanResponse(plan))
}

// GetWorkPlan handles GET /api/work-plans/{id}.
func (h *ProductionHandler) GetWorkPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.GetWorkPlan(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkPlanResponse(*plan))
}

// CreateBatch handles POST /api/work-plans/{id}/batches.
func (h *ProductionHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req createBatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := production.CreateBatchInput{
		WorkPlanID: planID,
		BatchCode:  req.BatchCode,
		JobCode:    req.JobCode,
		JobName:    req.JobName,
	}
	if req.ProductionDate != nil {
		input.ProductionDate = &req.ProductionDate.Time
	}

	batch, err := h.svc.CreateBatch(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBatchResponse(batch))
}

// GetBatch handles GET /api/batches/{id}.
func (h *ProductionHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	batch, err := h.svc.GetBatch(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(*batch))
}

// LogProcessEvent handles POST /api/work-plans/{id}/process-logs.
func (h *ProductionHandler) LogProcessEvent(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req logProcessEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ev, err := h.svc.LogProcessEvent(r.Context(), production.LogProcessEventInput{
		WorkPlanID:    planID,
		ProcessNumber: req.ProcessNumber,
		Status:        domain.EventStatus(req.Status),
		LoggedAt:      lo.FromPtr(req.LoggedAt),
		Note:          req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProcessEventResponse(ev))
}

// ListProcessEvents handles GET /api/work-plans/{id}/process-logs.
func (h *ProductionHandler) ListProcessEvents(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	process, err := queryProcess(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	day, err := queryDate(r, "date", h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	events, err := h.svc.ListProcessEvents(r.Context(), planID, domain.ProcessEventFilter{
		ProcessNumber: process,
		OnDate:        day,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"events": lo.Map(events, func(e domain.ProcessEvent, _ int) processEventResponse {
			return toProcessEventResponse(e)
		}),
	})
}

// ReplaceMaterialUsage handles PUT /api/batches/{id}/material-usage.
func (h *ProductionHandler) ReplaceMaterialUsage(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req replaceMaterialUsageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records := lo.Map(req.Records, func(m materialUsageRequest, _ int) production.MaterialUsageRecord {
		return production.MaterialUsageRecord{
			MaterialID:   m.MaterialID,
			MaterialName: m.MaterialName,
			PlannedQty:   m.PlannedQty,
			ActualQty:    m.ActualQty,
			Unit:         m.Unit,
			UnitPrice:    m.UnitPrice,
			TotalCost:    m.TotalCost,
			WeighedAt:    lo.FromPtr(m.WeighedAt),
		}
	})

	rows, err := h.svc.ReplaceMaterialUsage(r.Context(), production.ReplaceMaterialUsageInput{
		BatchID: batchID,
		Records: records,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaterialUsageList(rows))
}

// ListMaterialUsage handles GET /api/batches/{id}/material-usage.
func (h *ProductionHandler) ListMaterialUsage(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, err := h.svc.ListMaterialUsage(r.Context(), batchID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaterialUsageList(rows))
}

// ReplaceProductionResult handles PUT /api/batches/{id}/production-result.
func (h *ProductionHandler) ReplaceProductionResult(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req replaceProductionResultRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ReplaceProductionResult(r.Context(), production.ReplaceProductionResultInput{
		BatchID:       batchID,
		GoodQty:       req.GoodQty,
		DefectQty:     req.DefectQty,
		Unit:          req.Unit,
		SecondaryQty:  req.SecondaryQty,
		SecondaryUnit: req.SecondaryUnit,
		RecordedAt:    lo.FromPtr(req.RecordedAt),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductionResultResponse(res))
}

// GetProductionResult handles GET /api/batches/{id}/production-result.
func (h *ProductionHandler) GetProductionResult(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetProductionResult(r.Context(), batchID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductionResultResponse(*res))
}
