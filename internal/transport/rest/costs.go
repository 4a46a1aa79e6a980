package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/report"
	"github.com/heartmarshall/prodcost-backend/internal/service/costcalc"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

type costService interface {
	Elapsed(ctx context.Context, workPlanID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error)
	ElapsedForBatch(ctx context.Context, batchID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error)
	CalculateCosts(ctx context.Context, batchID uuid.UUID) (costcalc.Calculation, error)
	GetCostSummary(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error)
	ListCostSummaries(ctx context.Context, day time.Time) ([]domain.CostSummary, error)
	RecalculateDate(ctx context.Context, day time.Time) (costcalc.RecalcReport, error)
}

// CostHandler serves elapsed time and cost summary endpoints.
type CostHandler struct {
	svc costService
	loc *time.Location
	log *slog.Logger
}

// NewCostHandler creates a CostHandler. Date query parameters are read as
// calendar days in loc.
func NewCostHandler(svc costService, loc *time.Location, logger *slog.Logger) *CostHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CostHandler{svc: svc, loc: loc, log: logger.With("handler", "costs")}
}

// Elapsed handles GET /api/work-plans/{id}/elapsed.
func (h *CostHandler) Elapsed(w http.ResponseWriter, r *http.Request) {
	h.elapsed(w, r, h.svc.Elapsed)
}

// ElapsedForBatch handles GET /api/batches/{id}/elapsed.
func (h *CostHandler) ElapsedForBatch(w http.ResponseWriter, r *http.Request) {
	h.elapsed(w, r, h.svc.ElapsedForBatch)
}

func (h *CostHandler) elapsed(
	w http.ResponseWriter,
	r *http.Request,
	compute func(context.Context, uuid.UUID, costcalc.ElapsedFilter) (timeacct.Result, error),
) {
	id, err := pathUUID(r, "id")
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

	res, err := compute(r.Context(), id, costcalc.ElapsedFilter{ProcessNumber: process, OnDate: day})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toElapsedResponse(res))
}

// CalculateCosts handles POST /api/batches/{id}/cost-summary.
func (h *CostHandler) CalculateCosts(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	calc, err := h.svc.CalculateCosts(r.Context(), batchID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, calculationResponse{
		Summary:   toCostSummaryResponse(calc.Summary),
		Changed:   calc.Changed,
		Anomalies: toAnomalies(calc.Anomalies),
	})
}

// GetCostSummary handles GET /api/batches/{id}/cost-summary.
func (h *CostHandler) GetCostSummary(w http.ResponseWriter, r *http.Request) {
	batchID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.GetCostSummary(r.Context(), batchID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if summary == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCostSummaryResponse(*summary))
}

// ListCostSummaries handles GET /api/cost-summaries?date=.
func (h *CostHandler) ListCostSummaries(w http.ResponseWriter, r *http.Request) {
	day, err := requiredQueryDate(r, "date", h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summaries, err := h.svc.ListCostSummaries(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, costSummaryListResponse{
		Date: civilDate{day},
		Summaries: lo.Map(summaries, func(s domain.CostSummary, _ int) costSummaryResponse {
			return toCostSummaryResponse(s)
		}),
	})
}

// RecalculateDate handles POST /api/cost-summaries/recalculate?date=.
// Per-batch failures are part of a 200 response; only a failed listing
// or a cancelled request is an error.
func (h *CostHandler) RecalculateDate(w http.ResponseWriter, r *http.Request) {
	day, err := requiredQueryDate(r, "date", h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.RecalculateDate(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecalcReportResponse(rep))
}

// ExportCostSummaries handles GET /api/cost-summaries/export?date= and
// returns the day's summaries as an XLSX attachment.
func (h *CostHandler) ExportCostSummaries(w http.ResponseWriter, r *http.Request) {
	day, err := requiredQueryDate(r, "date", h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summaries, err := h.svc.ListCostSummaries(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCostSummaries(&buf, summaries); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(day)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WarnContext(r.Context(), "write export", slog.String("error", err.Error()))
	}
}
