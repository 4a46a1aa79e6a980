package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/service/costcalc"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

// civilDate is a calendar day encoded as "YYYY-MM-DD".
type civilDate struct {
	time.Time
}

func (d civilDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *civilDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	d.Time = t
	return nil
}

func dateOrNil(t *time.Time) *civilDate {
	if t == nil {
		return nil
	}
	return &civilDate{*t}
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createWorkPlanRequest struct {
	JobCode        string          `json:"jobCode"`
	JobName        string          `json:"jobName"`
	ProductionDate *civilDate      `json:"productionDate"`
	PlannedQty     decimal.Decimal `json:"plannedQty"`
}

type createBatchRequest struct {
	BatchCode      string     `json:"batchCode"`
	JobCode        *string    `json:"jobCode"`
	JobName        *string    `json:"jobName"`
	ProductionDate *civilDate `json:"productionDate"`
}

type logProcessEventRequest struct {
	ProcessNumber *int       `json:"processNumber"`
	Status        string     `json:"status"`
	LoggedAt      *time.Time `json:"loggedAt"`
	Note          *string    `json:"note"`
}

type materialUsageRequest struct {
	MaterialID   string           `json:"materialId"`
	MaterialName *string          `json:"materialName"`
	PlannedQty   decimal.Decimal  `json:"plannedQty"`
	ActualQty    decimal.Decimal  `json:"actualQty"`
	Unit         string           `json:"unit"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
	TotalCost    *decimal.Decimal `json:"totalCost"`
	WeighedAt    *time.Time       `json:"weighedAt"`
}

type replaceMaterialUsageRequest struct {
	Records []materialUsageRequest `json:"records"`
}

type replaceProductionResultRequest struct {
	GoodQty       decimal.Decimal  `json:"goodQty"`
	DefectQty     decimal.Decimal  `json:"defectQty"`
	Unit          string           `json:"unit"`
	SecondaryQty  *decimal.Decimal `json:"secondaryQty"`
	SecondaryUnit *string          `json:"secondaryUnit"`
	RecordedAt    *time.Time       `json:"recordedAt"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type workPlanResponse struct {
	ID             string          `json:"id"`
	JobCode        string          `json:"jobCode"`
	JobName        string          `json:"jobName"`
	ProductionDate civilDate       `json:"productionDate"`
	PlannedQty     decimal.Decimal `json:"plannedQty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toWorkPlanResponse(p domain.WorkPlan) workPlanResponse {
	return workPlanResponse{
		ID:             p.ID.String(),
		JobCode:        p.JobCode,
		JobName:        p.JobName,
		ProductionDate: civilDate{p.ProductionDate},
		PlannedQty:     p.PlannedQty,
		Status:         p.Status.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type batchResponse struct {
	ID             string     `json:"id"`
	WorkPlanID     string     `json:"workPlanId"`
	BatchCode      string     `json:"batchCode"`
	JobCode        *string    `json:"jobCode,omitempty"`
	JobName        *string    `json:"jobName,omitempty"`
	ProductionDate *civilDate `json:"productionDate,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toBatchResponse(b domain.Batch) batchResponse {
	return batchResponse{
		ID:             b.ID.String(),
		WorkPlanID:     b.WorkPlanID.String(),
		BatchCode:      b.BatchCode,
		JobCode:        b.JobCode,
		JobName:        b.JobName,
		ProductionDate: dateOrNil(b.ProductionDate),
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type processEventResponse struct {
	ID            string    `json:"id"`
	WorkPlanID    string    `json:"workPlanId"`
	ProcessNumber *int      `json:"processNumber"`
	Status        string    `json:"status"`
	LoggedAt      time.Time `json:"loggedAt"`
	Note          *string   `json:"note,omitempty"`
}

func toProcessEventResponse(e domain.ProcessEvent) processEventResponse {
	return processEventResponse{
		ID:            e.ID.String(),
		WorkPlanID:    e.WorkPlanID.String(),
		ProcessNumber: e.ProcessNumber,
		Status:        e.Status.String(),
		LoggedAt:      e.LoggedAt,
		Note:          e.Note,
	}
}

type materialUsageResponse struct {
	ID           string          `json:"id"`
	BatchID      string          `json:"batchId"`
	MaterialID   string          `json:"materialId"`
	MaterialName *string         `json:"materialName,omitempty"`
	PlannedQty   decimal.Decimal `json:"plannedQty"`
	ActualQty    decimal.Decimal `json:"actualQty"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Cost         decimal.Decimal `json:"cost"`
	WeighedAt    time.Time       `json:"weighedAt"`
}

type materialUsageListResponse struct {
	Records []materialUsageResponse `json:"records"`
}

func toMaterialUsageList(rows []domain.MaterialUsage) materialUsageListResponse {
	return materialUsageListResponse{
		Records: lo.Map(rows, func(m domain.MaterialUsage, _ int) materialUsageResponse {
			return materialUsageResponse{
				ID:           m.ID.String(),
				BatchID:      m.BatchID.String(),
				MaterialID:   m.MaterialID,
				MaterialName: m.MaterialName,
				PlannedQty:   m.PlannedQty,
				ActualQty:    m.ActualQty,
				Unit:         m.Unit,
				UnitPrice:    m.UnitPrice,
				Cost:         m.Cost(),
				WeighedAt:    m.WeighedAt,
			}
		}),
	}
}

type productionResultResponse struct {
	ID            string           `json:"id"`
	BatchID       string           `json:"batchId"`
	GoodQty       decimal.Decimal  `json:"goodQty"`
	DefectQty     decimal.Decimal  `json:"defectQty"`
	TotalQty      decimal.Decimal  `json:"totalQty"`
	Unit          string           `json:"unit"`
	SecondaryQty  *decimal.Decimal `json:"secondaryQty,omitempty"`
	SecondaryUnit *string          `json:"secondaryUnit,omitempty"`
	RecordedAt    time.Time        `json:"recordedAt"`
}

func toProductionResultResponse(r domain.ProductionResult) productionResultResponse {
	return productionResultResponse{
		ID:            r.ID.String(),
		BatchID:       r.BatchID.String(),
		GoodQty:       r.GoodQty,
		DefectQty:     r.DefectQty,
		TotalQty:      r.TotalQty(),
		Unit:          r.Unit,
		SecondaryQty:  r.SecondaryQty,
		SecondaryUnit: r.SecondaryUnit,
		RecordedAt:    r.RecordedAt,
	}
}

type intervalResponse struct {
	Start   time.Time `json:"start"`
	Stop    time.Time `json:"stop"`
	Minutes int64     `json:"minutes"`
}

type processTotalResponse struct {
	ProcessNumber *int               `json:"processNumber"`
	Minutes       int64              `json:"minutes"`
	Formatted     string             `json:"formatted"`
	Intervals     []intervalResponse `json:"intervals"`
}

type anomalyResponse struct {
	ProcessNumber *int      `json:"processNumber"`
	Kind          string    `json:"kind"`
	At            time.Time `json:"at"`
}

type elapsedResponse struct {
	TotalMinutes int64                  `json:"totalMinutes"`
	Formatted    string                 `json:"formatted"`
	Processes    []processTotalResponse `json:"processes"`
	Anomalies    []anomalyResponse      `json:"anomalies"`
}

func toAnomalies(anomalies []timeacct.Anomaly) []anomalyResponse {
	return lo.Map(anomalies, func(a timeacct.Anomaly, _ int) anomalyResponse {
		return anomalyResponse{ProcessNumber: a.ProcessNumber, Kind: string(a.Kind), At: a.At}
	})
}

func toElapsedResponse(res timeacct.Result) elapsedResponse {
	return elapsedResponse{
		TotalMinutes: res.TotalMinutes,
		Formatted:    timeacct.FormatMinutes(res.TotalMinutes),
		Processes: lo.Map(res.Processes, func(p timeacct.ProcessTotal, _ int) processTotalResponse {
			return processTotalResponse{
				ProcessNumber: p.ProcessNumber,
				Minutes:       p.Minutes,
				Formatted:     timeacct.FormatMinutes(p.Minutes),
				Intervals: lo.Map(p.Intervals, func(iv timeacct.Interval, _ int) intervalResponse {
					return intervalResponse{Start: iv.Start, Stop: iv.Stop, Minutes: iv.Minutes}
				}),
			}
		}),
		Anomalies: toAnomalies(res.Anomalies),
	}
}

type costSummaryResponse struct {
	BatchID           string          `json:"batchId"`
	WorkPlanID        string          `json:"workPlanId"`
	JobCode           string          `json:"jobCode"`
	JobName           string          `json:"jobName"`
	ProductionDate    civilDate       `json:"productionDate"`
	InputMaterialQty  decimal.Decimal `json:"inputMaterialQty"`
	InputMaterialUnit string          `json:"inputMaterialUnit"`
	MaterialCost      decimal.Decimal `json:"materialCost"`
	OutputQty         decimal.Decimal `json:"outputQty"`
	OutputUnitCost    decimal.Decimal `json:"outputUnitCost"`
	OutputUnit        string          `json:"outputUnit"`
	TimeUsedMinutes   int64           `json:"timeUsedMinutes"`
	TimeUsed          string          `json:"timeUsed"`
	OperatorsCount    int             `json:"operatorsCount"`
	LaborRatePerHour  decimal.Decimal `json:"laborRatePerHour"`
	LossPercent       decimal.Decimal `json:"lossPercent"`
	UtilityPercent    decimal.Decimal `json:"utilityPercent"`
	CalculatedAt      time.Time       `json:"calculatedAt"`
}

func toCostSummaryResponse(s domain.CostSummary) costSummaryResponse {
	return costSummaryResponse{
		BatchID:           s.BatchID.String(),
		WorkPlanID:        s.WorkPlanID.String(),
		JobCode:           s.JobCode,
		JobName:           s.JobName,
		ProductionDate:    civilDate{s.ProductionDate},
		InputMaterialQty:  s.InputMaterialQty,
		InputMaterialUnit: s.InputMaterialUnit,
		MaterialCost:      s.MaterialCost,
		OutputQty:         s.OutputQty,
		OutputUnitCost:    s.OutputUnitCost,
		OutputUnit:        s.OutputUnit,
		TimeUsedMinutes:   s.TimeUsedMinutes,
		TimeUsed:          timeacct.FormatMinutes(s.TimeUsedMinutes),
		OperatorsCount:    s.OperatorsCount,
		LaborRatePerHour:  s.LaborRatePerHour,
		LossPercent:       s.LossPercent,
		UtilityPercent:    s.UtilityPercent,
		CalculatedAt:      s.CalculatedAt,
	}
}

type costSummaryListResponse struct {
	Date      civilDate             `json:"date"`
	Summaries []costSummaryResponse `json:"summaries"`
}

type calculationResponse struct {
	Summary   costSummaryResponse `json:"summary"`
	Changed   bool                `json:"changed"`
	Anomalies []anomalyResponse   `json:"anomalies"`
}

type recalcFailureResponse struct {
	BatchID string `json:"batchId"`
	Error   string `json:"error"`
}

type recalcReportResponse struct {
	Date      civilDate               `json:"date"`
	Batches   int                     `json:"batches"`
	Changed   int                     `json:"changed"`
	Unchanged int                     `json:"unchanged"`
	Failures  []recalcFailureResponse `json:"failures"`
}

func toRecalcReportResponse(r costcalc.RecalcReport) recalcReportResponse {
	return recalcReportResponse{
		Date:      civilDate{r.Date},
		Batches:   r.Batches,
		Changed:   r.Changed,
		Unchanged: r.Unchanged,
		Failures: lo.Map(r.Failures, func(f costcalc.RecalcFailure, _ int) recalcFailureResponse {
			return recalcFailureResponse{BatchID: f.BatchID.String(), Error: f.Err.Error()}
		}),
	}
}
