package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/service/costcalc"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
	"sync"
	"time"
)

var _ costService = &costServiceMock{}

type costServiceMock struct {
	CalculateCostsFunc    func(ctx context.Context, batchID uuid.UUID) (costcalc.Calculation, error)
	ElapsedFunc           func(ctx context.Context, workPlanID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error)
	ElapsedForBatchFunc   func(ctx context.Context, batchID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error)
	GetCostSummaryFunc    func(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error)
	ListCostSummariesFunc func(ctx context.Context, day time.Time) ([]domain.CostSummary, error)
	RecalculateDateFunc   func(ctx context.Context, day time.Time) (costcalc.RecalcReport, error)

	calls struct {
		CalculateCosts []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		Elapsed []struct {
			Ctx        context.Context
			WorkPlanID uuid.UUID
			F          costcalc.ElapsedFilter
		}
		ElapsedForBatch []struct {
			Ctx     context.Context
			BatchID uuid.UUID
			F       costcalc.ElapsedFilter
		}
		GetCostSummary []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		ListCostSummaries []struct {
			Ctx context.Context
			Day time.Time
		}
		RecalculateDate []struct {
			Ctx context.Context
			Day time.Time
		}
	}
	lockCalculateCosts    sync.RWMutex
	lockElapsed           sync.RWMutex
	lockElapsedForBatch   sync.RWMutex
	lockGetCostSummary    sync.RWMutex
	lockListCostSummaries sync.RWMutex
	lockRecalculateDate   sync.RWMutex
}

func (mock *costServiceMock) CalculateCosts(ctx context.Context, batchID uuid.UUID) (costcalc.Calculation, error) {
	if mock.CalculateCostsFunc == nil {
		panic("costServiceMock.CalculateCostsFunc: method is nil but costService.CalculateCosts was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockCalculateCosts.Lock()
	mock.calls.CalculateCosts = append(mock.calls.CalculateCosts, callInfo)
	mock.lockCalculateCosts.Unlock()
	return mock.CalculateCostsFunc(ctx, batchID)
}

func (mock *costServiceMock) CalculateCostsCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockCalculateCosts.RLock()
	calls := mock.calls.CalculateCosts
	mock.lockCalculateCosts.RUnlock()
	return calls
}

func (mock *costServiceMock) Elapsed(ctx context.Context, workPlanID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error) {
	if mock.ElapsedFunc == nil {
		panic("costServiceMock.ElapsedFunc: method is nil but costService.Elapsed was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WorkPlanID uuid.UUID
		F          costcalc.ElapsedFilter
	}{Ctx: ctx, WorkPlanID: workPlanID, F: f}
	mock.lockElapsed.Lock()
	mock.calls.Elapsed = append(mock.calls.Elapsed, callInfo)
	mock.lockElapsed.Unlock()
	return mock.ElapsedFunc(ctx, workPlanID, f)
}

func (mock *costServiceMock) ElapsedCalls() []struct {
	Ctx        context.Context
	WorkPlanID uuid.UUID
	F          costcalc.ElapsedFilter
} {
	mock.lockElapsed.RLock()
	calls := mock.calls.Elapsed
	mock.lockElapsed.RUnlock()
	return calls
}

func (mock *costServiceMock) ElapsedForBatch(ctx context.Context, batchID uuid.UUID, f costcalc.ElapsedFilter) (timeacct.Result, error) {
	if mock.ElapsedForBatchFunc == nil {
		panic("costServiceMock.ElapsedForBatchFunc: method is nil but costService.ElapsedForBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
		F       costcalc.ElapsedFilter
	}{Ctx: ctx, BatchID: batchID, F: f}
	mock.lockElapsedForBatch.Lock()
	mock.calls.ElapsedForBatch = append(mock.calls.ElapsedForBatch, callInfo)
	mock.lockElapsedForBatch.Unlock()
	return mock.ElapsedForBatchFunc(ctx, batchID, f)
}

func (mock *costServiceMock) ElapsedForBatchCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
	F       costcalc.ElapsedFilter
} {
	mock.lockElapsedForBatch.RLock()
	calls := mock.calls.ElapsedForBatch
	mock.lockElapsedForBatch.RUnlock()
	return calls
}

func (mock *costServiceMock) GetCostSummary(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error) {
	if mock.GetCostSummaryFunc == nil {
		panic("costServiceMock.GetCostSummaryFunc: method is nil but costService.GetCostSummary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockGetCostSummary.Lock()
	mock.calls.GetCostSummary = append(mock.calls.GetCostSummary, callInfo)
	mock.lockGetCostSummary.Unlock()
	return mock.GetCostSummaryFunc(ctx, batchID)
}

func (mock *costServiceMock) GetCostSummaryCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockGetCostSummary.RLock()
	calls := mock.calls.GetCostSummary
	mock.lockGetCostSummary.RUnlock()
	return calls
}

func (mock *costServiceMock) ListCostSummaries(ctx context.Context, day time.Time) ([]domain.CostSummary, error) {
	if mock.ListCostSummariesFunc == nil {
		panic("costServiceMock.ListCostSummariesFunc: method is nil but costService.ListCostSummaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockListCostSummaries.Lock()
	mock.calls.ListCostSummaries = append(mock.calls.ListCostSummaries, callInfo)
	mock.lockListCostSummaries.Unlock()
	return mock.ListCostSummariesFunc(ctx, day)
}

func (mock *costServiceMock) ListCostSummariesCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListCostSummaries.RLock()
	calls := mock.calls.ListCostSummaries
	mock.lockListCostSummaries.RUnlock()
	return calls
}

func (mock *costServiceMock) RecalculateDate(ctx context.Context, day time.Time) (costcalc.RecalcReport, error) {
	if mock.RecalculateDateFunc == nil {
		panic("costServiceMock.RecalculateDateFunc: method is nil but costService.RecalculateDate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockRecalculateDate.Lock()
	mock.calls.RecalculateDate = append(mock.calls.RecalculateDate, callInfo)
	mock.lockRecalculateDate.Unlock()
	return mock.RecalculateDateFunc(ctx, day)
}

func (mock *costServiceMock) RecalculateDateCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockRecalculateDate.RLock()
	calls := mock.calls.RecalculateDate
	mock.lockRecalculateDate.RUnlock()
	return calls
}
