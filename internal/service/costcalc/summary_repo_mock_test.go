package costcalc

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
	"time"
)

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	GetByBatchFunc func(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error)
	ListByDateFunc func(ctx context.Context, day time.Time) ([]domain.CostSummary, error)
	UpsertFunc     func(ctx context.Context, s domain.CostSummary) (domain.CostSummary, bool, error)

	calls struct {
		GetByBatch []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		ListByDate []struct {
			Ctx context.Context
			Day time.Time
		}
		Upsert []struct {
			Ctx context.Context
			S   domain.CostSummary
		}
	}
	lockGetByBatch sync.RWMutex
	lockListByDate sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *summaryRepoMock) GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error) {
	if mock.GetByBatchFunc == nil {
		panic("summaryRepoMock.GetByBatchFunc: method is nil but summaryRepo.GetByBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockGetByBatch.Lock()
	mock.calls.GetByBatch = append(mock.calls.GetByBatch, callInfo)
	mock.lockGetByBatch.Unlock()
	return mock.GetByBatchFunc(ctx, batchID)
}

func (mock *summaryRepoMock) GetByBatchCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockGetByBatch.RLock()
	calls := mock.calls.GetByBatch
	mock.lockGetByBatch.RUnlock()
	return calls
}

func (mock *summaryRepoMock) ListByDate(ctx context.Context, day time.Time) ([]domain.CostSummary, error) {
	if mock.ListByDateFunc == nil {
		panic("summaryRepoMock.ListByDateFunc: method is nil but summaryRepo.ListByDate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockListByDate.Lock()
	mock.calls.ListByDate = append(mock.calls.ListByDate, callInfo)
	mock.lockListByDate.Unlock()
	return mock.ListByDateFunc(ctx, day)
}

func (mock *summaryRepoMock) ListByDateCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListByDate.RLock()
	calls := mock.calls.ListByDate
	mock.lockListByDate.RUnlock()
	return calls
}

func (mock *summaryRepoMock) Upsert(ctx context.Context, s domain.CostSummary) (domain.CostSummary, bool, error) {
	if mock.UpsertFunc == nil {
		panic("summaryRepoMock.UpsertFunc: method is nil but summaryRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.CostSummary
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *summaryRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   domain.CostSummary
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
