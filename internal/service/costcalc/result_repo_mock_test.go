package costcalc

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	GetByBatchFunc func(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)

	calls struct {
		GetByBatch []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
	}
	lockGetByBatch sync.RWMutex
}

func (mock *resultRepoMock) GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error) {
	if mock.GetByBatchFunc == nil {
		panic("resultRepoMock.GetByBatchFunc: method is nil but resultRepo.GetByBatch was just called")
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

func (mock *resultRepoMock) GetByBatchCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockGetByBatch.RLock()
	calls := mock.calls.GetByBatch
	mock.lockGetByBatch.RUnlock()
	return calls
}
