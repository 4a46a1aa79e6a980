package costcalc

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	ListByBatchFunc func(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error)

	calls struct {
		ListByBatch []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
	}
	lockListByBatch sync.RWMutex
}

func (mock *materialRepoMock) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error) {
	if mock.ListByBatchFunc == nil {
		panic("materialRepoMock.ListByBatchFunc: method is nil but materialRepo.ListByBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockListByBatch.Lock()
	mock.calls.ListByBatch = append(mock.calls.ListByBatch, callInfo)
	mock.lockListByBatch.Unlock()
	return mock.ListByBatchFunc(ctx, batchID)
}

func (mock *materialRepoMock) ListByBatchCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockListByBatch.RLock()
	calls := mock.calls.ListByBatch
	mock.lockListByBatch.RUnlock()
	return calls
}
