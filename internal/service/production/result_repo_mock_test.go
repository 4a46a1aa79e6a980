package production

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	GetByBatchFunc func(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)
	ReplaceFunc    func(ctx context.Context, batchID uuid.UUID, res domain.ProductionResult) (domain.ProductionResult, error)

	calls struct {
		GetByBatch []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		Replace []struct {
			Ctx     context.Context
			BatchID uuid.UUID
			Res     domain.ProductionResult
		}
	}
	lockGetByBatch sync.RWMutex
	lockReplace    sync.RWMutex
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

func (mock *resultRepoMock) Replace(ctx context.Context, batchID uuid.UUID, res domain.ProductionResult) (domain.ProductionResult, error) {
	if mock.ReplaceFunc == nil {
		panic("resultRepoMock.ReplaceFunc: method is nil but resultRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
		Res     domain.ProductionResult
	}{Ctx: ctx, BatchID: batchID, Res: res}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, batchID, res)
}

func (mock *resultRepoMock) ReplaceCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
	Res     domain.ProductionResult
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
