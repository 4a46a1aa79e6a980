package costcalc

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
	"time"
)

var _ workPlanRepo = &workPlanRepoMock{}

type workPlanRepoMock struct {
	GetBatchFunc          func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetBatchForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)
	GetMetadataFunc       func(ctx context.Context, batchID uuid.UUID) (*domain.JobMetadata, error)
	ListBatchesByDateFunc func(ctx context.Context, day time.Time) ([]domain.Batch, error)

	calls struct {
		GetBatch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBatchForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetMetadata []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		ListBatchesByDate []struct {
			Ctx context.Context
			Day time.Time
		}
	}
	lockGetBatch          sync.RWMutex
	lockGetBatchForUpdate sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetMetadata       sync.RWMutex
	lockListBatchesByDate sync.RWMutex
}

func (mock *workPlanRepoMock) GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if mock.GetBatchFunc == nil {
		panic("workPlanRepoMock.GetBatchFunc: method is nil but workPlanRepo.GetBatch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetBatch.Lock()
	mock.calls.GetBatch = append(mock.calls.GetBatch, callInfo)
	mock.lockGetBatch.Unlock()
	return mock.GetBatchFunc(ctx, id)
}

func (mock *workPlanRepoMock) GetBatchCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetBatch.RLock()
	calls := mock.calls.GetBatch
	mock.lockGetBatch.RUnlock()
	return calls
}

func (mock *workPlanRepoMock) GetBatchForUpdate(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if mock.GetBatchForUpdateFunc == nil {
		panic("workPlanRepoMock.GetBatchForUpdateFunc: method is nil but workPlanRepo.GetBatchForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetBatchForUpdate.Lock()
	mock.calls.GetBatchForUpdate = append(mock.calls.GetBatchForUpdate, callInfo)
	mock.lockGetBatchForUpdate.Unlock()
	return mock.GetBatchForUpdateFunc(ctx, id)
}

func (mock *workPlanRepoMock) GetBatchForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetBatchForUpdate.RLock()
	calls := mock.calls.GetBatchForUpdate
	mock.lockGetBatchForUpdate.RUnlock()
	return calls
}

func (mock *workPlanRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error) {
	if mock.GetByIDFunc == nil {
		panic("workPlanRepoMock.GetByIDFunc: method is nil but workPlanRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workPlanRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *workPlanRepoMock) GetMetadata(ctx context.Context, batchID uuid.UUID) (*domain.JobMetadata, error) {
	if mock.GetMetadataFunc == nil {
		panic("workPlanRepoMock.GetMetadataFunc: method is nil but workPlanRepo.GetMetadata was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockGetMetadata.Lock()
	mock.calls.GetMetadata = append(mock.calls.GetMetadata, callInfo)
	mock.lockGetMetadata.Unlock()
	return mock.GetMetadataFunc(ctx, batchID)
}

func (mock *workPlanRepoMock) GetMetadataCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockGetMetadata.RLock()
	calls := mock.calls.GetMetadata
	mock.lockGetMetadata.RUnlock()
	return calls
}

func (mock *workPlanRepoMock) ListBatchesByDate(ctx context.Context, day time.Time) ([]domain.Batch, error) {
	if mock.ListBatchesByDateFunc == nil {
		panic("workPlanRepoMock.ListBatchesByDateFunc: method is nil but workPlanRepo.ListBatchesByDate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockListBatchesByDate.Lock()
	mock.calls.ListBatchesByDate = append(mock.calls.ListBatchesByDate, callInfo)
	mock.lockListBatchesByDate.Unlock()
	return mock.ListBatchesByDateFunc(ctx, day)
}

func (mock *workPlanRepoMock) ListBatchesByDateCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListBatchesByDate.RLock()
	calls := mock.calls.ListBatchesByDate
	mock.lockListBatchesByDate.RUnlock()
	return calls
}
