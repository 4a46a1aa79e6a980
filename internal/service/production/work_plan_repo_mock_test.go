package production

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ workPlanRepo = &workPlanRepoMock{}

type workPlanRepoMock struct {
	CreateFunc      func(ctx context.Context, plan domain.WorkPlan) (domain.WorkPlan, error)
	CreateBatchFunc func(ctx context.Context, batch domain.Batch) (domain.Batch, error)
	GetBatchFunc    func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Plan domain.WorkPlan
		}
		CreateBatch []struct {
			Ctx   context.Context
			Batch domain.Batch
		}
		GetBatch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockCreateBatch sync.RWMutex
	lockGetBatch    sync.RWMutex
	lockGetByID     sync.RWMutex
}

func (mock *workPlanRepoMock) Create(ctx context.Context, plan domain.WorkPlan) (domain.WorkPlan, error) {
	if mock.CreateFunc == nil {
		panic("workPlanRepoMock.CreateFunc: method is nil but workPlanRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Plan domain.WorkPlan
	}{Ctx: ctx, Plan: plan}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, plan)
}

func (mock *workPlanRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Plan domain.WorkPlan
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *workPlanRepoMock) CreateBatch(ctx context.Context, batch domain.Batch) (domain.Batch, error) {
	if mock.CreateBatchFunc == nil {
		panic("workPlanRepoMock.CreateBatchFunc: method is nil but workPlanRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Batch domain.Batch
	}{Ctx: ctx, Batch: batch}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, batch)
}

func (mock *workPlanRepoMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Batch domain.Batch
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
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
