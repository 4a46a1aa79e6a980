package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/service/production"
	"sync"
)

var _ productionService = &productionServiceMock{}

type productionServiceMock struct {
	CreateBatchFunc             func(ctx context.Context, input production.CreateBatchInput) (domain.Batch, error)
	CreateWorkPlanFunc          func(ctx context.Context, input production.CreateWorkPlanInput) (domain.WorkPlan, error)
	GetBatchFunc                func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	GetProductionResultFunc     func(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error)
	GetWorkPlanFunc             func(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error)
	ListMaterialUsageFunc       func(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error)
	ListProcessEventsFunc       func(ctx context.Context, workPlanID uuid.UUID, filter domain.ProcessEventFilter) ([]domain.ProcessEvent, error)
	LogProcessEventFunc         func(ctx context.Context, input production.LogProcessEventInput) (domain.ProcessEvent, error)
	ReplaceMaterialUsageFunc    func(ctx context.Context, input production.ReplaceMaterialUsageInput) ([]domain.MaterialUsage, error)
	ReplaceProductionResultFunc func(ctx context.Context, input production.ReplaceProductionResultInput) (domain.ProductionResult, error)

	calls struct {
		CreateBatch []struct {
			Ctx   context.Context
			Input production.CreateBatchInput
		}
		CreateWorkPlan []struct {
			Ctx   context.Context
			Input production.CreateWorkPlanInput
		}
		GetBatch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetProductionResult []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		GetWorkPlan []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListMaterialUsage []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		ListProcessEvents []struct {
			Ctx        context.Context
			WorkPlanID uuid.UUID
			Filter     domain.ProcessEventFilter
		}
		LogProcessEvent []struct {
			Ctx   context.Context
			Input production.LogProcessEventInput
		}
		ReplaceMaterialUsage []struct {
			Ctx   context.Context
			Input production.ReplaceMaterialUsageInput
		}
		ReplaceProductionResult []struct {
			Ctx   context.Context
			Input production.ReplaceProductionResultInput
		}
	}
	lockCreateBatch             sync.RWMutex
	lockCreateWorkPlan          sync.RWMutex
	lockGetBatch                sync.RWMutex
	lockGetProductionResult     sync.RWMutex
	lockGetWorkPlan             sync.RWMutex
	lockListMaterialUsage       sync.RWMutex
	lockListProcessEvents       sync.RWMutex
	lockLogProcessEvent         sync.RWMutex
	lockReplaceMaterialUsage    sync.RWMutex
	lockReplaceProductionResult sync.RWMutex
}

func (mock *productionServiceMock) CreateBatch(ctx context.Context, input production.CreateBatchInput) (domain.Batch, error) {
	if mock.CreateBatchFunc == nil {
		panic("productionServiceMock.CreateBatchFunc: method is nil but productionService.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.CreateBatchInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, input)
}

func (mock *productionServiceMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Input production.CreateBatchInput
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *productionServiceMock) CreateWorkPlan(ctx context.Context, input production.CreateWorkPlanInput) (domain.WorkPlan, error) {
	if mock.CreateWorkPlanFunc == nil {
		panic("productionServiceMock.CreateWorkPlanFunc: method is nil but productionService.CreateWorkPlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.CreateWorkPlanInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateWorkPlan.Lock()
	mock.calls.CreateWorkPlan = append(mock.calls.CreateWorkPlan, callInfo)
	mock.lockCreateWorkPlan.Unlock()
	return mock.CreateWorkPlanFunc(ctx, input)
}

func (mock *productionServiceMock) CreateWorkPlanCalls() []struct {
	Ctx   context.Context
	Input production.CreateWorkPlanInput
} {
	mock.lockCreateWorkPlan.RLock()
	calls := mock.calls.CreateWorkPlan
	mock.lockCreateWorkPlan.RUnlock()
	return calls
}

func (mock *productionServiceMock) GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if mock.GetBatchFunc == nil {
		panic("productionServiceMock.GetBatchFunc: method is nil but productionService.GetBatch was just called")
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

func (mock *productionServiceMock) GetBatchCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetBatch.RLock()
	calls := mock.calls.GetBatch
	mock.lockGetBatch.RUnlock()
	return calls
}

func (mock *productionServiceMock) GetProductionResult(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error) {
	if mock.GetProductionResultFunc == nil {
		panic("productionServiceMock.GetProductionResultFunc: method is nil but productionService.GetProductionResult was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockGetProductionResult.Lock()
	mock.calls.GetProductionResult = append(mock.calls.GetProductionResult, callInfo)
	mock.lockGetProductionResult.Unlock()
	return mock.GetProductionResultFunc(ctx, batchID)
}

func (mock *productionServiceMock) GetProductionResultCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockGetProductionResult.RLock()
	calls := mock.calls.GetProductionResult
	mock.lockGetProductionResult.RUnlock()
	return calls
}

func (mock *productionServiceMock) GetWorkPlan(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error) {
	if mock.GetWorkPlanFunc == nil {
		panic("productionServiceMock.GetWorkPlanFunc: method is nil but productionService.GetWorkPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetWorkPlan.Lock()
	mock.calls.GetWorkPlan = append(mock.calls.GetWorkPlan, callInfo)
	mock.lockGetWorkPlan.Unlock()
	return mock.GetWorkPlanFunc(ctx, id)
}

func (mock *productionServiceMock) GetWorkPlanCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetWorkPlan.RLock()
	calls := mock.calls.GetWorkPlan
	mock.lockGetWorkPlan.RUnlock()
	return calls
}

func (mock *productionServiceMock) ListMaterialUsage(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error) {
	if mock.ListMaterialUsageFunc == nil {
		panic("productionServiceMock.ListMaterialUsageFunc: method is nil but productionService.ListMaterialUsage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockListMaterialUsage.Lock()
	mock.calls.ListMaterialUsage = append(mock.calls.ListMaterialUsage, callInfo)
	mock.lockListMaterialUsage.Unlock()
	return mock.ListMaterialUsageFunc(ctx, batchID)
}

func (mock *productionServiceMock) ListMaterialUsageCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockListMaterialUsage.RLock()
	calls := mock.calls.ListMaterialUsage
	mock.lockListMaterialUsage.RUnlock()
	return calls
}

func (mock *productionServiceMock) ListProcessEvents(ctx context.Context, workPlanID uuid.UUID, filter domain.ProcessEventFilter) ([]domain.ProcessEvent, error) {
	if mock.ListProcessEventsFunc == nil {
		panic("productionServiceMock.ListProcessEventsFunc: method is nil but productionService.ListProcessEvents was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WorkPlanID uuid.UUID
		Filter     domain.ProcessEventFilter
	}{Ctx: ctx, WorkPlanID: workPlanID, Filter: filter}
	mock.lockListProcessEvents.Lock()
	mock.calls.ListProcessEvents = append(mock.calls.ListProcessEvents, callInfo)
	mock.lockListProcessEvents.Unlock()
	return mock.ListProcessEventsFunc(ctx, workPlanID, filter)
}

func (mock *productionServiceMock) ListProcessEventsCalls() []struct {
	Ctx        context.Context
	WorkPlanID uuid.UUID
	Filter     domain.ProcessEventFilter
} {
	mock.lockListProcessEvents.RLock()
	calls := mock.calls.ListProcessEvents
	mock.lockListProcessEvents.RUnlock()
	return calls
}

func (mock *productionServiceMock) LogProcessEvent(ctx context.Context, input production.LogProcessEventInput) (domain.ProcessEvent, error) {
	if mock.LogProcessEventFunc == nil {
		panic("productionServiceMock.LogProcessEventFunc: method is nil but productionService.LogProcessEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.LogProcessEventInput
	}{Ctx: ctx, Input: input}
	mock.lockLogProcessEvent.Lock()
	mock.calls.LogProcessEvent = append(mock.calls.LogProcessEvent, callInfo)
	mock.lockLogProcessEvent.Unlock()
	return mock.LogProcessEventFunc(ctx, input)
}

func (mock *productionServiceMock) LogProcessEventCalls() []struct {
	Ctx   context.Context
	Input production.LogProcessEventInput
} {
	mock.lockLogProcessEvent.RLock()
	calls := mock.calls.LogProcessEvent
	mock.lockLogProcessEvent.RUnlock()
	return calls
}

func (mock *productionServiceMock) ReplaceMaterialUsage(ctx context.Context, input production.ReplaceMaterialUsageInput) ([]domain.MaterialUsage, error) {
	if mock.ReplaceMaterialUsageFunc == nil {
		panic("productionServiceMock.ReplaceMaterialUsageFunc: method is nil but productionService.ReplaceMaterialUsage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.ReplaceMaterialUsageInput
	}{Ctx: ctx, Input: input}
	mock.lockReplaceMaterialUsage.Lock()
	mock.calls.ReplaceMaterialUsage = append(mock.calls.ReplaceMaterialUsage, callInfo)
	mock.lockReplaceMaterialUsage.Unlock()
	return mock.ReplaceMaterialUsageFunc(ctx, input)
}

func (mock *productionServiceMock) ReplaceMaterialUsageCalls() []struct {
	Ctx   context.Context
	Input production.ReplaceMaterialUsageInput
} {
	mock.lockReplaceMaterialUsage.RLock()
	calls := mock.calls.ReplaceMaterialUsage
	mock.lockReplaceMaterialUsage.RUnlock()
	return calls
}

func (mock *productionServiceMock) ReplaceProductionResult(ctx context.Context, input production.ReplaceProductionResultInput) (domain.ProductionResult, error) {
	if mock.ReplaceProductionResultFunc == nil {
		panic("productionServiceMock.ReplaceProductionResultFunc: method is nil but productionService.ReplaceProductionResult was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.ReplaceProductionResultInput
	}{Ctx: ctx, Input: input}
	mock.lockReplaceProductionResult.Lock()
	mock.calls.ReplaceProductionResult = append(mock.calls.ReplaceProductionResult, callInfo)
	mock.lockReplaceProductionResult.Unlock()
	return mock.ReplaceProductionResultFunc(ctx, input)
}

func (mock *productionServiceMock) ReplaceProductionResultCalls() []struct {
	Ctx   context.Context
	Input production.ReplaceProductionResultInput
} {
	mock.lockReplaceProductionResult.RLock()
	calls := mock.calls.ReplaceProductionResult
	mock.lockReplaceProductionResult.RUnlock()
	return calls
}
