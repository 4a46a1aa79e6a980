package production

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ processLogRepo = &processLogRepoMock{}

type processLogRepoMock struct {
	AppendFunc func(ctx context.Context, ev domain.ProcessEvent) (domain.ProcessEvent, error)
	ListFunc   func(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Ev  domain.ProcessEvent
		}
		List []struct {
			Ctx        context.Context
			WorkPlanID uuid.UUID
			F          domain.ProcessEventFilter
		}
	}
	lockAppend sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *processLogRepoMock) Append(ctx context.Context, ev domain.ProcessEvent) (domain.ProcessEvent, error) {
	if mock.AppendFunc == nil {
		panic("processLogRepoMock.AppendFunc: method is nil but processLogRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.ProcessEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *processLogRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Ev  domain.ProcessEvent
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *processLogRepoMock) List(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error) {
	if mock.ListFunc == nil {
		panic("processLogRepoMock.ListFunc: method is nil but processLogRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WorkPlanID uuid.UUID
		F          domain.ProcessEventFilter
	}{Ctx: ctx, WorkPlanID: workPlanID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, workPlanID, f)
}

func (mock *processLogRepoMock) ListCalls() []struct {
	Ctx        context.Context
	WorkPlanID uuid.UUID
	F          domain.ProcessEventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
