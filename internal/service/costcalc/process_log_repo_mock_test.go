package costcalc

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"sync"
)

var _ processLogRepo = &processLogRepoMock{}

type processLogRepoMock struct {
	ListFunc func(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error)

	calls struct {
		List []struct {
			Ctx        context.Context
			WorkPlanID uuid.UUID
			F          domain.ProcessEventFilter
		}
	}
	lockList sync.RWMutex
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
