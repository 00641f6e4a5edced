package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByHandleFunc func(ctx context.Context, handle string) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByHandle []struct {
			Ctx    context.Context
			Handle string
		}
	}
	lockGetByID     sync.RWMutex
	lockGetByHandle sync.RWMutex
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	if mock.GetByHandleFunc == nil {
		panic("accountRepoMock.GetByHandleFunc: method is nil but accountRepo.GetByHandle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockGetByHandle.Lock()
	mock.calls.GetByHandle = append(mock.calls.GetByHandle, callInfo)
	mock.lockGetByHandle.Unlock()
	return mock.GetByHandleFunc(ctx, handle)
}

func (mock *accountRepoMock) GetByHandleCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockGetByHandle.RLock()
	calls := mock.calls.GetByHandle
	mock.lockGetByHandle.RUnlock()
	return calls
}
