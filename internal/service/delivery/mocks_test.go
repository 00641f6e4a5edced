package delivery

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var (
	_ accountRepo = &accountRepoMock{}
	_ messageRepo = &messageRepoMock{}
	_ txManager   = &txManagerMock{}
)

type accountRepoMock struct {
	GetByHandleFunc func(ctx context.Context, handle string) (*domain.Account, error)

	calls struct {
		GetByHandle []struct {
			Ctx    context.Context
			Handle string
		}
	}
	lockGetByHandle sync.RWMutex
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

type messageRepoMock struct {
	CreateFunc func(ctx context.Context, msg domain.Message) (*domain.Message, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Msg domain.Message
		}
	}
	lockCreate sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.Message
	}{Ctx: ctx, Msg: msg}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, msg)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Msg domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
