package preference

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var (
	_ sessionResolver = &sessionResolverMock{}
	_ accountRepo     = &accountRepoMock{}
)

type sessionResolverMock struct {
	CurrentFunc func(ctx context.Context) (*domain.Account, error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
	}
	lockCurrent sync.RWMutex
}

func (mock *sessionResolverMock) Current(ctx context.Context) (*domain.Account, error) {
	if mock.CurrentFunc == nil {
		panic("sessionResolverMock.CurrentFunc: method is nil but sessionResolver.Current was just called")
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *sessionResolverMock) CurrentCalls() []struct{ Ctx context.Context } {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

type accountRepoMock struct {
	SetAcceptingMessagesFunc func(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error)

	calls struct {
		SetAcceptingMessages []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Accepting bool
		}
	}
	lockSetAcceptingMessages sync.RWMutex
}

func (mock *accountRepoMock) SetAcceptingMessages(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error) {
	if mock.SetAcceptingMessagesFunc == nil {
		panic("accountRepoMock.SetAcceptingMessagesFunc: method is nil but accountRepo.SetAcceptingMessages was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Accepting bool
	}{Ctx: ctx, ID: id, Accepting: accepting}
	mock.lockSetAcceptingMessages.Lock()
	mock.calls.SetAcceptingMessages = append(mock.calls.SetAcceptingMessages, callInfo)
	mock.lockSetAcceptingMessages.Unlock()
	return mock.SetAcceptingMessagesFunc(ctx, id, accepting)
}

func (mock *accountRepoMock) SetAcceptingMessagesCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Accepting bool
} {
	mock.lockSetAcceptingMessages.RLock()
	calls := mock.calls.SetAcceptingMessages
	mock.lockSetAcceptingMessages.RUnlock()
	return calls
}
