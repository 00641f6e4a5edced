package inbox

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var (
	_ sessionResolver = &sessionResolverMock{}
	_ messageRepo     = &messageRepoMock{}
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

type messageRepoMock struct {
	ListByAccountFunc func(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error)
	DeleteFunc        func(ctx context.Context, accountID, messageID uuid.UUID) (bool, error)

	calls struct {
		ListByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Delete []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			MessageID uuid.UUID
		}
	}
	lockListByAccount sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *messageRepoMock) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error) {
	if mock.ListByAccountFunc == nil {
		panic("messageRepoMock.ListByAccountFunc: method is nil but messageRepo.ListByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockListByAccount.Lock()
	mock.calls.ListByAccount = append(mock.calls.ListByAccount, callInfo)
	mock.lockListByAccount.Unlock()
	return mock.ListByAccountFunc(ctx, accountID)
}

func (mock *messageRepoMock) ListByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockListByAccount.RLock()
	calls := mock.calls.ListByAccount
	mock.lockListByAccount.RUnlock()
	return calls
}

func (mock *messageRepoMock) Delete(ctx context.Context, accountID, messageID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("messageRepoMock.DeleteFunc: method is nil but messageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		MessageID uuid.UUID
	}{Ctx: ctx, AccountID: accountID, MessageID: messageID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, accountID, messageID)
}

func (mock *messageRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	MessageID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
