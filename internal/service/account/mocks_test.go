package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var (
	_ accountRepo = &accountRepoMock{}
	_ jwtManager  = &jwtManagerMock{}
)

type accountRepoMock struct {
	CreateFunc     func(ctx context.Context, acc domain.Account) (*domain.Account, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Account, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Acc domain.Account
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, acc domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc domain.Account
	}{Ctx: ctx, Acc: acc}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, acc)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Acc domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(accountID uuid.UUID, handle string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			AccountID uuid.UUID
			Handle    string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(accountID uuid.UUID, handle string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AccountID uuid.UUID
		Handle    string
	}{AccountID: accountID, Handle: handle}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(accountID, handle)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AccountID uuid.UUID
	Handle    string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
