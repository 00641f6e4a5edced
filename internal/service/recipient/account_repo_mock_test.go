package recipient

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	SearchByHandlePrefixFunc func(ctx context.Context, prefix string, limit int) ([]domain.Account, error)

	calls struct {
		SearchByHandlePrefix []struct {
			Ctx    context.Context
			Prefix string
			Limit  int
		}
	}
	lockSearchByHandlePrefix sync.RWMutex
}

func (mock *accountRepoMock) SearchByHandlePrefix(ctx context.Context, prefix string, limit int) ([]domain.Account, error) {
	if mock.SearchByHandlePrefixFunc == nil {
		panic("accountRepoMock.SearchByHandlePrefixFunc: method is nil but accountRepo.SearchByHandlePrefix was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
		Limit  int
	}{Ctx: ctx, Prefix: prefix, Limit: limit}
	mock.lockSearchByHandlePrefix.Lock()
	mock.calls.SearchByHandlePrefix = append(mock.calls.SearchByHandlePrefix, callInfo)
	mock.lockSearchByHandlePrefix.Unlock()
	return mock.SearchByHandlePrefixFunc(ctx, prefix, limit)
}

func (mock *accountRepoMock) SearchByHandlePrefixCalls() []struct {
	Ctx    context.Context
	Prefix string
	Limit  int
} {
	mock.lockSearchByHandlePrefix.RLock()
	calls := mock.calls.SearchByHandlePrefix
	mock.lockSearchByHandlePrefix.RUnlock()
	return calls
}
