package suggest

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var _ Searcher = &SearcherMock{}

type SearcherMock struct {
	SearchUsersFunc func(ctx context.Context, q string) ([]domain.SuggestionCandidate, error)

	calls struct {
		SearchUsers []struct {
			Ctx context.Context
			Q   string
		}
	}
	lockSearchUsers sync.RWMutex
}

func (mock *SearcherMock) SearchUsers(ctx context.Context, q string) ([]domain.SuggestionCandidate, error) {
	if mock.SearchUsersFunc == nil {
		panic("SearcherMock.SearchUsersFunc: method is nil but Searcher.SearchUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{Ctx: ctx, Q: q}
	mock.lockSearchUsers.Lock()
	mock.calls.SearchUsers = append(mock.calls.SearchUsers, callInfo)
	mock.lockSearchUsers.Unlock()
	return mock.SearchUsersFunc(ctx, q)
}

func (mock *SearcherMock) SearchUsersCalls() []struct {
	Ctx context.Context
	Q   string
} {
	mock.lockSearchUsers.RLock()
	calls := mock.calls.SearchUsers
	mock.lockSearchUsers.RUnlock()
	return calls
}
