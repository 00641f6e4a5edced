package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/internal/service/account"
	"github.com/heartmarshall/truefeedback-backend/internal/service/delivery"
	"github.com/heartmarshall/truefeedback-backend/internal/service/inbox"
)

var (
	_ accountService    = &accountServiceMock{}
	_ preferenceService = &preferenceServiceMock{}
	_ inboxService      = &inboxServiceMock{}
	_ recipientService  = &recipientServiceMock{}
	_ deliveryService   = &deliveryServiceMock{}
)

type accountServiceMock struct {
	RegisterFunc func(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	LoginFunc    func(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input account.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input account.LoginInput
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
}

func (mock *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input account.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input account.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

type preferenceServiceMock struct {
	GetFunc func(ctx context.Context) (bool, error)
	SetFunc func(ctx context.Context, accept bool) (bool, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Set []struct {
			Ctx    context.Context
			Accept bool
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *preferenceServiceMock) Get(ctx context.Context) (bool, error) {
	if mock.GetFunc == nil {
		panic("preferenceServiceMock.GetFunc: method is nil but preferenceService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *preferenceServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *preferenceServiceMock) Set(ctx context.Context, accept bool) (bool, error) {
	if mock.SetFunc == nil {
		panic("preferenceServiceMock.SetFunc: method is nil but preferenceService.Set was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Accept bool
	}{Ctx: ctx, Accept: accept}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, accept)
}

func (mock *preferenceServiceMock) SetCalls() []struct {
	Ctx    context.Context
	Accept bool
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

type inboxServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Message, error)
	RemoveFunc func(ctx context.Context, input inbox.RemoveInput) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Remove []struct {
			Ctx   context.Context
			Input inbox.RemoveInput
		}
	}
	lockList   sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *inboxServiceMock) List(ctx context.Context) ([]domain.Message, error) {
	if mock.ListFunc == nil {
		panic("inboxServiceMock.ListFunc: method is nil but inboxService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *inboxServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inboxServiceMock) Remove(ctx context.Context, input inbox.RemoveInput) error {
	if mock.RemoveFunc == nil {
		panic("inboxServiceMock.RemoveFunc: method is nil but inboxService.Remove was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inbox.RemoveInput
	}{Ctx: ctx, Input: input}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, input)
}

func (mock *inboxServiceMock) RemoveCalls() []struct {
	Ctx   context.Context
	Input inbox.RemoveInput
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

type recipientServiceMock struct {
	SearchFunc func(ctx context.Context, q string) ([]domain.SuggestionCandidate, error)

	calls struct {
		Search []struct {
			Ctx context.Context
			Q   string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *recipientServiceMock) Search(ctx context.Context, q string) ([]domain.SuggestionCandidate, error) {
	if mock.SearchFunc == nil {
		panic("recipientServiceMock.SearchFunc: method is nil but recipientService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   string
	}{Ctx: ctx, Q: q}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q)
}

func (mock *recipientServiceMock) SearchCalls() []struct {
	Ctx context.Context
	Q   string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

type deliveryServiceMock struct {
	SubmitFunc func(ctx context.Context, input delivery.SubmitInput) (*domain.Message, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input delivery.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *deliveryServiceMock) Submit(ctx context.Context, input delivery.SubmitInput) (*domain.Message, error) {
	if mock.SubmitFunc == nil {
		panic("deliveryServiceMock.SubmitFunc: method is nil but deliveryService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input delivery.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *deliveryServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input delivery.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
