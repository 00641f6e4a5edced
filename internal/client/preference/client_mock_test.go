package preference

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
)

var _ Client = &ClientMock{}

type ClientMock struct {
	AcceptMessagesFunc    func(ctx context.Context) (bool, error)
	SetAcceptMessagesFunc func(ctx context.Context, accept bool) (api.PreferenceAck, error)

	calls struct {
		AcceptMessages []struct {
			Ctx context.Context
		}
		SetAcceptMessages []struct {
			Ctx    context.Context
			Accept bool
		}
	}
	lockAcceptMessages    sync.RWMutex
	lockSetAcceptMessages sync.RWMutex
}

func (mock *ClientMock) AcceptMessages(ctx context.Context) (bool, error) {
	if mock.AcceptMessagesFunc == nil {
		panic("ClientMock.AcceptMessagesFunc: method is nil but Client.AcceptMessages was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcceptMessages.Lock()
	mock.calls.AcceptMessages = append(mock.calls.AcceptMessages, callInfo)
	mock.lockAcceptMessages.Unlock()
	return mock.AcceptMessagesFunc(ctx)
}

func (mock *ClientMock) AcceptMessagesCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcceptMessages.RLock()
	calls := mock.calls.AcceptMessages
	mock.lockAcceptMessages.RUnlock()
	return calls
}

func (mock *ClientMock) SetAcceptMessages(ctx context.Context, accept bool) (api.PreferenceAck, error) {
	if mock.SetAcceptMessagesFunc == nil {
		panic("ClientMock.SetAcceptMessagesFunc: method is nil but Client.SetAcceptMessages was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Accept bool
	}{Ctx: ctx, Accept: accept}
	mock.lockSetAcceptMessages.Lock()
	mock.calls.SetAcceptMessages = append(mock.calls.SetAcceptMessages, callInfo)
	mock.lockSetAcceptMessages.Unlock()
	return mock.SetAcceptMessagesFunc(ctx, accept)
}

func (mock *ClientMock) SetAcceptMessagesCalls() []struct {
	Ctx    context.Context
	Accept bool
} {
	mock.lockSetAcceptMessages.RLock()
	calls := mock.calls.SetAcceptMessages
	mock.lockSetAcceptMessages.RUnlock()
	return calls
}
