package inbox

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var _ Client = &ClientMock{}

type ClientMock struct {
	MessagesFunc      func(ctx context.Context) ([]domain.Message, error)
	DeleteMessageFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Messages []struct {
			Ctx context.Context
		}
		DeleteMessage []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockMessages      sync.RWMutex
	lockDeleteMessage sync.RWMutex
}

func (mock *ClientMock) Messages(ctx context.Context) ([]domain.Message, error) {
	if mock.MessagesFunc == nil {
		panic("ClientMock.MessagesFunc: method is nil but Client.Messages was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMessages.Lock()
	mock.calls.Messages = append(mock.calls.Messages, callInfo)
	mock.lockMessages.Unlock()
	return mock.MessagesFunc(ctx)
}

func (mock *ClientMock) MessagesCalls() []struct {
	Ctx context.Context
} {
	mock.lockMessages.RLock()
	calls := mock.calls.Messages
	mock.lockMessages.RUnlock()
	return calls
}

func (mock *ClientMock) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteMessageFunc == nil {
		panic("ClientMock.DeleteMessageFunc: method is nil but Client.DeleteMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteMessage.Lock()
	mock.calls.DeleteMessage = append(mock.calls.DeleteMessage, callInfo)
	mock.lockDeleteMessage.Unlock()
	return mock.DeleteMessageFunc(ctx, id)
}

func (mock *ClientMock) DeleteMessageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteMessage.RLock()
	calls := mock.calls.DeleteMessage
	mock.lockDeleteMessage.RUnlock()
	return calls
}
