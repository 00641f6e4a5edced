package compose

import (
	"context"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

var (
	_ Sender      = &SenderMock{}
	_ Suggestions = &SuggestionsMock{}
)

type SenderMock struct {
	SendMessageFunc func(ctx context.Context, target, content string) (string, error)

	calls struct {
		SendMessage []struct {
			Ctx     context.Context
			Target  string
			Content string
		}
	}
	lockSendMessage sync.RWMutex
}

func (mock *SenderMock) SendMessage(ctx context.Context, target, content string) (string, error) {
	if mock.SendMessageFunc == nil {
		panic("SenderMock.SendMessageFunc: method is nil but Sender.SendMessage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Target  string
		Content string
	}{Ctx: ctx, Target: target, Content: content}
	mock.lockSendMessage.Lock()
	mock.calls.SendMessage = append(mock.calls.SendMessage, callInfo)
	mock.lockSendMessage.Unlock()
	return mock.SendMessageFunc(ctx, target, content)
}

func (mock *SenderMock) SendMessageCalls() []struct {
	Ctx     context.Context
	Target  string
	Content string
} {
	mock.lockSendMessage.RLock()
	calls := mock.calls.SendMessage
	mock.lockSendMessage.RUnlock()
	return calls
}

// SuggestionsMock records calls without needing per-method funcs.
type SuggestionsMock struct {
	mu       sync.Mutex
	inputs   []string
	selected []domain.SuggestionCandidate
	clears   int
}

func (mock *SuggestionsMock) Input(text string) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.inputs = append(mock.inputs, text)
}

func (mock *SuggestionsMock) Select(c domain.SuggestionCandidate) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.selected = append(mock.selected, c)
}

func (mock *SuggestionsMock) Clear() {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.clears++
}

func (mock *SuggestionsMock) Clears() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.clears
}
