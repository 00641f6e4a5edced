// Package preference holds the signed-in account's "accepting messages"
// switch. The exposed value only ever changes to what the server confirmed.
package preference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
	"github.com/heartmarshall/truefeedback-backend/internal/client/notice"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// State of the switch as shown to the user.
type State int

const (
	StateUnknown State = iota
	StateLoading
	StateOn
	StateOff
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateOn:
		return "on"
	case StateOff:
		return "off"
	default:
		return "unknown"
	}
}

func stateOf(accepting bool) State {
	if accepting {
		return StateOn
	}
	return StateOff
}

var (
	// ErrBusy is returned by Toggle while a load or another toggle is in flight.
	ErrBusy = errors.New("preference: request already in flight")
	// ErrNotLoaded is returned by Toggle before any value was confirmed.
	ErrNotLoaded = errors.New("preference: value not loaded")
)

// Client is the server side of the preference.
type Client interface {
	AcceptMessages(ctx context.Context) (bool, error)
	SetAcceptMessages(ctx context.Context, accept bool) (api.PreferenceAck, error)
}

// Store serializes reads and flips of the preference.
type Store struct {
	client   Client
	notifier notice.Notifier
	log      *slog.Logger
	onChange func(State)

	mu        sync.Mutex
	confirmed State
	loading   bool
	toggling  bool
}

// Option configures a Store.
type Option func(*Store)

// WithOnChange registers a listener called after every visible state change.
func WithOnChange(fn func(State)) Option { return func(s *Store) { s.onChange = fn } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.log = l } }

// NewStore creates a Store in StateUnknown.
func NewStore(client Client, notifier notice.Notifier, opts ...Option) *Store {
	s := &Store{
		client:   client,
		notifier: notice.OrDiscard(notifier),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "preference")
	return s
}

// State returns what the switch shows right now.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Busy reports whether the control should be disabled.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading || s.toggling
}

func (s *Store) stateLocked() State {
	if s.loading {
		return StateLoading
	}
	return s.confirmed
}

// Load fetches the preference. On failure the previous state is restored and
// a notice is shown, except for an unauthenticated session which the caller
// renders as a blocked view.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || s.toggling {
		s.mu.Unlock()
		return ErrBusy
	}
	s.loading = true
	s.mu.Unlock()
	s.changed()

	accepting, err := s.client.AcceptMessages(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.confirmed = stateOf(accepting)
	}
	s.mu.Unlock()
	s.changed()

	if err != nil {
		s.fail(ctx, err, "Failed to fetch message settings")
		return fmt.Errorf("preference.Load: %w", err)
	}
	return nil
}

// Toggle asks the server to flip the preference and applies the value it
// confirms. Only one toggle runs at a time.
func (s *Store) Toggle(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.loading || s.toggling {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrBusy
	}
	if s.confirmed == StateUnknown {
		s.mu.Unlock()
		return StateUnknown, ErrNotLoaded
	}
	s.toggling = true
	want := s.confirmed != StateOn
	s.mu.Unlock()

	ack, err := s.client.SetAcceptMessages(ctx, want)

	s.mu.Lock()
	s.toggling = false
	if err == nil {
		s.confirmed = stateOf(ack.Accepting)
	}
	st := s.confirmed
	s.mu.Unlock()

	if err != nil {
		s.fail(ctx, err, "Failed to update message settings")
		return st, fmt.Errorf("preference.Toggle: %w", err)
	}

	s.changed()
	title := ack.Message
	if title == "" {
		title = "Message acceptance status updated successfully"
	}
	s.notifier.Notify(notice.Notice{Title: title, Level: notice.LevelSuccess})
	return st, nil
}

func (s *Store) fail(ctx context.Context, err error, fallback string) {
	if errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	s.log.WarnContext(ctx, "preference request failed", slog.String("error", err.Error()))
	s.notifier.Notify(notice.Notice{
		Title:       "Error",
		Description: api.UserMessage(err, fallback),
		Level:       notice.LevelError,
	})
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange(s.State())
	}
}
