// Package preference reads and updates whether the signed-in account
// accepts new messages.
package preference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type sessionResolver interface {
	Current(ctx context.Context) (*domain.Account, error)
}

type accountRepo interface {
	SetAcceptingMessages(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error)
}

// Service implements the server side of the acceptance preference.
type Service struct {
	log      *slog.Logger
	session  sessionResolver
	accounts accountRepo
}

// NewService creates a new preference service.
func NewService(logger *slog.Logger, session sessionResolver, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "preference"),
		session:  session,
		accounts: accounts,
	}
}

// Get returns the signed-in account's acceptance flag.
func (s *Service) Get(ctx context.Context) (bool, error) {
	acc, err := s.session.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("preference.Get: %w", err)
	}
	return acc.AcceptingMessages, nil
}

// Set stores accept as the signed-in account's acceptance flag and returns
// the value the store confirmed.
func (s *Service) Set(ctx context.Context, accept bool) (bool, error) {
	acc, err := s.session.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("preference.Set: %w", err)
	}

	updated, err := s.accounts.SetAcceptingMessages(ctx, acc.ID, accept)
	if err != nil {
		return false, fmt.Errorf("preference.Set: %w", err)
	}

	s.log.InfoContext(ctx, "acceptance preference updated",
		slog.String("account_id", acc.ID.String()),
		slog.Bool("accepting_messages", updated.AcceptingMessages),
	)

	return updated.AcceptingMessages, nil
}
