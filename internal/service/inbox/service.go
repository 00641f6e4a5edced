// Package inbox is the recipient's view over their stored messages.
package inbox

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type sessionResolver interface {
	Current(ctx context.Context) (*domain.Account, error)
}

type messageRepo interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error)
	Delete(ctx context.Context, accountID, messageID uuid.UUID) (bool, error)
}

// Service provides inbox read and removal operations.
type Service struct {
	log      *slog.Logger
	session  sessionResolver
	messages messageRepo
}

// NewService creates a new inbox service.
func NewService(log *slog.Logger, session sessionResolver, messages messageRepo) *Service {
	return &Service{
		log:      log.With("service", "inbox"),
		session:  session,
		messages: messages,
	}
}
