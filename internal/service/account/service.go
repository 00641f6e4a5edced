// Package account implements registration and password sign-in.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, acc domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, handle string) (string, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	jwt      jwtManager
	cfg      config.AuthConfig
	clock    clockwork.Clock
}

// NewService creates a new account service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		jwt:      jwt,
		cfg:      cfg,
		clock:    clock,
	}
}
