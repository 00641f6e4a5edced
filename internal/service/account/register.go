package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// Register creates an account that accepts messages from the start.
// Handles may repeat; emails may not (ErrAlreadyExists).
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	now := s.clock.Now().UTC()
	acc, err := s.accounts.Create(ctx, domain.Account{
		ID:                uuid.New(),
		Handle:            input.Username,
		Email:             input.Email,
		PasswordHash:      string(hash),
		AcceptingMessages: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", acc.ID.String()),
		slog.String("handle", acc.Handle))

	return acc, nil
}
