package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// LoginResult is returned by a successful sign-in.
type LoginResult struct {
	AccessToken string
	Account     *domain.Account
}

// Login authenticates with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(acc.ID, acc.Handle)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account signed in",
		slog.String("account_id", acc.ID.String()))

	return &LoginResult{AccessToken: token, Account: acc}, nil
}
