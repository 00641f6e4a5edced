// Package session turns the caller's session identity into an account.
//
// The identity provider may hand over a stale or missing account ID, so the
// lookup falls back to the handle. Each step reports which key matched.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/pkg/ctxutil"
)

// Outcome tells which identity component located the account.
type Outcome int

const (
	NotFound Outcome = iota
	ByID
	ByHandle
)

func (o Outcome) String() string {
	switch o {
	case ByID:
		return "by_id"
	case ByHandle:
		return "by_handle"
	default:
		return "not_found"
	}
}

// Result is the outcome of resolving a session identity.
// Account is nil when Outcome is NotFound.
type Result struct {
	Outcome Outcome
	Account *domain.Account
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Account, error)
}

// Service resolves session identities against the account store.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
}

// NewService creates a new session service.
func NewService(logger *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		accounts: accounts,
	}
}

// Resolve looks the identity up by account ID, then by handle.
// Neither matching is a NotFound result, not an error; errors are
// reserved for store failures.
func (s *Service) Resolve(ctx context.Context, identity domain.SessionIdentity) (Result, error) {
	if identity.AccountID != uuid.Nil {
		acc, err := s.accounts.GetByID(ctx, identity.AccountID)
		switch {
		case err == nil:
			return Result{Outcome: ByID, Account: acc}, nil
		case !errors.Is(err, domain.ErrNotFound):
			return Result{}, fmt.Errorf("session.Resolve by id: %w", err)
		}
	}

	if identity.Handle != "" {
		acc, err := s.accounts.GetByHandle(ctx, identity.Handle)
		switch {
		case err == nil:
			if identity.AccountID != uuid.Nil {
				s.log.WarnContext(ctx, "stale session account id, resolved by handle",
					slog.String("account_id", identity.AccountID.String()),
					slog.String("handle", identity.Handle),
				)
			}
			return Result{Outcome: ByHandle, Account: acc}, nil
		case !errors.Is(err, domain.ErrNotFound):
			return Result{}, fmt.Errorf("session.Resolve by handle: %w", err)
		}
	}

	return Result{Outcome: NotFound}, nil
}

// Current resolves the identity carried on ctx.
// Returns ErrUnauthorized when ctx has no identity and ErrNotFound when
// the identity matches no account.
func (s *Service) Current(ctx context.Context) (*domain.Account, error) {
	identity := IdentityFromCtx(ctx)
	if identity.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if res.Outcome == NotFound {
		return nil, fmt.Errorf("session account: %w", domain.ErrNotFound)
	}

	return res.Account, nil
}

// IdentityFromCtx collects the session identity stored by the auth middleware.
func IdentityFromCtx(ctx context.Context) domain.SessionIdentity {
	id, _ := ctxutil.AccountIDFromCtx(ctx)
	handle, _ := ctxutil.HandleFromCtx(ctx)
	return domain.SessionIdentity{AccountID: id, Handle: handle}
}
