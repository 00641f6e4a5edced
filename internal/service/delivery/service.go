// Package delivery accepts anonymous messages for a recipient.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type accountRepo interface {
	GetByHandle(ctx context.Context, handle string) (*domain.Account, error)
}

type messageRepo interface {
	Create(ctx context.Context, msg domain.Message) (*domain.Message, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements message submission.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	messages messageRepo
	tx       txManager
	clock    clockwork.Clock
	maxLen   int
}

// NewService creates a new delivery service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	messages messageRepo,
	tx txManager,
	cfg config.MessagesConfig,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		log:      logger.With("service", "delivery"),
		accounts: accounts,
		messages: messages,
		tx:       tx,
		clock:    clock,
		maxLen:   cfg.MaxContentLength,
	}
}

// SubmitInput is what an anonymous sender provides.
type SubmitInput struct {
	// Target is free text naming the recipient: a handle, @handle,
	// u/handle or a profile URL.
	Target  string
	Content string
}

// Submit delivers one message. Checks run in order and stop at the first
// failure: target resolution (ErrInvalidTarget), recipient lookup
// (ErrRecipientNotFound), acceptance (ErrNotAccepting), content
// (ErrInvalidContent). Nothing is stored unless every check passes.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Message, error) {
	handle, ok := domain.ResolveRecipient(input.Target)
	if !ok {
		return nil, domain.ErrInvalidTarget
	}

	var delivered *domain.Message

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		acc, err := s.accounts.GetByHandle(txCtx, handle)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrRecipientNotFound
			}
			return fmt.Errorf("lookup recipient: %w", err)
		}

		if !acc.AcceptingMessages {
			return domain.ErrNotAccepting
		}

		if err := domain.ValidateContent(input.Content, s.maxLen); err != nil {
			return err
		}

		msg, err := s.messages.Create(txCtx, domain.Message{
			ID:        uuid.New(),
			AccountID: acc.ID,
			Content:   input.Content,
			CreatedAt: s.clock.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append message: %w", err)
		}

		delivered = msg
		return nil
	})
	if err != nil {
		if isRejection(err) {
			s.log.InfoContext(ctx, "message rejected",
				slog.String("handle", handle),
				slog.String("reason", err.Error()),
			)
			return nil, err
		}
		return nil, fmt.Errorf("delivery.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "message delivered",
		slog.String("account_id", delivered.AccountID.String()),
		slog.String("message_id", delivered.ID.String()),
	)

	return delivered, nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrRecipientNotFound) ||
		errors.Is(err, domain.ErrNotAccepting) ||
		errors.Is(err, domain.ErrInvalidContent)
}
