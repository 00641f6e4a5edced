// Package recipient serves handle-prefix lookups for sender suggestions.
package recipient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type accountRepo interface {
	SearchByHandlePrefix(ctx context.Context, prefix string, limit int) ([]domain.Account, error)
}

// Service implements recipient search.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	cfg      config.SearchConfig
}

// NewService creates a new recipient search service.
func NewService(logger *slog.Logger, accounts accountRepo, cfg config.SearchConfig) *Service {
	return &Service{
		log:      logger.With("service", "recipient"),
		accounts: accounts,
		cfg:      cfg,
	}
}

// Search returns candidates whose handle starts with q, case-insensitively,
// in store order. Queries shorter than the configured minimum return an
// empty list without touching the store.
func (s *Service) Search(ctx context.Context, q string) ([]domain.SuggestionCandidate, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < s.cfg.MinQueryLength {
		return []domain.SuggestionCandidate{}, nil
	}

	accounts, err := s.accounts.SearchByHandlePrefix(ctx, q, s.cfg.Limit)
	if err != nil {
		return nil, fmt.Errorf("recipient.Search: %w", err)
	}

	s.log.DebugContext(ctx, "recipient search",
		slog.String("query", q),
		slog.Int("results", len(accounts)),
	)

	return lo.Map(accounts, func(a domain.Account, _ int) domain.SuggestionCandidate {
		return a.Candidate()
	}), nil
}
