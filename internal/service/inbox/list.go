package inbox

import (
	"context"
	"fmt"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// List returns every message of the signed-in account, newest first.
// The order is enforced here regardless of what the store returns.
func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	acc, err := s.session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("inbox.List: %w", err)
	}

	msgs, err := s.messages.ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("inbox.List: %w", err)
	}

	return domain.SortByRecency(msgs), nil
}
