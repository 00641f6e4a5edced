package inbox

import (
	"context"
	"fmt"
	"log/slog"
)

// Remove deletes a message from the signed-in account's inbox.
// Removing a message that is already gone succeeds.
func (s *Service) Remove(ctx context.Context, input RemoveInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	acc, err := s.session.Current(ctx)
	if err != nil {
		return fmt.Errorf("inbox.Remove: %w", err)
	}

	removed, err := s.messages.Delete(ctx, acc.ID, input.MessageID)
	if err != nil {
		return fmt.Errorf("inbox.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "message removed",
		slog.String("account_id", acc.ID.String()),
		slog.String("message_id", input.MessageID.String()),
		slog.Bool("existed", removed),
	)

	return nil
}
