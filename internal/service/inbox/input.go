package inbox

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// RemoveInput identifies the message to remove from the signed-in inbox.
type RemoveInput struct {
	MessageID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveInput) Validate() error {
	if i.MessageID == uuid.Nil {
		return domain.NewValidationError("message_id", "required")
	}
	return nil
}
