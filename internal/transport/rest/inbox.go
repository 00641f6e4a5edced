package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/internal/service/inbox"
)

type inboxService interface {
	List(ctx context.Context) ([]domain.Message, error)
	Remove(ctx context.Context, input inbox.RemoveInput) error
}

// InboxHandler serves the signed-in account's messages.
type InboxHandler struct {
	svc inboxService
	log *slog.Logger
}

// NewInboxHandler creates an InboxHandler.
func NewInboxHandler(svc inboxService, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{svc: svc, log: logger.With("handler", "inbox")}
}

type messageResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type messagesResponse struct {
	Success  bool              `json:"success"`
	Messages []messageResponse `json:"messages"`
}

// List handles GET /api/get-messages. Messages come newest first.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messagesResponse{
		Success: true,
		Messages: lo.Map(msgs, func(m domain.Message, _ int) messageResponse {
			return messageResponse{ID: m.ID.String(), Content: m.Content, CreatedAt: m.CreatedAt}
		}),
	})
}

// Delete handles DELETE /api/delete-message/{id}.
func (h *InboxHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "message_id: invalid")
		return
	}

	if err := h.svc.Remove(r.Context(), inbox.RemoveInput{MessageID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "Message deleted")
}
