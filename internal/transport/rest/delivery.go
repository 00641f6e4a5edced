package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/internal/service/delivery"
)

type deliveryService interface {
	Submit(ctx context.Context, input delivery.SubmitInput) (*domain.Message, error)
}

// DeliveryHandler accepts anonymous messages.
type DeliveryHandler struct {
	svc deliveryService
	log *slog.Logger
}

// NewDeliveryHandler creates a DeliveryHandler.
func NewDeliveryHandler(svc deliveryService, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{svc: svc, log: logger.With("handler", "delivery")}
}

type sendMessageRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// Send handles POST /api/send-message. The username field may hold any
// target form a sender can type, including a profile link.
func (h *DeliveryHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.Submit(r.Context(), delivery.SubmitInput{
		Target:  req.Username,
		Content: req.Content,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "Message sent successfully")
}
