package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type preferenceService interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context, accept bool) (bool, error)
}

// PreferenceHandler serves the signed-in account's acceptance flag.
type PreferenceHandler struct {
	svc preferenceService
	log *slog.Logger
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc preferenceService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, log: logger.With("handler", "preference")}
}

type acceptMessagesRequest struct {
	AcceptMessages *bool `json:"acceptMessages"`
}

type acceptMessagesResponse struct {
	Success             bool   `json:"success"`
	IsAcceptingMessages bool   `json:"isAcceptingMessages"`
	Message             string `json:"message,omitempty"`
}

// Get handles GET /api/accept-messages.
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	accepting, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acceptMessagesResponse{Success: true, IsAcceptingMessages: accepting})
}

// Set handles POST /api/accept-messages. The response carries the stored value.
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req acceptMessagesRequest
	if err := decodeJSON(w, r, &req); err != nil || req.AcceptMessages == nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "acceptMessages is required")
		return
	}

	accepting, err := h.svc.Set(r.Context(), *req.AcceptMessages)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, acceptMessagesResponse{
		Success:             true,
		IsAcceptingMessages: accepting,
		Message:             "Message acceptance status updated successfully",
	})
}
