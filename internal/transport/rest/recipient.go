package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type recipientService interface {
	Search(ctx context.Context, q string) ([]domain.SuggestionCandidate, error)
}

// RecipientHandler serves recipient suggestions to anonymous senders.
type RecipientHandler struct {
	svc recipientService
	log *slog.Logger
}

// NewRecipientHandler creates a RecipientHandler.
func NewRecipientHandler(svc recipientService, logger *slog.Logger) *RecipientHandler {
	return &RecipientHandler{svc: svc, log: logger.With("handler", "recipient")}
}

type candidateResponse struct {
	Username            string `json:"username"`
	IsAcceptingMessages bool   `json:"isAcceptingMessages"`
}

type searchResponse struct {
	Users   []candidateResponse `json:"users"`
	Message string              `json:"message,omitempty"`
}

// Search handles GET /api/search-users?q=.
func (h *RecipientHandler) Search(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.ErrorContext(r.Context(), "search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, searchResponse{
			Users:   []candidateResponse{},
			Message: "Error searching users",
		})
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Users: lo.Map(found, func(c domain.SuggestionCandidate, _ int) candidateResponse {
			return candidateResponse{Username: c.Handle, IsAcceptingMessages: c.AcceptingMessages}
		}),
	})
}
