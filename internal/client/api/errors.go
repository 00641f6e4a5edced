package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// APIError is a failed response. Message is safe to show to the user.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

var codeErrors = map[string]error{
	"invalid_target":      domain.ErrInvalidTarget,
	"invalid_content":     domain.ErrInvalidContent,
	"recipient_not_found": domain.ErrRecipientNotFound,
	"not_accepting":       domain.ErrNotAccepting,
	"validation":          domain.ErrValidation,
	"bad_request":         domain.ErrValidation,
	"unauthorized":        domain.ErrUnauthorized,
	"not_found":           domain.ErrNotFound,
	"already_exists":      domain.ErrAlreadyExists,
}

// Unwrap maps the response onto a domain sentinel so callers can use errors.Is.
// Servers that send no code are mapped by status alone.
func (e *APIError) Unwrap() error {
	if err, ok := codeErrors[e.Code]; ok {
		return err
	}
	switch e.Status {
	case http.StatusBadRequest:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrAlreadyExists
	}
	return nil
}

// UserMessage returns the server-provided text for err, or fallback when err
// did not come from the server.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Status < http.StatusInternalServerError {
		return apiErr.Message
	}
	return fallback
}
