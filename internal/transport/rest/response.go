package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

const maxBodyBytes = 64 << 10

// statusResponse is the envelope every non-list endpoint answers with.
// Code is a stable machine-readable error kind; Message is for people.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Error codes carried in failed responses.
const (
	CodeBadRequest        = "bad_request"
	CodeInvalidTarget     = "invalid_target"
	CodeInvalidContent    = "invalid_content"
	CodeRecipientNotFound = "recipient_not_found"
	CodeNotAccepting      = "not_accepting"
	CodeValidation        = "validation"
	CodeUnauthorized      = "unauthorized"
	CodeNotFound          = "not_found"
	CodeAlreadyExists     = "already_exists"
	CodeInternal          = "internal"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, statusResponse{Success: false, Message: message, Code: code})
}

func writeOK(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusResponse{Success: true, Message: message})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // empty means use the validation detail
	prefix  string
}

// Order matters: ErrInvalidContent also matches ErrValidation.
var errorMappings = []errorMapping{
	{domain.ErrInvalidTarget, http.StatusBadRequest, CodeInvalidTarget, "Enter a valid username or profile link", ""},
	{domain.ErrInvalidContent, http.StatusBadRequest, CodeInvalidContent, "", "Invalid message content: "},
	{domain.ErrRecipientNotFound, http.StatusNotFound, CodeRecipientNotFound, "User not found", ""},
	{domain.ErrNotAccepting, http.StatusForbidden, CodeNotAccepting, "User is not accepting messages", ""},
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation, "", ""},
	{domain.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized, "Not authenticated", ""},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound, "User not found", ""},
	{domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists, "User already exists with this email", ""},
}

// handleError maps domain errors to HTTP responses. Unknown errors are logged
// and answered with a generic message.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = m.prefix + validationDetail(err)
		}
		writeError(w, m.status, m.code, msg)
		return
	}

	log.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("path", r.URL.Path),
	)
	writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

func validationDetail(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
