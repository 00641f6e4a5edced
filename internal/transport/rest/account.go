package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/internal/service/account"
)

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
}

// AccountHandler serves sign-up and sign-in.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

// SignUp handles POST /api/sign-up.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return
	}

	_, err := h.svc.Register(r.Context(), account.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, "User registered successfully. You can now sign in.")
}

// SignIn handles POST /api/sign-in.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Login(r.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		Success:     true,
		AccessToken: res.AccessToken,
		Username:    res.Account.Handle,
	})
}
