package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
	"github.com/heartmarshall/truefeedback-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.SessionIdentity, error)
}

// Auth turns a bearer token into the session identity carried by the request
// context. Requests without a token pass through anonymously; routes that need
// a session reject them later.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := validator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"message":"Not authenticated","code":"unauthorized"}`))
				return
			}

			ctx := r.Context()
			if identity.AccountID != uuid.Nil {
				ctx = ctxutil.WithAccountID(ctx, identity.AccountID)
			}
			if identity.Handle != "" {
				ctx = ctxutil.WithHandle(ctx, identity.Handle)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
