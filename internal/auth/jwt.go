// Package auth issues and verifies the session tokens that carry a signed-in
// account's identity between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// JWTManager signs and verifies HS256 session tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	clock     clockwork.Clock
}

// NewJWTManager creates a JWT manager. secret must be at least 32 characters;
// config.Validate enforces that before the server starts.
func NewJWTManager(secret, issuer string, accessTTL time.Duration, clock clockwork.Clock) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		clock:     clock,
	}
}

// sessionClaims carries the account id as subject and the handle beside it.
type sessionClaims struct {
	jwt.RegisteredClaims
	Handle string `json:"handle,omitempty"`
}

// GenerateAccessToken issues a token for the account.
func (m *JWTManager) GenerateAccessToken(accountID uuid.UUID, handle string) (string, error) {
	now := m.clock.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Handle: handle,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.GenerateAccessToken: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies a token and returns the identity it carries.
// Every failure wraps domain.ErrUnauthorized.
//
// A subject that is not a UUID is tolerated when a handle is present: the
// identity then has only a handle and session lookup falls back to it.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.SessionIdentity, error) {
	if tokenString == "" {
		return domain.SessionIdentity{}, unauthorized(errors.New("token is empty"))
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return domain.SessionIdentity{}, unauthorized(err)
	}

	identity := domain.SessionIdentity{Handle: claims.Handle}
	if id, err := uuid.Parse(claims.Subject); err == nil {
		identity.AccountID = id
	}
	if identity.IsZero() {
		return domain.SessionIdentity{}, unauthorized(errors.New("token carries no account"))
	}
	return identity, nil
}

func unauthorized(err error) error {
	return fmt.Errorf("auth.ValidateAccessToken: %w: %w", domain.ErrUnauthorized, err)
}
