package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered recipient. Handles are not unique: two accounts may
// share one, and handle lookups pick the earliest-created account.
type Account struct {
	ID                uuid.UUID
	Handle            string
	Email             string
	PasswordHash      string
	AcceptingMessages bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Candidate projects the account into a suggestion entry.
func (a Account) Candidate() SuggestionCandidate {
	return SuggestionCandidate{
		Handle:            a.Handle,
		AcceptingMessages: a.AcceptingMessages,
	}
}

// SuggestionCandidate is a recipient shown while a sender types. AcceptingMessages
// is only a hint; it is enforced at submission time.
type SuggestionCandidate struct {
	Handle            string
	AcceptingMessages bool
}

// SessionIdentity is what the identity provider knows about the signed-in
// account. Either part may be stale or missing.
type SessionIdentity struct {
	AccountID uuid.UUID
	Handle    string
}

// IsZero reports whether the identity carries nothing to look up.
func (s SessionIdentity) IsZero() bool {
	return s.AccountID == uuid.Nil && s.Handle == ""
}
