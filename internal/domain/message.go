package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxContentLength bounds a message body in characters.
const DefaultMaxContentLength = 300

// Message is an anonymous note owned by exactly one Account.
type Message struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Content   string
	CreatedAt time.Time
}

// SortByRecency returns a copy of msgs ordered by CreatedAt, newest first.
// Messages with equal timestamps keep their relative input order.
func SortByRecency(msgs []Message) []Message {
	out := slices.Clone(msgs)
	slices.SortStableFunc(out, func(a, b Message) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
