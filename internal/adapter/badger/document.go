package badgerstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

const (
	accountPrefix = "account:"
	emailPrefix   = "email:"
	handlePrefix  = "handle:"
	keySep        = "\x00"
)

// accountDoc is the stored form of an account with its messages embedded.
type accountDoc struct {
	ID                uuid.UUID    `json:"id"`
	Handle            string       `json:"handle"`
	Email             string       `json:"email"`
	PasswordHash      string       `json:"passwordHash"`
	AcceptingMessages bool         `json:"acceptingMessages"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	Messages          []messageDoc `json:"messages"`
}

type messageDoc struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d accountDoc) toDomain() domain.Account {
	return domain.Account{
		ID:                d.ID,
		Handle:            d.Handle,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		AcceptingMessages: d.AcceptingMessages,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (d accountDoc) messages() []domain.Message {
	return lo.Map(d.Messages, func(m messageDoc, _ int) domain.Message {
		return domain.Message{ID: m.ID, AccountID: d.ID, Content: m.Content, CreatedAt: m.CreatedAt}
	})
}

func accountKey(id uuid.UUID) []byte {
	return []byte(accountPrefix + id.String())
}

func emailKey(email string) []byte {
	return []byte(emailPrefix + strings.ToLower(email))
}

// handleKey orders entries by lowercased handle, then creation time, then id,
// so a prefix scan visits the earliest-created account of a handle first.
func handleKey(handle string, createdAt time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%s%s%020d%s%s",
		handlePrefix, strings.ToLower(handle), keySep, createdAt.UnixNano(), keySep, id))
}

func getDoc(txn *badger.Txn, id uuid.UUID) (*accountDoc, error) {
	item, err := txn.Get(accountKey(id))
	if err != nil {
		return nil, mapError(err, "account", id)
	}

	var doc accountDoc
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	}); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", id, err)
	}
	return &doc, nil
}

func putDoc(txn *badger.Txn, doc *accountDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode account %s: %w", doc.ID, err)
	}
	return txn.Set(accountKey(doc.ID), data)
}

// mapError converts badger errors to domain errors.
func mapError(err error, entity string, key any) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", entity, key, err)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func sortEntries(entries []handleEntry) {
	slices.SortStableFunc(entries, func(a, b handleEntry) int {
		if c := strings.Compare(a.created, b.created); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
}
