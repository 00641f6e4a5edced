package badgerstore

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// MessageRepo provides access to messages embedded in account documents.
type MessageRepo struct {
	store *Store
}

// Create appends msg to its owner's document. Returns domain.ErrNotFound
// when the owner does not exist.
func (r *MessageRepo) Create(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	err := r.store.update(ctx, func(txn *badger.Txn) error {
		doc, err := getDoc(txn, msg.AccountID)
		if err != nil {
			return err
		}
		doc.Messages = append(doc.Messages, messageDoc{
			ID:        msg.ID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
		return putDoc(txn, doc)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByAccount returns the owner's messages, newest first. Equal
// timestamps keep insertion order.
func (r *MessageRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		doc, err := getDoc(txn, accountID)
		if err != nil {
			return err
		}
		msgs = domain.SortByRecency(doc.messages())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// Delete removes one message from the owner's document. A message that is
// already gone is not an error; the flag reports whether one was removed.
func (r *MessageRepo) Delete(ctx context.Context, accountID, messageID uuid.UUID) (bool, error) {
	removed := false
	err := r.store.update(ctx, func(txn *badger.Txn) error {
		doc, err := getDoc(txn, accountID)
		if err != nil {
			return err
		}
		before := len(doc.Messages)
		doc.Messages = slices.DeleteFunc(doc.Messages, func(m messageDoc) bool { return m.ID == messageID })
		if len(doc.Messages) == before {
			return nil
		}
		removed = true
		return putDoc(txn, doc)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
