package badgerstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// AccountRepo provides account persistence on badger.
type AccountRepo struct {
	store *Store
}

// Create stores a new account document with no messages. Returns
// domain.ErrAlreadyExists when the email is taken; handles may repeat.
func (r *AccountRepo) Create(ctx context.Context, acc domain.Account) (*domain.Account, error) {
	acc.Email = domain.NormalizeEmail(acc.Email)
	doc := &accountDoc{
		ID:                acc.ID,
		Handle:            acc.Handle,
		Email:             acc.Email,
		PasswordHash:      acc.PasswordHash,
		AcceptingMessages: acc.AcceptingMessages,
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
		Messages:          []messageDoc{},
	}

	err := r.store.update(ctx, func(txn *badger.Txn) error {
		if _, err := txn.Get(emailKey(acc.Email)); err == nil {
			return fmt.Errorf("account %s: %w", acc.Email, domain.ErrAlreadyExists)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if _, err := txn.Get(accountKey(acc.ID)); err == nil {
			return fmt.Errorf("account %s: %w", acc.ID, domain.ErrAlreadyExists)
		}

		if err := putDoc(txn, doc); err != nil {
			return err
		}
		if err := txn.Set(emailKey(acc.Email), []byte(acc.ID.String())); err != nil {
			return err
		}
		return txn.Set(handleKey(acc.Handle, acc.CreatedAt, acc.ID), []byte(acc.Handle))
	})
	if err != nil {
		return nil, err
	}

	return &acc, nil
}

// GetByID returns the account with the given ID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var acc domain.Account
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		doc, err := getDoc(txn, id)
		if err != nil {
			return err
		}
		acc = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByEmail returns the account registered with email (case-insensitive).
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var acc domain.Account
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return mapError(err, "account", email)
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id, err := uuid.ParseBytes(raw)
		if err != nil {
			return fmt.Errorf("email index %s: %w", email, err)
		}
		doc, err := getDoc(txn, id)
		if err != nil {
			return err
		}
		acc = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByHandle returns the earliest-created account with exactly this handle.
func (r *AccountRepo) GetByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	var acc *domain.Account
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		prefix := []byte(handlePrefix + strings.ToLower(handle) + keySep)
		for _, e := range scanHandles(txn, prefix) {
			if e.handle != handle {
				continue
			}
			doc, err := getDoc(txn, e.id)
			if err != nil {
				return err
			}
			found := doc.toDomain()
			acc = &found
			return nil
		}
		return fmt.Errorf("account %s: %w", handle, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// SearchByHandlePrefix returns up to limit accounts whose handle starts with
// prefix, case-insensitively. Each distinct handle appears once, represented
// by its earliest-created account; results are ordered by creation.
func (r *AccountRepo) SearchByHandlePrefix(ctx context.Context, prefix string, limit int) ([]domain.Account, error) {
	if prefix == "" || limit <= 0 {
		return []domain.Account{}, nil
	}

	var out []domain.Account
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		entries := scanHandles(txn, []byte(handlePrefix+strings.ToLower(prefix)))
		entries = lo.UniqBy(entries, func(e handleEntry) string { return e.handle })
		sortEntries(entries)

		for _, e := range lo.Slice(entries, 0, limit) {
			doc, err := getDoc(txn, e.id)
			if err != nil {
				return err
			}
			out = append(out, doc.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Account{}
	}
	return out, nil
}

// SetAcceptingMessages updates the acceptance flag and returns the stored account.
func (r *AccountRepo) SetAcceptingMessages(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error) {
	var acc domain.Account
	err := r.store.update(ctx, func(txn *badger.Txn) error {
		doc, err := getDoc(txn, id)
		if err != nil {
			return err
		}
		doc.AcceptingMessages = accepting
		doc.UpdatedAt = nowUTC()
		if err := putDoc(txn, doc); err != nil {
			return err
		}
		acc = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

type handleEntry struct {
	handle  string
	created string
	id      uuid.UUID
}

// scanHandles returns handle index entries under prefix in key order
// (lowercased handle, creation, id).
func scanHandles(txn *badger.Txn, prefix []byte) []handleEntry {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var entries []handleEntry
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		parts := bytes.Split(bytes.TrimPrefix(item.Key(), []byte(handlePrefix)), []byte(keySep))
		if len(parts) != 3 {
			continue
		}
		id, err := uuid.ParseBytes(parts[2])
		if err != nil {
			continue
		}
		handle, err := item.ValueCopy(nil)
		if err != nil {
			continue
		}
		entries = append(entries, handleEntry{handle: string(handle), created: string(parts[1]), id: id})
	}
	return entries
}
