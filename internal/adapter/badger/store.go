// Package badgerstore is an embedded document store for accounts. Each
// account is one document with its messages embedded; secondary keys index
// emails and handles.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/heartmarshall/truefeedback-backend/internal/config"
)

const maxConflictRetries = 5

// Store owns the badger database and hands out repositories over it.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// Open opens (or creates) the database described by cfg.
func Open(cfg config.StorageConfig, log *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.BadgerPath)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{db: db, log: log.With("store", "badger")}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is usable.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database closed")
	}
	return nil
}

// Accounts returns the account repository.
func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{store: s}
}

// Messages returns the message repository.
func (s *Store) Messages() *MessageRepo {
	return &MessageRepo{store: s}
}

// RunInTx executes fn inside a read-write transaction carried on the
// context. Repositories called with that context join the transaction.
// Conflicting commits are retried.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txnFromCtx(ctx); ok {
		return fn(ctx)
	}
	return s.retryUpdate(ctx, func(txn *badger.Txn) error {
		return fn(withTxn(ctx, txn))
	})
}

func (s *Store) retryUpdate(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.DebugContext(ctx, "badger transaction conflict, retrying", slog.Int("attempt", attempt+1))
		time.Sleep(time.Duration(attempt+1) * time.Millisecond)
	}
	return fmt.Errorf("badger: giving up after %d conflicts: %w", maxConflictRetries, err)
}

// update runs fn in the context transaction, or in a fresh one.
func (s *Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if txn, ok := txnFromCtx(ctx); ok {
		return fn(txn)
	}
	return s.retryUpdate(ctx, fn)
}

// view runs fn in the context transaction, or in a fresh read-only one.
func (s *Store) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if txn, ok := txnFromCtx(ctx); ok {
		return fn(txn)
	}
	return s.db.View(fn)
}

type txnCtxKey struct{}

func withTxn(ctx context.Context, txn *badger.Txn) context.Context {
	return context.WithValue(ctx, txnCtxKey{}, txn)
}

func txnFromCtx(ctx context.Context) (*badger.Txn, bool) {
	txn, ok := ctx.Value(txnCtxKey{}).(*badger.Txn)
	return txn, ok
}
