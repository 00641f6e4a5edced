package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	badgerstore "github.com/heartmarshall/truefeedback-backend/internal/adapter/badger"
	"github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres/account"
	messagerepo "github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres/message"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// AccountStore is every account operation the services need.
type AccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Account, error)
	SearchByHandlePrefix(ctx context.Context, prefix string, limit int) ([]domain.Account, error)
	Create(ctx context.Context, acc domain.Account) (*domain.Account, error)
	SetAcceptingMessages(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error)
}

// MessageStore is every message operation the services need.
type MessageStore interface {
	Create(ctx context.Context, msg domain.Message) (*domain.Message, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error)
	Delete(ctx context.Context, accountID, messageID uuid.UUID) (bool, error)
}

// TxRunner runs fn in one store transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage is the persistence a server runs on.
type Storage struct {
	Accounts  AccountStore
	Messages  MessageStore
	Tx        TxRunner
	Pinger    Pinger
	Component string
	close     func()
}

// Close releases the underlying store.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// PostgresStorage builds Storage over an open pool. The caller owns the pool.
func PostgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Accounts:  accountrepo.New(pool),
		Messages:  messagerepo.New(pool),
		Tx:        postgres.NewTxManager(pool),
		Pinger:    pool,
		Component: config.DriverPostgres,
	}
}

// BadgerStorage builds Storage over an open badger store. The caller owns
// the store.
func BadgerStorage(store *badgerstore.Store) *Storage {
	return &Storage{
		Accounts:  store.Accounts(),
		Messages:  store.Messages(),
		Tx:        store,
		Pinger:    store,
		Component: config.DriverBadger,
	}
}

// OpenStorage connects the driver selected in cfg. The returned Storage owns
// its connection; call Close when done.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverBadger:
		store, err := badgerstore.Open(cfg.Storage, logger)
		if err != nil {
			return nil, err
		}
		st := BadgerStorage(store)
		st.close = func() {
			if err := store.Close(); err != nil {
				logger.Error("close badger", slog.String("error", err.Error()))
			}
		}
		logger.Info("storage ready", slog.String("driver", config.DriverBadger), slog.Bool("in_memory", cfg.Storage.InMemory))
		return st, nil

	case config.DriverPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		st := PostgresStorage(pool)
		st.close = pool.Close
		logger.Info("storage ready", slog.String("driver", config.DriverPostgres))
		return st, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
