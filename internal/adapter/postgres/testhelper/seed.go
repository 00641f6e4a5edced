package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts an account with the given handle and acceptance flag.
// The email is randomized so repeated handles never collide.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, handle string, accepting bool) domain.Account {
	t.Helper()
	return SeedAccountAt(t, pool, handle, accepting, time.Now().UTC())
}

// SeedAccountAt is SeedAccount with an explicit creation time.
func SeedAccountAt(t *testing.T, pool *pgxpool.Pool, handle string, accepting bool, createdAt time.Time) domain.Account {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:                uuid.New(),
		Handle:            handle,
		Email:             "seed-" + UniqueSuffix() + "@example.com",
		PasswordHash:      "x",
		AcceptingMessages: accepting,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, handle, email, password_hash, accepting_messages, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		acc.ID, acc.Handle, acc.Email, acc.PasswordHash, acc.AcceptingMessages, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedMessage inserts a message owned by accountID.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, content string, createdAt time.Time) domain.Message {
	t.Helper()

	msg := domain.Message{
		ID:        uuid.New(),
		AccountID: accountID,
		Content:   content,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO messages (id, account_id, content, created_at) VALUES ($1, $2, $3, $4)`,
		msg.ID, msg.AccountID, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return msg
}
