// Package account implements account persistence on PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/adapter/postgres"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

const table = "accounts"

var (
	psql    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns = []string{"id", "handle", "email", "password_hash", "accepting_messages", "created_at", "updated_at"}

	// Earliest-created wins when handles collide.
	tieBreak = []string{"created_at ASC", "id ASC"}
)

type row struct {
	ID                uuid.UUID `db:"id"`
	Handle            string    `db:"handle"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	AcceptingMessages bool      `db:"accepting_messages"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Account {
	return domain.Account{
		ID:                r.ID,
		Handle:            r.Handle,
		Email:             r.Email,
		PasswordHash:      r.PasswordHash,
		AcceptingMessages: r.AcceptingMessages,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new account repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the account with the given primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns the account registered with email (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"email": domain.NormalizeEmail(email)}, email)
}

// GetByHandle returns the earliest-created account with exactly this handle.
func (r *Repo) GetByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"handle": handle}, handle)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Account, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy(tieBreak...).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build account query: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", key)
	}

	acc := rec.toDomain()
	return &acc, nil
}

// SearchByHandlePrefix returns up to limit accounts whose handle starts with
// prefix, compared case-insensitively. LIKE metacharacters in prefix match
// literally. Each distinct handle appears once, represented by its
// earliest-created account; results are ordered by creation.
func (r *Repo) SearchByHandlePrefix(ctx context.Context, prefix string, limit int) ([]domain.Account, error) {
	if prefix == "" || limit <= 0 {
		return []domain.Account{}, nil
	}

	inner := squirrel.Select(columns...).
		Options("DISTINCT ON (handle)").
		From(table).
		Where(squirrel.ILike{"handle": EscapeLike(prefix) + "%"}).
		OrderBy(append([]string{"handle"}, tieBreak...)...)

	query, args, err := psql.Select(columns...).
		FromSelect(inner, "a").
		OrderBy(tieBreak...).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "account search", prefix)
	}

	return lo.Map(rows, func(rec row, _ int) domain.Account { return rec.toDomain() }), nil
}

// EscapeLike escapes LIKE/ILIKE metacharacters using the default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account. Returns domain.ErrAlreadyExists when the
// email is taken; duplicate handles are accepted.
func (r *Repo) Create(ctx context.Context, acc domain.Account) (*domain.Account, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(acc.ID, acc.Handle, domain.NormalizeEmail(acc.Email), acc.PasswordHash, acc.AcceptingMessages, acc.CreatedAt, acc.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert account: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", acc.ID)
	}

	created := rec.toDomain()
	return &created, nil
}

// SetAcceptingMessages updates the acceptance flag and returns the stored account.
func (r *Repo) SetAcceptingMessages(ctx context.Context, id uuid.UUID, accepting bool) (*domain.Account, error) {
	query, args, err := psql.Update(table).
		Set("accepting_messages", accepting).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update account: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	acc := rec.toDomain()
	return &acc, nil
}
