// Package message implements message persistence on PostgreSQL.
package message

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

const table = "messages"

var (
	psql    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns = []string{"id", "account_id", "content", "created_at"}
)

type row struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Message {
	return domain.Message{
		ID:        r.ID,
		AccountID: r.AccountID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new message repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends a message to its owner's collection. Returns
// domain.ErrNotFound when the owning account does not exist.
func (r *Repo) Create(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(msg.ID, msg.AccountID, msg.Content, msg.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert message: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "message", msg.ID)
	}

	created := rec.toDomain()
	return &created, nil
}

// ListByAccount returns every message owned by accountID, newest first.
// Equal timestamps are ordered by id so repeated reads agree.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Message, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "messages of account", accountID)
	}

	return lo.Map(rows, func(rec row, _ int) domain.Message { return rec.toDomain() }), nil
}

// Delete removes a message owned by accountID. Removing a message that is
// already gone is not an error; the returned flag reports whether a row
// was deleted.
func (r *Repo) Delete(ctx context.Context, accountID, messageID uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": messageID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete message: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "message", messageID)
	}

	return tag.RowsAffected() > 0, nil
}
