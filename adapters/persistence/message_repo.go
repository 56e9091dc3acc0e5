package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/youapp/youapp-api/internal/domain/message"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type postgresMessageRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMessageRepo(db *pgxpool.Pool, logger logger.Logger) message.Repository {
	return &postgresMessageRepo{db: db, logger: logger}
}

var psqlMessage = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresMessageRepo) Save(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, recipient_id, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.From, m.To, m.Body, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save message", err)
	}
	return nil
}

// ListConversation relies on id being a sortable creation-ordered key:
// newest first, and the optional cursor excludes everything from the cursor
// id upward so pages never overlap.
func (r *postgresMessageRepo) ListConversation(ctx context.Context, a, b uuid.UUID, cursor string, limit int) ([]*message.Message, error) {
	qb := psqlMessage.
		Select("id", "sender_id", "recipient_id", "body", "status", "created_at", "updated_at").
		From("messages").
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": a}, sq.Eq{"recipient_id": b}},
			sq.And{sq.Eq{"sender_id": b}, sq.Eq{"recipient_id": a}},
		}).
		OrderBy("id DESC").
		Limit(uint64(limit))

	if cursor != "" {
		qb = qb.Where(sq.Lt{"id": cursor})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build conversation query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query conversation", err)
	}
	return scanMessages(rows)
}

func scanMessage(row pgx.Row) (*message.Message, error) {
	m := &message.Message{}
	err := row.Scan(
		&m.ID, &m.From, &m.To, &m.Body, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("message", "")
		}
		return nil, apperror.NewInternal("failed to scan message row", err)
	}
	return m, nil
}

func scanMessages(rows pgx.Rows) ([]*message.Message, error) {
	defer rows.Close()
	msgs := make([]*message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating message rows", err)
	}
	return msgs, nil
}
