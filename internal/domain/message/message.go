package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyBody = errors.New("message body must not be empty")

type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// Message ids are xid strings: fixed-length, time-prefixed, so lexicographic
// order matches creation order. The id doubles as the pagination cursor.
type Message struct {
	ID        string    `json:"id"`
	From      uuid.UUID `json:"from"`
	To        uuid.UUID `json:"to"`
	Body      string    `json:"body"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	// ListConversation returns messages exchanged between a and b in either
	// direction, newest first. When cursor is non-empty only messages with
	// id strictly below it are returned. Result size is capped at limit.
	ListConversation(ctx context.Context, a, b uuid.UUID, cursor string, limit int) ([]*Message, error)
}
