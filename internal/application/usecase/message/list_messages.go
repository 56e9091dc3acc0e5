package message

import (
	"context"

	"github.com/google/uuid"

	"github.com/youapp/youapp-api/internal/domain/message"
	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/logger"
)

const defaultPageSize = 50

type ListMessagesUseCase struct {
	msgRepo  message.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewListMessagesUseCase(mRepo message.Repository, uRepo user.Repository, log logger.Logger) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		msgRepo:  mRepo,
		userRepo: uRepo,
		logger:   log,
	}
}

type ListMessagesInput struct {
	UserID uuid.UUID
	// PeerIdentifier is the conversation partner's username, email, or id.
	PeerIdentifier string
	// Cursor is the id of the last message of the previous page; empty for
	// the first page.
	Cursor string
	Limit  int
}

type ListMessagesOutput struct {
	Messages []*message.Message
	// NextCursor is the id to pass for the next older page; empty when this
	// page was empty.
	NextCursor string
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) (*ListMessagesOutput, error) {
	peerID, err := resolveUserID(ctx, uc.userRepo, input.PeerIdentifier)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	msgs, err := uc.msgRepo.ListConversation(ctx, input.UserID, peerID, input.Cursor, limit)
	if err != nil {
		return nil, err
	}

	out := &ListMessagesOutput{Messages: msgs}
	if len(msgs) > 0 {
		out.NextCursor = msgs[len(msgs)-1].ID
	}
	return out, nil
}
