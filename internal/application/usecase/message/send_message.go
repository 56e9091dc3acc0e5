package message

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/youapp/youapp-api/internal/application/service"
	"github.com/youapp/youapp-api/internal/domain/message"
	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

var tracer = otel.Tracer("message_usecase")

const notifyTimeout = 5 * time.Second

type SendMessageUseCase struct {
	msgRepo  message.Repository
	userRepo user.Repository
	notifier service.NotificationPublisher
	logger   logger.Logger
}

func NewSendMessageUseCase(
	mRepo message.Repository,
	uRepo user.Repository,
	notifier service.NotificationPublisher,
	log logger.Logger,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		msgRepo:  mRepo,
		userRepo: uRepo,
		notifier: notifier,
		logger:   log,
	}
}

type SendMessageInput struct {
	SenderID uuid.UUID
	// ToIdentifier is the recipient's username, email, or literal id.
	ToIdentifier string
	Body         string
}

type SendMessageOutput struct {
	Message *message.Message
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {

	ctx, span := tracer.Start(ctx, "SendMessage")
	defer span.End()

	if strings.TrimSpace(input.Body) == "" {
		return nil, apperror.NewInvalidInput("message body must not be empty", message.ErrEmptyBody)
	}

	recipientID, err := resolveUserID(ctx, uc.userRepo, input.ToIdentifier)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().UTC()
	msg := &message.Message{
		ID:        xid.New().String(),
		From:      input.SenderID,
		To:        recipientID,
		Body:      input.Body,
		Status:    message.StatusSent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.msgRepo.Save(ctx, msg); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("message_id", msg.ID))

	// Fire and forget: once the message is stored, a broker hiccup must not
	// fail the send.
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := uc.notifier.Publish(notifyCtx, service.NotificationEvent{
			Type:      service.NotificationNewMessage,
			MessageID: msg.ID,
			To:        recipientID.String(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish new-message notification",
				zap.String("message_id", msg.ID), zap.Error(err))
		}
	}()

	return &SendMessageOutput{Message: msg}, nil
}
