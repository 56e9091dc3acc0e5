package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	messageUC "github.com/youapp/youapp-api/internal/application/usecase/message"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type MessageHandler struct {
	sendMessageUC  *messageUC.SendMessageUseCase
	listMessagesUC *messageUC.ListMessagesUseCase
	logger         logger.Logger
}

func NewMessageHandler(sendUC *messageUC.SendMessageUseCase, listUC *messageUC.ListMessagesUseCase, log logger.Logger) *MessageHandler {
	return &MessageHandler{
		sendMessageUC:  sendUC,
		listMessagesUC: listUC,
		logger:         log,
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for send message", err))
		return
	}

	input := messageUC.SendMessageInput{
		SenderID:     userID,
		ToIdentifier: req.ToUser,
		Body:         req.Body,
	}

	output, err := h.sendMessageUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToMessageDTO(output.Message))
}

func (h *MessageHandler) ViewMessages(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	peer := c.Query("peer")
	if peer == "" {
		c.Error(apperror.NewInvalidInput("'peer' query parameter is required", nil))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	input := messageUC.ListMessagesInput{
		UserID:         userID,
		PeerIdentifier: peer,
		Cursor:         c.Query("cursor"),
		Limit:          limit,
	}

	output, err := h.listMessagesUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]MessageDTO, len(output.Messages))
	for i, m := range output.Messages {
		dtos[i] = ToMessageDTO(m)
	}

	c.JSON(http.StatusOK, ViewMessagesResponse{
		Messages:   dtos,
		NextCursor: output.NextCursor,
	})
}
