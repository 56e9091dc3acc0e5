package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/youapp/youapp-api/internal/application/usecase/media"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type MediaHandler struct {
	uploadAvatarUC *mediaUC.UploadAvatarUseCase
	logger         logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadAvatarUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadAvatarUC: uploadUC,
		logger:         log,
	}
}

func (h *MediaHandler) UploadAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'avatar' file is required", err))
		return
	}
	if fileHeader.Size > mediaUC.MaxAvatarSize {
		c.Error(apperror.NewInvalidInput("avatar file exceeds the 2MB limit", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadAvatarInput{
		UserID:      userID,
		File:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	output, err := h.uploadAvatarUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      output.URL,
		"filename": fileHeader.Filename,
	})
}
