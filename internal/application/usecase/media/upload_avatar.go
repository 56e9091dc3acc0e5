package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"github.com/youapp/youapp-api/internal/application/service"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

// MaxAvatarSize caps avatar uploads at 2 MiB.
const MaxAvatarSize = 2 << 20

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

func IsAllowedAvatarType(contentType string) bool {
	return allowedAvatarTypes[contentType]
}

type UploadAvatarUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAvatarUseCase(uploader service.Uploader, log logger.Logger) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		uploader: uploader,
		logger:   log,
	}
}

type UploadAvatarInput struct {
	UserID      uuid.UUID
	File        io.Reader
	ContentType string
}

type UploadAvatarOutput struct {
	URL string
}

func (uc *UploadAvatarUseCase) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {
	if !IsAllowedAvatarType(input.ContentType) {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("unsupported avatar content type '%s'", input.ContentType), nil)
	}

	folder := fmt.Sprintf("users/%s/avatars", input.UserID.String())
	publicID := xid.New().String()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	return &UploadAvatarOutput{URL: url}, nil
}
