package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/youapp/youapp-api/internal/application/usecase/profile"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	input := profileUC.GetProfileInput{UserID: userID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	h.upsertProfile(c, http.StatusCreated)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	h.upsertProfile(c, http.StatusOK)
}

// Both endpoints share upsert semantics: an update with no existing row
// creates one.
func (h *ProfileHandler) upsertProfile(c *gin.Context, successStatus int) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile", err))
		return
	}

	input := profileUC.UpsertProfileInput{
		UserID:      userID,
		DisplayName: req.DisplayName,
		Gender:      req.Gender,
		Birthday:    req.Birthday,
		Height:      req.Height,
		Weight:      req.Weight,
		Interests:   req.Interests,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	}

	output, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(successStatus, ToProfileDTO(output.Profile))
}
