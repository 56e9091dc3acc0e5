package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/youapp/youapp-api/internal/application/usecase/auth"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type AuthHandler struct {
	registerUseCase *authUC.RegisterUseCase
	loginUseCase    *authUC.LoginUseCase
	logger          logger.Logger
}

func NewAuthHandler(registerUC *authUC.RegisterUseCase, loginUC *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logger:          log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for register", err))
		return
	}

	input := authUC.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       output.ID,
		"email":    output.Email,
		"username": output.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	input := authUC.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
	})
}
