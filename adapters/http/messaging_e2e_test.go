package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/youapp/youapp-api/adapters/persistence"
	"github.com/youapp/youapp-api/internal/application/service"
	authUC "github.com/youapp/youapp-api/internal/application/usecase/auth"
	messageUC "github.com/youapp/youapp-api/internal/application/usecase/message"
	profileUC "github.com/youapp/youapp-api/internal/application/usecase/profile"
	"github.com/youapp/youapp-api/internal/config"
	"github.com/youapp/youapp-api/pkg/auth"
	"github.com/youapp/youapp-api/pkg/logger"
)

// noopPublisher stands in for Kafka so the e2e suite only needs Postgres.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, service.NotificationEvent) error { return nil }

type MessagingE2ETestSuite struct {
	suite.Suite
	Router *gin.Engine

	senderToken   string
	receiverToken string
	senderName    string
	receiverName  string
}

func (s *MessagingE2ETestSuite) SetupSuite() {

	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool, appLogger)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	sendMessageUseCase := messageUC.NewSendMessageUseCase(messageRepo, userRepo, noopPublisher{}, appLogger)
	listMessagesUseCase := messageUC.NewListMessagesUseCase(messageRepo, userRepo, appLogger)

	authHandler := NewAuthHandler(registerUseCase, loginUseCase, appLogger)
	profileHandler := NewProfileHandler(profileUseCase, appLogger)
	messageHandler := NewMessageHandler(sendMessageUseCase, listMessagesUseCase, appLogger)

	authMiddleware := AuthMiddleware(jwtSvc)
	errorMiddleware := ErrorMiddleware(appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/profiles/createProfile", profileHandler.CreateProfile)
			private.GET("/profiles/getProfile", profileHandler.GetProfile)
			private.PATCH("/profiles/updateProfile", profileHandler.UpdateProfile)
			private.POST("/messages/sendMessage", messageHandler.SendMessage)
			private.GET("/messages/viewMessages", messageHandler.ViewMessages)
		}
	}
	s.Router = router

	// Fresh accounts per run so reruns never hit the unique constraints.
	run := xid.New().String()
	s.senderName = "sender_" + run
	s.receiverName = "receiver_" + run
	s.senderToken = s.registerAndLogin(s.senderName)
	s.receiverToken = s.registerAndLogin(s.receiverName)
}

func (s *MessagingE2ETestSuite) TearDownSuite() {}

func TestMessagingE2E(t *testing.T) {

	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(MessagingE2ETestSuite))
}

func (s *MessagingE2ETestSuite) registerAndLogin(username string) string {
	password := "e2e_test_password_123"

	body, _ := json.Marshal(gin.H{
		"email":    username + "@example.com",
		"username": username,
		"password": password,
	})
	rr := s.doJSON(http.MethodPost, "/api/auth/register", body, "")
	if rr.Code != http.StatusCreated {
		s.T().Fatalf("register %s failed: %d %s", username, rr.Code, rr.Body.String())
	}

	body, _ = json.Marshal(gin.H{"username": username, "password": password})
	rr = s.doJSON(http.MethodPost, "/api/auth/login", body, "")
	if rr.Code != http.StatusOK {
		s.T().Fatalf("login %s failed: %d %s", username, rr.Code, rr.Body.String())
	}

	var loginResponse map[string]string
	json.Unmarshal(rr.Body.Bytes(), &loginResponse)
	return loginResponse["access_token"]
}

func (s *MessagingE2ETestSuite) doJSON(method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *MessagingE2ETestSuite) Test_Profile_Flow() {

	body, _ := json.Marshal(gin.H{
		"display_name": "Sender",
		"gender":       "Male",
		"birthday":     "2000-02-29",
		"interests":    []string{"hiking"},
	})
	rr := s.doJSON(http.MethodPost, "/api/profiles/createProfile", body, s.senderToken)
	assert.Equal(s.T(), http.StatusCreated, rr.Code, rr.Body.String())

	var created ProfileDTO
	json.Unmarshal(rr.Body.Bytes(), &created)
	assert.Equal(s.T(), "Pisces", created.Horoscope)
	assert.Equal(s.T(), "Dragon", created.Zodiac)

	rr = s.doJSON(http.MethodGet, "/api/profiles/getProfile", nil, s.senderToken)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var fetched ProfileDTO
	json.Unmarshal(rr.Body.Bytes(), &fetched)
	assert.Equal(s.T(), "Sender", fetched.DisplayName)
	assert.Equal(s.T(), "Pisces", fetched.Horoscope)
}

func (s *MessagingE2ETestSuite) Test_Messaging_Flow() {

	body, _ := json.Marshal(gin.H{"to_user": s.receiverName, "body": "hello from e2e"})
	rr := s.doJSON(http.MethodPost, "/api/messages/sendMessage", body, s.senderToken)
	assert.Equal(s.T(), http.StatusCreated, rr.Code, rr.Body.String())

	var sent MessageDTO
	json.Unmarshal(rr.Body.Bytes(), &sent)
	assert.NotEmpty(s.T(), sent.ID)
	assert.Equal(s.T(), "sent", sent.Status)

	// The receiver sees the same conversation.
	path := fmt.Sprintf("/api/messages/viewMessages?peer=%s&limit=10", s.senderName)
	rr = s.doJSON(http.MethodGet, path, nil, s.receiverToken)
	assert.Equal(s.T(), http.StatusOK, rr.Code, rr.Body.String())

	var view ViewMessagesResponse
	json.Unmarshal(rr.Body.Bytes(), &view)
	assert.NotEmpty(s.T(), view.Messages)
	assert.Equal(s.T(), "hello from e2e", view.Messages[0].Body)
}

func (s *MessagingE2ETestSuite) Test_Messaging_Errors() {

	body, _ := json.Marshal(gin.H{"to_user": "ghost_user_that_never_registered", "body": "hi"})
	rr := s.doJSON(http.MethodPost, "/api/messages/sendMessage", body, s.senderToken)
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)

	body, _ = json.Marshal(gin.H{"to_user": s.receiverName, "body": "   "})
	rr = s.doJSON(http.MethodPost, "/api/messages/sendMessage", body, s.senderToken)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	rr = s.doJSON(http.MethodGet, "/api/messages/viewMessages?peer="+s.receiverName, nil, "")
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}
