package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/xid"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/youapp/youapp-api/internal/domain/message"
	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/logger"
)

type MessageRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	msgRepo     message.Repository
	userRepo    user.Repository
	alice       *user.User
	bob         *user.User
}

func (s *MessageRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewNopLogger()
	s.msgRepo = NewPostgresMessageRepo(s.dbPool, testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)

	s.alice = s.seedUser(ctx, "alice@example.com", "alice")
	s.bob = s.seedUser(ctx, "bob@example.com", "bob")
}

func (s *MessageRepoIntegrationTestSuite) seedUser(ctx context.Context, email, username string) *user.User {
	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		s.T().Fatalf("Failed to seed user %s: %s", username, err)
	}
	return u
}

func (s *MessageRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestMessageRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(MessageRepoIntegrationTestSuite))
}

func (s *MessageRepoIntegrationTestSuite) saveMessage(from, to uuid.UUID, body string) *message.Message {
	m := &message.Message{
		ID:        xid.New().String(),
		From:      from,
		To:        to,
		Body:      body,
		Status:    message.StatusSent,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.msgRepo.Save(context.Background(), m))
	return m
}

func (s *MessageRepoIntegrationTestSuite) Test_Save_And_List() {
	ctx := context.Background()

	first := s.saveMessage(s.alice.ID, s.bob.ID, "hello bob")
	second := s.saveMessage(s.bob.ID, s.alice.ID, "hi alice")

	msgs, err := s.msgRepo.ListConversation(ctx, s.alice.ID, s.bob.ID, "", 10)

	s.NoError(err)
	s.Len(msgs, 2)
	s.Equal(second.ID, msgs[0].ID)
	s.Equal(first.ID, msgs[1].ID)
	s.Equal("hi alice", msgs[0].Body)
	s.Equal(message.StatusSent, msgs[0].Status)
}

func (s *MessageRepoIntegrationTestSuite) Test_List_CursorPagination() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s.saveMessage(s.alice.ID, s.bob.ID, "page me")
	}

	firstPage, err := s.msgRepo.ListConversation(ctx, s.alice.ID, s.bob.ID, "", 2)
	s.NoError(err)
	s.Len(firstPage, 2)

	cursor := firstPage[len(firstPage)-1].ID
	secondPage, err := s.msgRepo.ListConversation(ctx, s.alice.ID, s.bob.ID, cursor, 2)
	s.NoError(err)
	s.Len(secondPage, 2)

	seen := map[string]bool{}
	prev := ""
	for _, m := range append(firstPage, secondPage...) {
		s.False(seen[m.ID], "message %s returned twice", m.ID)
		seen[m.ID] = true
		if prev != "" {
			s.Less(m.ID, prev)
		}
		prev = m.ID
	}
}

func (s *MessageRepoIntegrationTestSuite) Test_List_DoesNotLeakOtherConversations() {
	ctx := context.Background()

	carol := s.seedUser(ctx, "carol@example.com", "carol")
	leaked := s.saveMessage(s.alice.ID, carol.ID, "just for carol")

	msgs, err := s.msgRepo.ListConversation(ctx, s.alice.ID, s.bob.ID, "", 100)

	s.NoError(err)
	for _, m := range msgs {
		s.NotEqual(leaked.ID, m.ID)
	}
}

func (s *MessageRepoIntegrationTestSuite) Test_FindByIdentifier() {
	ctx := context.Background()

	byUsername, err := s.userRepo.FindByIdentifier(ctx, "alice")
	s.NoError(err)
	s.Equal(s.alice.ID, byUsername.ID)

	byEmail, err := s.userRepo.FindByIdentifier(ctx, "alice@example.com")
	s.NoError(err)
	s.Equal(s.alice.ID, byEmail.ID)

	_, err = s.userRepo.FindByIdentifier(ctx, "nobody")
	s.ErrorIs(err, user.ErrUserNotFound)
}
