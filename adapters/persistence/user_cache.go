package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/logger"
)

const userCacheTTL = 10 * time.Minute

// cachedUser exists because user.User hides PasswordHash from JSON; the
// cache entry needs the full row so login keeps working on a cache hit.
type cachedUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// cachedUserRepo fronts the user repo with a redis lookaside cache. Identifier
// resolution runs on every message send and list, so the username/email ->
// user mapping is the hottest read in the system. Users never change their
// handles in scope, which is why a plain TTL is enough.
type cachedUserRepo struct {
	inner  user.Repository
	rdb    *redis.Client
	logger logger.Logger
}

func NewCachedUserRepo(inner user.Repository, rdb *redis.Client, log logger.Logger) user.Repository {
	return &cachedUserRepo{inner: inner, rdb: rdb, logger: log}
}

func (r *cachedUserRepo) Create(ctx context.Context, u *user.User) error {
	return r.inner.Create(ctx, u)
}

func (r *cachedUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	key := "user:id:" + id.String()
	if u, ok := r.get(ctx, key); ok {
		return u, nil
	}

	u, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, u)
	return u, nil
}

func (r *cachedUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	key := "user:ident:" + identifier
	if u, ok := r.get(ctx, key); ok {
		return u, nil
	}

	u, err := r.inner.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, u)
	return u, nil
}

func (r *cachedUserRepo) get(ctx context.Context, key string) (*user.User, bool) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Redis get failed, falling back to Postgres", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	cu := &cachedUser{}
	if err := json.Unmarshal(raw, cu); err != nil {
		r.logger.Warn("Failed to unmarshal cached user", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &user.User{
		ID:           cu.ID,
		Email:        cu.Email,
		Username:     cu.Username,
		PasswordHash: cu.PasswordHash,
		CreatedAt:    cu.CreatedAt,
		UpdatedAt:    cu.UpdatedAt,
	}, true
}

func (r *cachedUserRepo) set(ctx context.Context, key string, u *user.User) {
	raw, err := json.Marshal(cachedUser{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, raw, userCacheTTL).Err(); err != nil {
		r.logger.Warn("Redis set failed", zap.String("key", key), zap.Error(err))
	}
}
