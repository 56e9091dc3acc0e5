package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	UserID      uuid.UUID  `json:"user_id"`
	DisplayName string     `json:"display_name"`
	Gender      string     `json:"gender"`
	Birthday    *time.Time `json:"birthday"`
	// Horoscope and Zodiac are derived from Birthday on every write that
	// carries one; empty when Birthday is absent.
	Horoscope string   `json:"horoscope"`
	Zodiac    string   `json:"zodiac"`
	Height    *int     `json:"height"`
	Weight    *int     `json:"weight"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// Upsert creates the row when absent and overwrites it otherwise.
	Upsert(ctx context.Context, p *Profile) error
}
