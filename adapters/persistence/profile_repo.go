package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/youapp/youapp-api/internal/domain/profile"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT user_id, display_name, gender, birthday, horoscope, zodiac,
		       height, weight, interests, bio, avatar_url, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &profile.Profile{}
	var interestsBytes []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.DisplayName,
		&p.Gender,
		&p.Birthday,
		&p.Horoscope,
		&p.Zodiac,
		&p.Height,
		&p.Weight,
		&interestsBytes,
		&p.Bio,
		&p.AvatarURL,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if err := json.Unmarshal(interestsBytes, &p.Interests); err != nil {
		r.logger.Warn("Failed to unmarshal interests", zap.String("user_id", userID.String()), zap.Error(err))
		p.Interests = []string{}
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	interestsBytes, err := json.Marshal(p.Interests)
	if err != nil {
		return apperror.NewInternal("failed to marshal interests", err)
	}

	query := `
		INSERT INTO profiles (user_id, display_name, gender, birthday, horoscope, zodiac,
		                      height, weight, interests, bio, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			gender = EXCLUDED.gender,
			birthday = EXCLUDED.birthday,
			horoscope = EXCLUDED.horoscope,
			zodiac = EXCLUDED.zodiac,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			interests = EXCLUDED.interests,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		p.UserID,
		p.DisplayName,
		p.Gender,
		p.Birthday,
		p.Horoscope,
		p.Zodiac,
		p.Height,
		p.Weight,
		interestsBytes,
		p.Bio,
		p.AvatarURL,
		p.UpdatedAt,
	)

	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
