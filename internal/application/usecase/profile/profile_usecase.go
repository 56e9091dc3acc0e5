package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/youapp/youapp-api/internal/domain/profile"
	"github.com/youapp/youapp-api/internal/domain/zodiac"
	"github.com/youapp/youapp-api/pkg/apperror"
	"github.com/youapp/youapp-api/pkg/logger"
)

const birthdayLayout = "2006-01-02"

type ProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		logger:      log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

// UpsertProfileInput carries the writable profile attributes. Nil pointers
// mean "leave as is" on update; on create they just stay empty.
type UpsertProfileInput struct {
	UserID      uuid.UUID
	DisplayName *string
	Gender      *string
	Birthday    *string
	Height      *int
	Weight      *int
	Interests   []string
	Bio         *string
	AvatarURL   *string
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpsertProfile backs both the create and the update endpoint: the
// write creates the row when absent. Whenever a birthday arrives, horoscope
// and zodiac are recomputed and persisted in the same write.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		p = &profile.Profile{UserID: input.UserID, Interests: []string{}}
	}

	if input.DisplayName != nil {
		p.DisplayName = *input.DisplayName
	}
	if input.Gender != nil {
		p.Gender = *input.Gender
	}
	if input.Birthday != nil {
		birthday, err := time.ParseInLocation(birthdayLayout, *input.Birthday, time.UTC)
		if err != nil {
			return nil, apperror.NewInvalidInput("birthday must be formatted as YYYY-MM-DD", err)
		}
		sign := zodiac.Resolve(birthday)
		p.Birthday = &birthday
		p.Horoscope = sign.Horoscope
		p.Zodiac = sign.Animal
	}
	if input.Height != nil {
		p.Height = input.Height
	}
	if input.Weight != nil {
		p.Weight = input.Weight
	}
	if input.Interests != nil {
		// stored as sent; the interest editor dedups client side
		p.Interests = input.Interests
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		p.AvatarURL = *input.AvatarURL
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return &UpsertProfileOutput{Profile: p}, nil
}
