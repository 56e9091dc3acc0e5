package http

import (
	"time"

	"github.com/youapp/youapp-api/internal/domain/message"
	"github.com/youapp/youapp-api/internal/domain/profile"
)

// Auth DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Username also accepts the registered email.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	Birthday    *string   `json:"birthday"`
	Horoscope   string    `json:"horoscope"`
	Zodiac      string    `json:"zodiac"`
	Height      *int      `json:"height"`
	Weight      *int      `json:"weight"`
	Interests   []string  `json:"interests"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertProfileRequest struct {
	DisplayName *string  `json:"display_name"`
	Gender      *string  `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Birthday    *string  `json:"birthday"`
	Height      *int     `json:"height"`
	Weight      *int     `json:"weight"`
	Interests   []string `json:"interests"`
	Bio         *string  `json:"bio"`
	AvatarURL   *string  `json:"avatar_url"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		DisplayName: p.DisplayName,
		Gender:      p.Gender,
		Horoscope:   p.Horoscope,
		Zodiac:      p.Zodiac,
		Height:      p.Height,
		Weight:      p.Weight,
		Interests:   p.Interests,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		UpdatedAt:   p.UpdatedAt,
	}
	if dto.Interests == nil {
		dto.Interests = []string{}
	}
	if p.Birthday != nil {
		birthday := p.Birthday.Format("2006-01-02")
		dto.Birthday = &birthday
	}
	return dto
}

// Message DTOs

type SendMessageRequest struct {
	// ToUser is the recipient's username, email, or id.
	ToUser string `json:"to_user" binding:"required"`
	Body   string `json:"body"`
}

type MessageDTO struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ViewMessagesResponse struct {
	Messages   []MessageDTO `json:"messages"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func ToMessageDTO(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		From:      m.From.String(),
		To:        m.To.String(),
		Body:      m.Body,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
