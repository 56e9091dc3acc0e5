package message

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/youapp/youapp-api/internal/domain/user"
	"github.com/youapp/youapp-api/pkg/apperror"
)

// resolveUserID turns a human-facing handle into the canonical user id.
// A literal uuid is accepted as is; anything else goes through the
// username-or-email lookup.
func resolveUserID(ctx context.Context, repo user.Repository, identifier string) (uuid.UUID, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		return id, nil
	}

	u, err := repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return uuid.Nil, apperror.NewNotFound("user", identifier)
		}
		return uuid.Nil, err
	}
	return u.ID, nil
}
