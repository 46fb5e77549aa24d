package repository

import (
	"context"

	"vidtube/internal/domain/entity"
)

// UserRepository is the credential store. Soft-deleted users are invisible to every lookup.
type UserRepository interface {
	// Create persists a new user and fills in its ID and timestamps.
	// It returns ErrUserAlreadyExists when the username or email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the full record, secrets included.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindIdentityByID selects only non-secret fields.
	FindIdentityByID(ctx context.Context, id string) (*entity.Identity, error)

	// FindByLogin matches either the username or the email; empty values are ignored.
	FindByLogin(ctx context.Context, username, email string) (*entity.User, error)

	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// SetRefreshToken overwrites the single stored refresh token; an empty token clears it.
	SetRefreshToken(ctx context.Context, id, token string) error

	// UpdatePassword stores a new hash and clears the refresh token.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.Identity, error)
	UpdateAvatar(ctx context.Context, id, url string) (*entity.Identity, error)
	UpdateCoverImage(ctx context.Context, id, url string) (*entity.Identity, error)

	// AddToWatchHistory appends the video unless it is already present.
	AddToWatchHistory(ctx context.Context, userID, videoID string) (bool, error)

	SoftDelete(ctx context.Context, id string) error
}
