package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
)

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

type UpdateAccountInput struct {
	FullName string
	Email    string
}

// UserUsecase manages the authenticated user's own account and channel views.
type UserUsecase interface {
	ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) error
	CurrentUser(ctx context.Context, userID string) (*entity.Identity, error)
	UpdateAccount(ctx context.Context, userID string, input *UpdateAccountInput) (*entity.Identity, error)
	// UpdateAvatar and UpdateCoverImage delete the previous asset once the new one is stored.
	UpdateAvatar(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error)
	UpdateCoverImage(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error)
	ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error)
	DeleteAccount(ctx context.Context, userID string) error
}
