package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
)

type userService struct {
	userRepo      repository.UserRepository
	readModelRepo repository.ReadModelRepository
	hasher        service.PasswordHasher
	storage       service.AssetStorage
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	ReadModelRepo repository.ReadModelRepository
	Hasher        service.PasswordHasher
	Storage       service.AssetStorage
	Logger        *slog.Logger
}

func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		readModelRepo: params.ReadModelRepo,
		hasher:        params.Hasher,
		storage:       params.Storage,
		logger:        params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword re-hashes and, through the repository, ends every refresh session.
func (srv *userService) ChangePassword(ctx context.Context, userID string, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapRepoError(err)
	}

	if !srv.hasher.Check(input.OldPassword, user.Password) {
		return errors.WithStack(domainerrors.ErrWrongPassword)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return mapRepoError(err)
	}
	srv.log(ctx).Info("Password changed", slog.String("userID", userID))

	return nil
}

func (srv *userService) CurrentUser(ctx context.Context, userID string) (*entity.Identity, error) {
	identity, err := srv.userRepo.FindIdentityByID(ctx, userID)

	return identity, mapRepoError(err)
}

func (srv *userService) UpdateAccount(ctx context.Context, userID string, input *usecase.UpdateAccountInput) (*entity.Identity, error) {
	identity, err := srv.userRepo.UpdateAccount(ctx, userID, strings.TrimSpace(input.FullName), normalizeHandle(input.Email))

	return identity, mapRepoError(err)
}

func (srv *userService) UpdateAvatar(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error) {
	return srv.replaceImage(ctx, userID, asset, "avatar",
		func(id *entity.Identity) string { return id.Avatar },
		srv.userRepo.UpdateAvatar,
	)
}

func (srv *userService) UpdateCoverImage(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error) {
	return srv.replaceImage(ctx, userID, asset, "cover image",
		func(id *entity.Identity) string { return id.CoverImage },
		srv.userRepo.UpdateCoverImage,
	)
}

// replaceImage uploads first, stores the new URL, then deletes the old asset best-effort.
func (srv *userService) replaceImage(
	ctx context.Context,
	userID string,
	asset *service.Asset,
	label string,
	current func(*entity.Identity) string,
	store func(ctx context.Context, id, url string) (*entity.Identity, error),
) (*entity.Identity, error) {
	if asset == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingFile.WithMessage(label + " file is missing"))
	}

	before, err := srv.userRepo.FindIdentityByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	uploaded, err := srv.storage.Upload(ctx, *asset)
	if err != nil {
		srv.log(ctx).Warn("Image upload failed", slog.String("kind", label), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("error while uploading "+label), err.Error())
	}

	after, err := store(ctx, userID, uploaded.URL)
	if err != nil {
		discardAsset(ctx, srv.storage, srv.log(ctx), uploaded.URL, service.AssetImage)

		return nil, mapRepoError(err)
	}

	if old := current(before); old != "" && old != uploaded.URL {
		if err := srv.storage.Delete(ctx, old, service.AssetImage); err != nil {
			srv.log(ctx).Warn("Failed to delete previous image", slog.String("url", old), slog.Any("error", err))
		}
	}

	return after, nil
}

func (srv *userService) ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("username is missing"))
	}

	profile, err := srv.readModelRepo.ChannelProfile(ctx, username, requesterID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrChannelNotFound, username)
	}

	return profile, mapRepoError(err)
}

func (srv *userService) WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error) {
	history, err := srv.readModelRepo.WatchHistory(ctx, userID)

	return history, mapRepoError(err)
}

func (srv *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := srv.userRepo.SoftDelete(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	srv.log(ctx).Info("Account soft deleted", slog.String("userID", userID))

	return nil
}
