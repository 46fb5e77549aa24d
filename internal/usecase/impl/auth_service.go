package impl

import (
	"context"
	"crypto/subtle"
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

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storage      service.AssetStorage
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.AssetStorage
	Logger       *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeHandle folds usernames and emails so uniqueness is case-insensitive.
func normalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Signup checks uniqueness before uploading anything, then stores the user.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	username := normalizeHandle(input.Username)
	email := normalizeHandle(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("username", username))

	taken, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if taken {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	if input.Avatar == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingFile.WithMessage("avatar file is required"))
	}
	avatar, err := srv.storage.Upload(ctx, *input.Avatar)
	if err != nil {
		srv.log(ctx).Warn("Avatar upload failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("avatar upload failed"), err.Error())
	}

	var coverURL string
	if input.CoverImage != nil {
		cover, err := srv.storage.Upload(ctx, *input.CoverImage)
		if err != nil {
			srv.log(ctx).Warn("Cover image upload failed", slog.Any("error", err))
			discardAsset(ctx, srv.storage, srv.log(ctx), avatar.URL, service.AssetImage)

			return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("cover image upload failed"), err.Error())
		}
		coverURL = cover.URL
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.discardUploads(ctx, avatar.URL, coverURL)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:   username,
		Email:      email,
		FullName:   strings.TrimSpace(input.FullName),
		Password:   hash,
		Avatar:     avatar.URL,
		CoverImage: coverURL,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.discardUploads(ctx, avatar.URL, coverURL)

		return nil, mapRepoError(err)
	}
	srv.log(ctx).Debug("User registered", slog.String("userID", user.ID))

	user.Password = ""

	return user, nil
}

func (srv *authService) discardUploads(ctx context.Context, urls ...string) {
	for _, url := range urls {
		discardAsset(ctx, srv.storage, srv.log(ctx), url, service.AssetImage)
	}
}

// Signin answers unknown users and wrong passwords with the same error.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, normalizeHandle(input.Username), normalizeHandle(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Signin with wrong password", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
	}

	pair, err := srv.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.SigninOutput{User: entity.IdentityOf(user), Tokens: *pair}, nil
}

func (srv *authService) Logout(ctx context.Context, userID string) error {
	if err := srv.userRepo.SetRefreshToken(ctx, userID, ""); err != nil {
		return mapRepoError(err)
	}
	srv.log(ctx).Info("User logged out", slog.String("userID", userID))

	return nil
}

// RefreshToken is single use: the presented token must byte-match the stored one, which rotation overwrites.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing.WithMessage("refresh token is missing"))
	}

	claims, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "unknown user")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(refreshToken)) != 1 {
		srv.log(ctx).Warn("Superseded refresh token presented", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	return srv.issuePair(ctx, user)
}

// issuePair signs both tokens and persists the refresh token, replacing any previous one.
func (srv *authService) issuePair(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	access, err := srv.tokenService.IssueAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	refresh, err := srv.tokenService.IssueRefreshToken(user)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	if err := srv.userRepo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, errors.Wrap(mapRepoError(err), "failed to store refresh token")
	}

	return &entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if accessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	claims, err := srv.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	identity, err := srv.userRepo.FindIdentityByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return identity, nil
}
