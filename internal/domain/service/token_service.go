package service

import "vidtube/internal/domain/entity"

// TokenService issues and verifies the two classes of signed tokens.
// Implementations are stateless; persisting the refresh token is the caller's job.
type TokenService interface {
	// IssueAccessToken signs the user's identity claims with the access key.
	IssueAccessToken(user *entity.User) (string, error)

	// IssueRefreshToken signs the user's id with the refresh key.
	IssueRefreshToken(user *entity.User) (string, error)

	// VerifyAccessToken fails with ErrTokenExpired or ErrTokenInvalid.
	VerifyAccessToken(token string) (*entity.AccessClaims, error)

	// VerifyRefreshToken fails with ErrTokenExpired or ErrTokenInvalid.
	VerifyRefreshToken(token string) (*entity.RefreshClaims, error)
}
