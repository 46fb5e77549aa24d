// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new channel.
type SignupInput struct {
	FullName   string
	Username   string
	Email      string
	Password   string
	Avatar     *service.Asset
	CoverImage *service.Asset // Optional.
}

// SigninInput accepts either the username or the email.
type SigninInput struct {
	Username string
	Email    string
	Password string
}

// --- Output DTOs ---

// SigninOutput returns the caller's identity and a fresh token pair.
type SigninOutput struct {
	User   *entity.Identity
	Tokens entity.TokenPair
}

// AuthUsecase covers credential issuance and the token lifecycle.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
	// Logout clears the stored refresh token, ending every refresh session of the user.
	Logout(ctx context.Context, userID string) error
	// RefreshToken rotates the pair. A token that no longer matches the stored one is rejected.
	RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	// Authenticate resolves the identity behind an access token.
	Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error)
}
