package entity

import "time"

// TokenKind separates the two signing keys.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

func (k TokenKind) String() string {
	if k == RefreshToken {
		return "refresh"
	}

	return "access"
}

// AccessClaims mirror the user record at issuance time.
type AccessClaims struct {
	UserID    string
	Email     string
	Username  string
	FullName  string
	ExpiresAt time.Time
}

// RefreshClaims only identify the user.
type RefreshClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// TokenPair is handed to the client on signin and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
