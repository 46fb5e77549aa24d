// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record behind every channel on the platform.
type User struct {
	ID           string    `json:"_id"`        // Hex-encoded document identifier.
	Username     string    `json:"username"`   // Unique, stored lower-cased and trimmed.
	Email        string    `json:"email"`      // Unique, stored lower-cased.
	FullName     string    `json:"fullName"`   // Display name.
	Password     string    `json:"-"`          // bcrypt hash, never the plaintext.
	Avatar       string    `json:"avatar"`     // Public URL of the avatar image.
	CoverImage   string    `json:"coverImage"` // Public URL of the cover image, empty when unset.
	WatchHistory []string  `json:"watchHistory"`
	RefreshToken string    `json:"-"` // The single refresh token currently accepted for this user.
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller resolved for a request.
// It never carries secrets.
type Identity struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage"`
}

// IdentityOf strips secrets from a user record.
func IdentityOf(u *User) *Identity {
	return &Identity{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
	}
}

// OwnerSummary is the public projection of a user embedded in other views.
type OwnerSummary struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar"`
}
