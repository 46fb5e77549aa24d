// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// Domain-specific persistence errors. Implementations wrap these so callers can use errors.Is.
var (
	ErrInvalidID            = errors.New("invalid identifier")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user with email or username already exists")
	ErrVideoNotFound        = errors.New("video not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrTweetNotFound        = errors.New("tweet not found")
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrLikeNotFound         = errors.New("like not found")
	ErrLikeExists           = errors.New("like already exists")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionExists   = errors.New("subscription already exists")
)
