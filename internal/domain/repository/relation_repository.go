package repository

import (
	"context"

	"vidtube/internal/domain/entity"
)

type LikeRepository interface {
	Find(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (*entity.Like, error)

	// Create returns ErrLikeExists when the (subject, likedBy) pair is already stored.
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, id string) error
	DeleteBySubject(ctx context.Context, subject entity.LikeSubject, subjectID string) error
	DeleteBySubjects(ctx context.Context, subject entity.LikeSubject, subjectIDs []string) error
}

type SubscriptionRepository interface {
	Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)

	// Create returns ErrSubscriptionExists when the pair is already stored.
	Create(ctx context.Context, sub *entity.Subscription) error
	Delete(ctx context.Context, id string) error
}
