// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
)

// repoErrors translates persistence sentinels into the client-facing taxonomy.
var repoErrors = []struct {
	sentinel error
	domain   *domainerrors.BaseError
}{
	{repository.ErrInvalidID, domainerrors.ErrInvalidID},
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists},
	{repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound},
	{repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound},
	{repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound},
	{repository.ErrPlaylistNotFound, domainerrors.ErrPlaylistNotFound},
	{repository.ErrLikeNotFound, domainerrors.ErrNotFound},
	{repository.ErrSubscriptionNotFound, domainerrors.ErrNotFound},
}

// mapRepoError keeps the original error as context and leaves unknown errors untouched.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range repoErrors {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.domain, err.Error())
		}
	}

	return err
}
