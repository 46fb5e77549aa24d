package usecase

import (
	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
)

// Pagination turns raw page parameters into a validated window.
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func NewPagination(cfg *config.Config) Pagination {
	return Pagination{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}
}

// Request treats zero as unset; negative values are rejected. The limit is capped at MaxLimit.
func (p Pagination) Request(page, limit int) (entity.PageRequest, error) {
	if page < 0 || limit < 0 {
		return entity.PageRequest{}, domainerrors.ErrInvalidPage
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	return entity.PageRequest{Page: page, Limit: limit}, nil
}
