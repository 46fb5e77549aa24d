package usecase

import (
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination_Request(t *testing.T) {
	p := Pagination{DefaultLimit: 10, MaxLimit: 50}

	tests := []struct {
		name        string
		page, limit int
		want        entity.PageRequest
		wantErr     bool
	}{
		{name: "defaults", want: entity.PageRequest{Page: 1, Limit: 10}},
		{name: "explicit", page: 2, limit: 10, want: entity.PageRequest{Page: 2, Limit: 10}},
		{name: "capped", page: 1, limit: 500, want: entity.PageRequest{Page: 1, Limit: 50}},
		{name: "negative page", page: -1, wantErr: true},
		{name: "negative limit", limit: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Request(tt.page, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidPage)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
