package validator

import (
	"testing"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishRequest struct {
	Title       string `form:"title" validate:"required,min=3,max=100"`
	Description string `form:"description" validate:"required,min=10,max=500"`
	SortType    string `query:"sortType" validate:"omitempty,oneof=asc desc"`
}

func TestValidator_ReportsEveryViolation(t *testing.T) {
	v := New()

	err := v.Validate(&publishRequest{Title: "ab", SortType: "up"})
	require.Error(t, err)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	violations, ok := appErr.Details().([]domainerrors.FieldViolation)
	require.True(t, ok)
	require.Len(t, violations, 3)

	byField := map[string]domainerrors.FieldViolation{}
	for _, fv := range violations {
		byField[fv.Field] = fv
	}
	assert.Equal(t, "min", byField["title"].Rule)
	assert.Equal(t, "title must be at least 3 characters", byField["title"].Message)
	assert.Equal(t, "required", byField["description"].Rule)
	assert.Equal(t, "oneof", byField["sortType"].Rule)
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&publishRequest{Title: "Cats", Description: "ten chars or more"}))
}
