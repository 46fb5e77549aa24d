package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetIdentity(c))
	assert.Nil(t, GetIdentityFromContext(c.Request().Context()))

	alice := &entity.Identity{ID: "65a000000000000000000001", Username: "alice"}
	SetIdentity(c, alice)

	assert.Same(t, alice, GetIdentity(c))
	assert.Same(t, alice, GetIdentityFromContext(c.Request().Context()), "services see the caller through ctx")
}

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Len(t, GetRequestID(c), 36, "a fresh uuid when unset")

	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerFallback(t *testing.T) {
	assert.Nil(t, GetLogger(context.Background()))

	fallback := newDiscard()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := newDiscard()
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func newDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
