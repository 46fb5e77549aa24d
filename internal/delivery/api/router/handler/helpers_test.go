package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/config"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/validator"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	aliceID = "65a000000000000000000001"
	videoID = "65b000000000000000000001"
)

type envelope struct {
	StatusCode int              `json:"statusCode"`
	Success    bool             `json:"success"`
	Code       string           `json:"code"`
	Data       json.RawMessage  `json:"data"`
	Message    string           `json:"message"`
	Errors     []map[string]any `json:"errors"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 24 * time.Hour
	cfg.Cookie.Secure = true
	cfg.Cookie.SameSite = "strict"

	return cfg
}

// newTestEcho wires the production error handler and validator.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// as stands in for the auth middleware.
func as(userID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &entity.Identity{ID: userID, Username: "alice"})

			return next(c)
		}
	}
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))

	return v
}
