package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"
)

const (
	aliceID = "65f0c0ffee00000000000a11"
	bobID   = "65f0c0ffee00000000000b0b"
	videoID = "65f0c0ffee0000000000f11e"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Token: config.TokenConfig{AccessTTL: time.Minute, RefreshTTL: time.Hour},
		Pagination: config.PaginationConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
	}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}

func testPagination() usecase.Pagination {
	return usecase.NewPagination(newTestConfig())
}

func imageAsset(name string) *service.Asset {
	return &service.Asset{Kind: service.AssetImage, FileName: name, ContentType: "image/png", Body: strings.NewReader("png")}
}
