package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/service"
)

// discardAsset deletes a stored asset best-effort.
func discardAsset(ctx context.Context, storage service.AssetStorage, logger *slog.Logger, url string, kind service.AssetKind) {
	if url == "" {
		return
	}
	if err := storage.Delete(ctx, url, kind); err != nil {
		logger.Warn("Failed to delete asset", slog.String("url", url), slog.Any("error", err))
	}
}
