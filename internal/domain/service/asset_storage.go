package service

import (
	"context"
	"io"
)

// AssetKind groups uploaded media by purpose; it selects the key prefix in the bucket.
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

// Asset describes one file handed to the storage collaborator.
type Asset struct {
	Kind        AssetKind
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Duration    float64 // Seconds, when the client reported it for a video.
}

// StoredAsset is the public location of an uploaded file.
type StoredAsset struct {
	URL      string
	Duration float64
}

// AssetStorage moves uploaded media to remote object storage.
type AssetStorage interface {
	Upload(ctx context.Context, asset Asset) (*StoredAsset, error)

	// Delete removes the object behind a URL previously returned by Upload.
	Delete(ctx context.Context, url string, kind AssetKind) error
}
