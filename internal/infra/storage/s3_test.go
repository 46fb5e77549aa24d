package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(input.Body)
	f.body = string(b)

	return &manager.UploadOutput{Location: "https://bucket.s3.amazonaws.com/" + aws.ToString(input.Key)}, nil
}

type fakeDeleter struct {
	keys []string
}

func (f *fakeDeleter) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.keys = append(f.keys, aws.ToString(input.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func newTestStorage(baseURL string) (*S3Storage, *fakeUploader, *fakeDeleter) {
	up, del := &fakeUploader{}, &fakeDeleter{}
	cfg := config.ObjectStoreConfig{Bucket: "media", PublicBaseURL: baseURL}

	return newS3Storage(up, del, cfg, slog.New(slog.DiscardHandler)), up, del
}

func TestS3Storage_Upload(t *testing.T) {
	s, up, _ := newTestStorage("https://cdn.example.com/")

	stored, err := s.Upload(context.Background(), service.Asset{
		Kind:        service.AssetVideo,
		FileName:    "Holiday.MP4",
		ContentType: "video/mp4",
		Body:        strings.NewReader("bytes"),
		Duration:    42.5,
	})
	require.NoError(t, err)

	key := aws.ToString(up.input.Key)
	assert.True(t, strings.HasPrefix(key, "videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.Equal(t, "media", aws.ToString(up.input.Bucket))
	assert.Equal(t, "video/mp4", aws.ToString(up.input.ContentType))
	assert.Equal(t, "bytes", up.body)
	assert.Equal(t, "https://cdn.example.com/"+key, stored.URL)
	assert.Equal(t, 42.5, stored.Duration)
}

func TestS3Storage_Upload_FallsBackToLocation(t *testing.T) {
	s, up, _ := newTestStorage("")

	stored, err := s.Upload(context.Background(), service.Asset{Kind: service.AssetImage, FileName: "a.png", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/"+aws.ToString(up.input.Key), stored.URL)
}

func TestS3Storage_Upload_Errors(t *testing.T) {
	s, up, _ := newTestStorage("https://cdn.example.com")

	_, err := s.Upload(context.Background(), service.Asset{Kind: service.AssetImage})
	assert.Error(t, err)

	up.err = errors.New("boom")
	_, err = s.Upload(context.Background(), service.Asset{Kind: service.AssetImage, FileName: "a.png", Body: strings.NewReader("x")})
	assert.ErrorContains(t, err, "boom")
}

func TestS3Storage_Delete(t *testing.T) {
	s, _, del := newTestStorage("https://cdn.example.com")

	require.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/images/abc.png", service.AssetImage))
	require.NoError(t, s.Delete(context.Background(), "", service.AssetImage))
	require.NoError(t, s.Delete(context.Background(), "https://elsewhere.example.com/avatar.png", service.AssetImage))

	assert.Equal(t, []string{"images/abc.png"}, del.keys)
}
