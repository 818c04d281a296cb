package webassets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gallery-build/core/storage"
	"gallery-build/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testStorage = storage.Config{Bucket: "gallery-web", Region: "us-east-1"}

func seedPublishDir(t *testing.T) string {
	t.Helper()
	dir := seedDataDir(t, "index.html", "style.css", "style.css.gz")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.png"), []byte("png"), 0644))
	return dir
}

func TestNewPublisher(t *testing.T) {
	_, err := NewPublisher(new(mocks.Client), testStorage, PublishConfig{Include: ""}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewPublisher(new(mocks.Client), testStorage, PublishConfig{Include: "[abc"}, zap.NewNop())
	assert.Error(t, err)

	p, err := NewPublisher(new(mocks.Client), testStorage, PublishConfig{Include: "**/*", Prefix: "/ota/"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "ota/index.html", p.objectKey("index.html"))
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("Uploads Everything", func(t *testing.T) {
		dir := seedPublishDir(t)
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(true, nil)
		client.On("PutObject", mock.Anything, "gallery-web", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "**/*", Prefix: "v1"}, zap.NewNop())
		require.NoError(t, err)

		report, err := p.Publish(context.Background(), dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"index.html", "style.css", "style.css.gz", "img/logo.png"}, report.Uploaded)
		assert.Empty(t, report.Failed)
		assert.Greater(t, report.Bytes, int64(0))

		client.AssertCalled(t, "PutObject", mock.Anything, "gallery-web", "v1/img/logo.png", mock.Anything, int64(3), mock.Anything)
		client.AssertCalled(t, "PutObject", mock.Anything, "gallery-web", "v1/style.css.gz", mock.Anything, mock.Anything,
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return opts.ContentEncoding == "gzip" && strings.HasPrefix(opts.ContentType, "text/css")
			}))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Include Filter", func(t *testing.T) {
		dir := seedPublishDir(t)
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(true, nil)
		client.On("PutObject", mock.Anything, "gallery-web", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "*.gz, img/**"}, zap.NewNop())
		require.NoError(t, err)

		report, err := p.Publish(context.Background(), dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"style.css.gz", "img/logo.png"}, report.Uploaded)
		assert.ElementsMatch(t, []string{"index.html", "style.css"}, report.Skipped)
		client.AssertNumberOfCalls(t, "PutObject", 2)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		dir := seedDataDir(t, "index.html")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "gallery-web", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
		client.On("PutObject", mock.Anything, "gallery-web", "index.html", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "**/*"}, zap.NewNop())
		require.NoError(t, err)

		_, err = p.Publish(context.Background(), dir)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Bucket Error Aborts", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(false, errors.New("access denied"))

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "**/*"}, zap.NewNop())
		require.NoError(t, err)

		_, err = p.Publish(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Failure Is Per File", func(t *testing.T) {
		dir := seedDataDir(t, "index.html", "app.js")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(true, nil)
		client.On("PutObject", mock.Anything, "gallery-web", "app.js", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("timeout"))
		client.On("PutObject", mock.Anything, "gallery-web", "index.html", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "**/*"}, zap.NewNop())
		require.NoError(t, err)

		report, err := p.Publish(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js"}, report.Failed)
		assert.Equal(t, []string{"index.html"}, report.Uploaded)
	})

	t.Run("Missing Data Dir", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gallery-web").Return(true, nil)

		p, err := NewPublisher(client, testStorage, PublishConfig{Include: "**/*"}, zap.NewNop())
		require.NoError(t, err)

		_, err = p.Publish(context.Background(), filepath.Join(t.TempDir(), "data"))
		assert.Error(t, err)
	})
}

func TestObjectOptions(t *testing.T) {
	opts := objectOptions("index.html.gz")
	assert.Equal(t, "gzip", opts.ContentEncoding)
	assert.Contains(t, opts.ContentType, "text/html")

	opts = objectOptions("app.js")
	assert.Empty(t, opts.ContentEncoding)
	assert.NotEmpty(t, opts.ContentType)

	opts = objectOptions("firmware.bin")
	assert.Empty(t, opts.ContentEncoding)
	assert.NotEmpty(t, opts.ContentType)
}
