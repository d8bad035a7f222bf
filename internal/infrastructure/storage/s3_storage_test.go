package storage

import (
	"context"
	"testing"
	"time"

	infraconfig "github.com/bizledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorageConfig() *infraconfig.StorageConfig {
	return &infraconfig.StorageConfig{
		Endpoint:          "localhost:9000",
		Region:            "ap-southeast-1",
		Bucket:            "bizledger-test",
		AccessKey:         "test-access",
		SecretKey:         "test-secret",
		UsePathStyle:      true,
		PresignExpiration: 15 * time.Minute,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	_, err := NewS3ObjectStorage(nil)
	assert.Error(t, err)

	cfg := testStorageConfig()
	cfg.Bucket = ""
	_, err = NewS3ObjectStorage(cfg)
	assert.ErrorContains(t, err, "bucket")

	cfg = testStorageConfig()
	cfg.SecretKey = ""
	_, err = NewS3ObjectStorage(cfg)
	assert.ErrorContains(t, err, "credentials")
}

func TestS3ObjectStorage_PresignedURLs(t *testing.T) {
	// presigning is pure request signing, no network round trip needed
	st, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	uploadURL, expiresAt, err := st.GenerateUploadURL(ctx, "products/abc/image.png", "image/png", 10*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, uploadURL, "products/abc/image.png")
	assert.Contains(t, uploadURL, "X-Amz-Signature")
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 5*time.Second)

	downloadURL, _, err := st.GenerateDownloadURL(ctx, "employees/def/resume.pdf", 0)
	require.NoError(t, err)
	assert.Contains(t, downloadURL, "employees/def/resume.pdf")
	assert.Contains(t, downloadURL, "X-Amz-Signature")
}

func TestS3ObjectStorage_EmptyKeyRejected(t *testing.T) {
	st, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = st.GenerateUploadURL(ctx, "", "image/png", time.Minute)
	assert.Error(t, err)
	_, _, err = st.GenerateDownloadURL(ctx, "", time.Minute)
	assert.Error(t, err)
	assert.Error(t, st.DeleteObject(ctx, ""))
	_, err = st.ObjectExists(ctx, "")
	assert.Error(t, err)
}
