package storage

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishlist/internal/config"
)

func newTestDeps(t *testing.T) *S3Deps {
	t.Helper()

	deps, err := NewS3Deps(context.Background(), config.Config{
		AWSRegion:        "us-east-1",
		S3Endpoint:       "http://minio:9000",
		S3PublicEndpoint: "http://localhost:9000",
		S3AccessKey:      "minio",
		S3SecretKey:      "minio-secret",
		S3Bucket:         "wishlist",
		S3Prefix:         "products",
		S3UsePathStyle:   true,
		S3URLExpirySec:   600,
	})
	require.NoError(t, err)
	return deps
}

func TestProductImageKey(t *testing.T) {
	deps := newTestDeps(t)

	key := deps.ProductImageKey("p-1", "u-1", "my photo (1).png")
	assert.Equal(t, "products/p-1/u-1_my_photo__1_.png", key)
}

func TestSignURLs_UsePublicEndpoint(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	put, err := deps.SignPutURL(ctx, "products/p-1/a.png", "image/png")
	require.NoError(t, err)

	u, err := url.Parse(put)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/wishlist/products/p-1/a.png", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	get, err := deps.SignGetURL(ctx, "products/p-1/a.png")
	require.NoError(t, err)
	assert.Contains(t, get, "http://localhost:9000/wishlist/products/p-1/a.png?")
	assert.Equal(t, 600.0, deps.Expiry().Seconds())
}
