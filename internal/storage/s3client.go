// internal/storage/s3client.go
package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"time"

	"wishlist/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Deps struct {
	Client  *s3.Client        // 内部アクセス用（サーバ→MinIO/S3）
	Presign *s3.PresignClient // 署名URL作成用（公開エンドポイントでサイン）
	Bucket  string
	Prefix  string
	Expire  time.Duration
}

func NewS3Deps(ctx context.Context, c config.Config) (*S3Deps, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(c.AWSRegion),
	}
	// without static keys the default chain (IAM role, env, profile) applies
	if c.S3AccessKey != "" && c.S3SecretKey != "" {
		loadOpts = append(loadOpts,
			awscfg.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(c.S3AccessKey, c.S3SecretKey, ""),
			),
		)
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	// 1) 内部用クライアント
	internal := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = c.S3UsePathStyle
		}
	})

	// 2) 署名用クライアント: browsers reach the bucket through the public endpoint when one is set
	signer := s3.NewFromConfig(cfg, func(o *s3.Options) {
		publicBase := c.S3PublicEndpoint
		if publicBase == "" {
			publicBase = c.S3Endpoint
		} // フォールバック
		if publicBase != "" {
			o.BaseEndpoint = aws.String(publicBase)
			o.UsePathStyle = c.S3UsePathStyle
		}
	})

	expire := time.Duration(c.S3URLExpirySec) * time.Second
	return &S3Deps{
		Client: internal,
		Presign: s3.NewPresignClient(signer, func(po *s3.PresignOptions) {
			po.Expires = expire
		}),
		Bucket: c.S3Bucket,
		Prefix: c.S3Prefix,
		Expire: expire,
	}, nil
}

var unsafeName = regexp.MustCompile(`[^\w.\-]`)

// ProductImageKey builds the object key for a product image upload.
func (s *S3Deps) ProductImageKey(productID, uploadID, filename string) string {
	safe := unsafeName.ReplaceAllString(filename, "_")
	return path.Join(s.Prefix, productID, fmt.Sprintf("%s_%s", uploadID, safe))
}

func (s *S3Deps) SignPutURL(ctx context.Context, key, contentType string) (string, error) {
	out, err := s.Presign.PresignPutObject(ctx,
		&s3.PutObjectInput{
			Bucket:      aws.String(s.Bucket),
			Key:         aws.String(key),
			ContentType: aws.String(contentType),
		},
		func(o *s3.PresignOptions) { o.Expires = s.Expire },
	)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

func (s *S3Deps) SignGetURL(ctx context.Context, key string) (string, error) {
	out, err := s.Presign.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.Bucket),
			Key:    aws.String(key),
		},
		func(o *s3.PresignOptions) { o.Expires = s.Expire },
	)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

func (s *S3Deps) Expiry() time.Duration { return s.Expire }
