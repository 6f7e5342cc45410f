package storage

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/utils/logger"
)

// ImageResolver turns a stored nominee image key into a URL the browser can load.
type ImageResolver interface {
	ImageURL(ctx context.Context, key string) string
}

type s3Resolver struct {
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
}

// NewImageResolver returns an S3 presigning resolver, or a static one when no
// bucket is configured.
func NewImageResolver(ctx context.Context, cfg config.StorageConfig) (ImageResolver, error) {
	if cfg.S3Bucket == "" {
		return staticResolver{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Resolver{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		expires: cfg.URLExpiration,
	}, nil
}

func (r *s3Resolver) ImageURL(ctx context.Context, key string) string {
	if key == "" {
		return constant.DefaultNomineeImage
	}
	if isAbsoluteURL(key) {
		return key
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.expires))
	if err != nil {
		logger.Warn("[ImageURL] presign failed", zap.String("key", key), zap.Error(err))
		return constant.DefaultNomineeImage
	}
	return req.URL
}

type staticResolver struct{}

func (staticResolver) ImageURL(_ context.Context, key string) string {
	if isAbsoluteURL(key) {
		return key
	}
	return constant.DefaultNomineeImage
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
