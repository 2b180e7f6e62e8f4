package inits

import (
	"context"
	"fmt"
	"pokedex-api/app/server/config"
	"pokedex-api/app/server/images"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func Storage(ctx context.Context, cfg *config.Config) (*images.MinioBucket, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// 确认桶存在
	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Storage.Bucket, err)
	} else if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Storage.Bucket)
	}

	return images.NewMinioBucket(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL), nil
}
