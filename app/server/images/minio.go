package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
)

var ErrObjectExists = errors.New("object already exists")

// MinioBucket 基于 S3 协议的远程存储
type MinioBucket struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

var _ Bucket = (*MinioBucket)(nil)

func NewMinioBucket(client *minio.Client, bucket string, publicBase string) *MinioBucket {
	return &MinioBucket{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

func (b *MinioBucket) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	// 同名对象已存在时不覆盖
	if _, err := b.client.StatObject(ctx, b.bucket, name, minio.StatObjectOptions{}); err == nil {
		return fmt.Errorf("%w: %s", ErrObjectExists, name)
	} else if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("failed to stat object: %w", err)
	}

	if _, err := b.client.PutObject(ctx, b.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

func (b *MinioBucket) PublicURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", b.publicBase, url.PathEscape(b.bucket), url.PathEscape(name))
}
