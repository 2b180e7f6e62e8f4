// Package images ingests uploaded pictures, normalizes them into fixed-size
// thumbnails and mirrors the result to remote object storage.
//
// The three stages are independent and run in order; a failing stage stops
// the request without undoing what earlier stages already wrote.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"pokedex-api/app/server/constants"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge      = errors.New("file too large")
	ErrImageOptimization = errors.New("image optimization failed")
	ErrBackup            = errors.New("image backup failed")
)

// Bucket 远程对象存储
type Bucket interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) error
	PublicURL(name string) string
}

// Upload 一次请求中正在处理的图片
type Upload struct {
	FieldName    string // 表单字段名
	OriginalName string // 客户端提供的文件名
	FileName     string // 本地目录中的当前文件名

	LocalURL  string // 备份完成后填写
	RemoteURL string // 备份完成后填写
}

type Pipeline struct {
	dir     string
	maxSize int64
	bucket  Bucket
}

func NewPipeline(dir string, maxSize int64, bucket Bucket) (*Pipeline, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	return &Pipeline{
		dir:     dir,
		maxSize: maxSize,
		bucket:  bucket,
	}, nil
}

func (p *Pipeline) Dir() string {
	return p.dir
}

func (p *Pipeline) localPath(name string) string {
	return filepath.Join(p.dir, name)
}

// Ingest 将上传的文件保存到本地目录，没有文件时返回 nil
func (p *Pipeline) Ingest(fieldName string, fh *multipart.FileHeader) (*Upload, error) {
	if fh == nil {
		return nil, nil
	}

	if fh.Size > p.maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, fh.Size, p.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%s%s", uuid.NewString(), fieldName, strings.ToLower(filepath.Ext(filepath.Base(fh.Filename))))

	dst, err := os.OpenFile(p.localPath(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file: %w", err)
	}
	defer dst.Close()

	// 多读一个字节，用来发现声明大小与实际内容不一致的情况
	written, err := io.Copy(dst, io.LimitReader(src, p.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to write local file: %w", err)
	}
	if written > p.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, p.maxSize)
	}

	return &Upload{
		FieldName:    fieldName,
		OriginalName: fh.Filename,
		FileName:     name,
	}, nil
}

// Transform 裁剪填充为固定尺寸并重新编码，更新 u.FileName
func (p *Pipeline) Transform(u *Upload) error {
	img, err := imaging.Open(p.localPath(u.FileName), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrImageOptimization, u.FileName, err)
	}

	thumb := imaging.Fill(img, constants.ImageWidth, constants.ImageHeight, imaging.Center, imaging.Lanczos)

	newName := strings.TrimSuffix(u.FileName, filepath.Ext(u.FileName)) + constants.ImageExtension
	if err = imaging.Save(thumb, p.localPath(newName), imaging.JPEGQuality(constants.ImageQuality)); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrImageOptimization, newName, err)
	}

	u.FileName = newName
	return nil
}

// Mirror 将本地文件上传到远程存储，并填写本地与远程地址
func (p *Pipeline) Mirror(ctx context.Context, u *Upload) error {
	data, err := os.ReadFile(p.localPath(u.FileName))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrBackup, u.FileName, err)
	}

	if err = p.bucket.Upload(ctx, u.FileName, data, constants.ImageMIME); err != nil {
		return fmt.Errorf("%w: upload %s: %w", ErrBackup, u.FileName, err)
	}

	u.LocalURL = path.Join(constants.UploadsURLPrefix, u.FileName)
	u.RemoteURL = p.bucket.PublicURL(u.FileName)
	return nil
}
