package middlewares

import (
	"errors"
	"net/http"
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/images"

	"github.com/labstack/echo/v4"
)

const (
	publicUploadError   = "Error uploading the image"
	publicTooLarge      = "The provided image is too large"
	publicOptimizeError = "Error optimizing the provided image"
	publicBackupError   = "Error backing up the image"
)

// UploadImage 保存上传的图片，没有附带图片时直接跳过
func UploadImage(p *images.Pipeline) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fh, err := c.FormFile(constants.ImageFieldName)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
					return next(c)
				}
				return errs.BadRequest(publicUploadError, err)
			}

			upload, err := p.Ingest(constants.ImageFieldName, fh)
			if err != nil {
				if errors.Is(err, images.ErrFileTooLarge) {
					return errs.BadRequest(publicTooLarge, err)
				}
				return errs.Internal(publicUploadError, err)
			}

			c.Set(constants.ContextKeyUpload, upload)

			return next(c)
		}
	}
}

// OptimizeImage 将图片裁剪为固定尺寸
func OptimizeImage(p *images.Pipeline) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if upload, ok := Upload(c); ok {
				if err := p.Transform(upload); err != nil {
					return errs.BadRequest(publicOptimizeError, err)
				}
			}

			return next(c)
		}
	}
}

// BackupImage 将优化后的图片备份到远程存储
func BackupImage(p *images.Pipeline) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if upload, ok := Upload(c); ok {
				if err := p.Mirror(c.Request().Context(), upload); err != nil {
					return errs.Conflict(publicBackupError, err)
				}
			}

			return next(c)
		}
	}
}

func Upload(c echo.Context) (*images.Upload, bool) {
	upload, ok := c.Get(constants.ContextKeyUpload).(*images.Upload)
	return upload, ok && upload != nil
}
