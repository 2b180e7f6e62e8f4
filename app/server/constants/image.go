package constants

// 优化后的图片
const (
	ImageWidth     = 120
	ImageHeight    = 120
	ImageQuality   = 100
	ImageExtension = ".jpg"
	ImageMIME      = "image/jpeg"
)

// 上传
const (
	ImageFieldName   = "image"
	UploadsURLPrefix = "/uploads"
)
