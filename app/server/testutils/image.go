package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PNG 生成指定尺寸的渐变图片
func PNG(t testing.TB, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// FileHeader 通过真实的 multipart 解析得到文件头
func FileHeader(t testing.TB, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := Multipart(t, nil, field, filename, content)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", contentType)
	require.NoError(t, req.ParseMultipartForm(32<<20))

	_, fh, err := req.FormFile(field)
	require.NoError(t, err)
	return fh
}

// Multipart 构造 multipart 请求体， filename 为空时不附加文件
func Multipart(t testing.TB, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}
