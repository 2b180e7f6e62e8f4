package apidocs

import (
	"bytes"
	"html/template"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

type Opts func(*config)

// config 文档页面的配置
type config struct {
	// SpecURL 页面拉取文档 JSON 的地址
	SpecURL string
	// Title 页面标题
	Title string
	// Authorizer 返回 false 时响应 403
	Authorizer func(*http.Request) bool
}

func WithTitle(title string) Opts {
	return func(c *config) {
		c.Title = title
	}
}

func WithAuthorizer(f func(*http.Request) bool) Opts {
	return func(c *config) {
		c.Authorizer = f
	}
}

func render(cfg *config) string {
	tmpl := template.Must(template.New("apidoc").Parse(pageTemplate))
	buf := bytes.NewBuffer(nil)
	_ = tmpl.Execute(buf, cfg)
	return buf.String()
}

// Doc 在 basePath 下提供文档页面（ basePath/apidocs ）与文档 JSON （ basePath/apispec.json ），
// 访问 basePath 本身会跳转到页面
func Doc(basePath string, apiJSON []byte, opts ...Opts) echo.MiddlewareFunc {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
		Title:   "API documentation",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	docPath := path.Join(basePath, "apidocs")
	uiHTML := render(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if reqPath != basePath && reqPath != docPath && reqPath != cfg.SpecURL {
				return next(c)
			}

			if cfg.Authorizer != nil && !cfg.Authorizer(c.Request()) {
				return c.String(http.StatusForbidden, "Forbidden")
			}

			switch reqPath {
			case docPath:
				return c.HTML(http.StatusOK, uiHTML)
			case cfg.SpecURL:
				return c.JSONBlob(http.StatusOK, apiJSON)
			default:
				return c.Redirect(http.StatusFound, docPath)
			}
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>{{ .Title }}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
