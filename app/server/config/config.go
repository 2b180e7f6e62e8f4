package config

import "strings"

type Config struct {
	System struct {
		Mode               string `env:"MODE" env-default:"development"` // 运行模式，以 p 开头视为生产环境
		Listen             string `env:"LISTEN" env-default:":4000"`     // 监听地址
		DBConnectionString string `env:"DB_CONN" env-required:"true"`    // Postgres 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string   `env:"JWT_SECRET" env-required:"true"`           // 签名密钥，用于产生 JWT ，更新会导致旧有会话失效
		AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" env-separator:","` // 允许跨域的来源
	}
	Storage struct {
		Endpoint      string `env:"STORAGE_ENDPOINT" env-required:"true"`        // 远程对象存储的地址（S3 协议）
		AccessKey     string `env:"STORAGE_ACCESS_KEY" env-required:"true"`      // 访问密钥 ID
		SecretKey     string `env:"STORAGE_SECRET_KEY" env-required:"true"`      // 访问密钥
		Bucket        string `env:"STORAGE_BUCKET" env-required:"true"`          // 备份图片使用的桶
		Region        string `env:"STORAGE_REGION"`                              // 区域，可以留空
		UseSSL        bool   `env:"STORAGE_USE_SSL" env-default:"true"`          // 是否使用 HTTPS 连接
		PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" env-required:"true"` // 公开访问地址前缀，后接 /{bucket}/{name}
	}
	Upload struct {
		Dir     string `env:"UPLOADS_DIR" env-default:"uploads"`       // 本地临时图片目录
		MaxSize int64  `env:"UPLOAD_MAX_SIZE" env-default:"5000000"` // 上传文件大小上限（字节）
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}
