package inits

import (
	"errors"
	"fmt"
	"io/fs"
	"pokedex-api/app/server/config"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// 开发环境下允许使用 .env 文件，文件不存在时直接使用环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Upload.MaxSize <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_SIZE must be positive, got %d", cfg.Upload.MaxSize)
	}

	return &cfg, nil
}
