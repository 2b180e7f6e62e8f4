package main

import (
	"context"
	"fmt"
	"log"
	"pokedex-api/app/server/apidocs"
	"pokedex-api/app/server/auth"
	"pokedex-api/app/server/handlers"
	"pokedex-api/app/server/images"
	"pokedex-api/app/server/inits"
	"pokedex-api/app/server/jwt"
	"pokedex-api/app/server/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化远程存储
	bucket, err := inits.Storage(ctx, cfg)
	if err != nil {
		l.Fatal("error initializing storage", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化图片流水线
	pipeline, err := images.NewPipeline(cfg.Upload.Dir, cfg.Upload.MaxSize, bucket)
	if err != nil {
		l.Fatal("error initializing image pipeline", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, auth.New(db, j), pipeline, services.NewPokemonService(db))

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	if len(cfg.Security.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Security.AllowedOrigins,
		}))
	}

	// 绑定 echo 服务
	handlerApp.Register(e)

	// 添加 API 文档
	if !cfg.IsProd() {
		if swg, err := apidocs.Swagger(ctx); err != nil {
			l.Error("error initializing swagger", zap.Error(err))
		} else if swgJson, err := swg.MarshalJSON(); err != nil {
			l.Error("error initializing swagger", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", swgJson, apidocs.WithTitle("Pokédex API")))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
