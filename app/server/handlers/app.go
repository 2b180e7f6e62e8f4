package handlers

import (
	"pokedex-api/app/server/auth"
	"pokedex-api/app/server/images"
	"pokedex-api/app/server/services"

	"go.uber.org/zap"
)

type App struct {
	l       *zap.Logger              // 日志
	auth    *auth.Authenticator      // 用户认证
	images  *images.Pipeline         // 图片处理流水线
	pokemon *services.PokemonService // 宝可梦记录
}

func NewApp(l *zap.Logger, a *auth.Authenticator, p *images.Pipeline, ps *services.PokemonService) *App {
	return &App{
		l:       l,
		auth:    a,
		images:  p,
		pokemon: ps,
	}
}
