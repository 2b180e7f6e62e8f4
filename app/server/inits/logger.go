package inits

import (
	"fmt"
	"pokedex-api/app/server/config"

	"go.uber.org/zap"
)

func Logger(cfg *config.Config) (l *zap.Logger, err error) {
	if cfg.IsProd() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named("pokedex"), nil
}
