package handlers

import (
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/services"
	"pokedex-api/app/server/types"
)

// 没有 page 参数时展示全部；有 page 时页码从 0 开始， limit 缺省为固定页长
func (a *App) parsePagination(q types.PokemonListQuery) services.PokemonFilter {
	filter := services.PokemonFilter{
		Page:  q.Page,
		Limit: constants.DefaultPageSize,
	}
	if q.Type != nil {
		filter.Type = *q.Type
	}
	if q.Limit != nil && *q.Limit > 0 {
		filter.Limit = *q.Limit
	}

	return filter
}

func (a *App) calcMaxPage(count int64, limit int) int64 {
	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	return pageMax
}
