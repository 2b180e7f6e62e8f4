package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/middlewares"
	"pokedex-api/app/server/models"
	"pokedex-api/app/server/services"
	"pokedex-api/app/server/types"

	"github.com/labstack/echo/v4"
)

const (
	publicRetrieveError = "Couldn't retrieve Pokémon"
	publicFindError     = "Error finding your Pokémon"
	publicCreateError   = "Error creating Pokémon"
	publicEditError     = "Error editing Pokémon"
	publicDeleteError   = "Error deleting pokémon"
	publicDuplicateName = "Name already exists"
	publicInvalidID     = "Please enter a valid Id"
)

func pokemonResponse(p *models.Pokemon) types.Pokemon {
	res := types.Pokemon{
		ID:             p.ID,
		Name:           p.Name,
		FirstType:      p.FirstType,
		SecondType:     p.SecondType,
		Ability:        p.Ability,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExp:        p.BaseExp,
		ImageURL:       p.ImageURL,
		BackupImageURL: p.BackupImageURL,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Owner != nil {
		res.Owner = &types.Owner{
			ID:       p.Owner.ID,
			Username: p.Owner.Username,
		}
	}
	return res
}

// classify 将服务层错误映射为对外错误， public 为该操作的通用信息
func classify(err error, public string) *errs.Error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return errs.BadRequest(publicInvalidID, err)
	case errors.Is(err, services.ErrNotFound):
		return errs.NotFound(public, err)
	case errors.Is(err, services.ErrDuplicateName):
		return errs.Conflict(publicDuplicateName, err)
	default:
		return errs.Internal(public, err)
	}
}

func (a *App) pokemonList(c echo.Context, page *services.PokemonPage, filter services.PokemonFilter) error {
	res := &types.PokemonListResponse{
		Pokemon: make([]types.Pokemon, 0, len(page.Pokemon)),
	}
	for i := range page.Pokemon {
		res.Pokemon = append(res.Pokemon, pokemonResponse(&page.Pokemon[i]))
	}

	if filter.Page != nil {
		pageMax := a.calcMaxPage(page.Total, filter.Limit)
		res.Page = filter.Page
		res.Limit = &filter.Limit
		res.Total = &page.Total
		res.PageMax = &pageMax
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) PokemonList(c echo.Context) error {
	q, _ := middlewares.ListQuery(c)
	filter := a.parsePagination(q)

	page, err := a.pokemon.List(c.Request().Context(), filter)
	if err != nil {
		return classify(err, publicRetrieveError)
	}

	return a.pokemonList(c, page, filter)
}

func (a *App) PokemonListOwned(c echo.Context) error {
	user, ok := middlewares.User(c)
	if !ok {
		return errs.Internal(publicRetrieveError, errors.New("missing authenticated user"))
	}

	q, _ := middlewares.ListQuery(c)
	filter := a.parsePagination(q)

	page, err := a.pokemon.ListOwnedBy(c.Request().Context(), user.ID, filter)
	if err != nil {
		return classify(err, publicRetrieveError)
	}

	return a.pokemonList(c, page, filter)
}

func (a *App) PokemonGet(c echo.Context) error {
	pokemon, err := a.pokemon.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return classify(err, publicFindError)
	}

	return c.JSON(http.StatusOK, &types.PokemonResponse{
		Pokemon: pokemonResponse(pokemon),
	})
}

// uploadedImage 取出流水线产生的图片地址，没有上传图片时为 nil
func uploadedImage(c echo.Context) *services.PokemonImage {
	upload, ok := middlewares.Upload(c)
	if !ok || upload.LocalURL == "" {
		return nil
	}
	return &services.PokemonImage{
		LocalURL:  upload.LocalURL,
		RemoteURL: upload.RemoteURL,
	}
}

func (a *App) PokemonCreate(c echo.Context) error {
	user, ok := middlewares.User(c)
	if !ok {
		return errs.Internal(publicCreateError, errors.New("missing authenticated user"))
	}
	in, ok := middlewares.PokemonInput(c)
	if !ok {
		return errs.Internal(publicCreateError, errors.New("missing validated input"))
	}

	pokemon, err := a.pokemon.Create(c.Request().Context(), in, uploadedImage(c), user.ID)
	if err != nil {
		return classify(err, publicCreateError)
	}

	return c.JSON(http.StatusCreated, &types.PokemonResponse{
		Pokemon: pokemonResponse(pokemon),
	})
}

func (a *App) PokemonEdit(c echo.Context) error {
	in, ok := middlewares.PokemonInput(c)
	if !ok {
		return errs.Internal(publicEditError, errors.New("missing validated input"))
	}

	pokemon, err := a.pokemon.Edit(c.Request().Context(), c.Param("id"), in, uploadedImage(c))
	if err != nil {
		return classify(err, publicEditError)
	}

	return c.JSON(http.StatusOK, &types.PokemonResponse{
		Pokemon: pokemonResponse(pokemon),
	})
}

func (a *App) PokemonDelete(c echo.Context) error {
	name, err := a.pokemon.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return classify(err, publicDeleteError)
	}

	return c.JSON(http.StatusOK, &types.Message{
		Message: fmt.Sprintf("%s deleted", name),
	})
}
