package handlers

import (
	"net/http"
	"pokedex-api/app/server/types"

	"github.com/labstack/echo/v4"
)

func (a *App) Pong(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.Message{Message: "pong"})
}
