package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"pokedex-api/app/server/auth"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/middlewares"
	"pokedex-api/app/server/types"

	"github.com/labstack/echo/v4"
)

func (a *App) UserRegister(c echo.Context) error {
	req, ok := middlewares.Body[types.RegisterRequest](c)
	if !ok {
		return errs.Internal("Error registering user", errors.New("missing validated body"))
	}

	rctx := c.Request().Context()

	user, err := a.auth.Register(rctx, *req.Username, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return errs.Conflict("User already exists", err)
		}
		return errs.Internal("Error registering user", err)
	}

	return c.JSON(http.StatusCreated, &types.Message{
		Message: fmt.Sprintf("%s registered!", user.Username),
	})
}

func (a *App) UserLogin(c echo.Context) error {
	req, ok := middlewares.Body[types.LoginRequest](c)
	if !ok {
		return errs.Internal(errs.GenericMessage, errors.New("missing validated body"))
	}

	rctx := c.Request().Context()

	token, err := a.auth.Login(rctx, *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errs.Unauthorized("Wrong credentials", err)
		}
		return errs.Internal(errs.GenericMessage, err)
	}

	return c.JSON(http.StatusOK, &types.LoginToken{
		Token: token,
	})
}
