package handlers

import (
	"errors"
	"net/http"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/types"
	"pokedex-api/app/server/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const publicEndpointNotFound = "Endpoint not found"

// ErrorHandler 所有阶段的错误都汇总到这里：记录内部信息，只返回对外信息
func (a *App) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		e  *errs.Error
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &e):
	case errors.As(err, &he):
		public := http.StatusText(he.Code)
		if he.Code == http.StatusNotFound {
			public = publicEndpointNotFound
		} else if msg, ok := he.Message.(string); ok && msg != "" {
			public = msg
		}
		e = errs.New(he.Code, public, err)
	default:
		e = errs.From(err)
	}

	fields := []zap.Field{
		zap.String("method", c.Request().Method),
		zap.String("URI", c.Request().RequestURI),
		zap.Int("status", e.Status),
		zap.String("public", e.Public),
		zap.Error(e.Err),
	}
	if e.Status >= http.StatusInternalServerError {
		a.l.Error("request failed", fields...)
	} else {
		a.l.Debug("request rejected", fields...)
	}

	res := &types.ErrorMessage{Error: e.Public}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		res.Details = verrs
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(e.Status)
	} else {
		err = c.JSON(e.Status, res)
	}
	if err != nil {
		a.l.Error("failed to write error response", zap.Error(err))
	}
}
