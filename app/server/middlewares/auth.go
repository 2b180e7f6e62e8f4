package middlewares

import (
	"pokedex-api/app/server/auth"
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/jwt"

	"github.com/labstack/echo/v4"
)

const publicAuthError = "Action not allowed"

// Auth 校验 bearer token ，并把调用者身份放进 context
func Auth(a *auth.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := a.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				// 缺失、格式错误、无效的 token 对外一律视为禁止访问
				return errs.Forbidden(publicAuthError, err)
			}

			c.Set(constants.ContextKeyUser, user)

			return next(c)
		}
	}
}

// User 取出 Auth 放入的调用者身份
func User(c echo.Context) (*jwt.User, bool) {
	user, ok := c.Get(constants.ContextKeyUser).(*jwt.User)
	return user, ok
}
