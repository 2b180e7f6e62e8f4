package handlers

import (
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/middlewares"
	"pokedex-api/app/server/validation"

	"github.com/labstack/echo/v4"
)

// Register 绑定路由与错误处理，路由上的中间件按顺序执行
func (a *App) Register(e *echo.Echo) {
	e.HTTPErrorHandler = a.ErrorHandler

	e.GET("/pong", a.Pong)
	e.Static(constants.UploadsURLPrefix, a.images.Dir())

	requireAuth := middlewares.Auth(a.auth)
	validID := middlewares.ValidID("id")

	users := e.Group("/users")
	users.POST("/register", a.UserRegister, middlewares.ValidateBody(validation.RegisterRules))
	users.POST("/login", a.UserLogin, middlewares.ValidateBody(validation.LoginRules))

	pokemon := e.Group("/pokemon")
	pokemon.GET("", a.PokemonList, middlewares.ValidateListQuery())
	pokemon.GET("/user", a.PokemonListOwned, requireAuth, middlewares.ValidateListQuery())
	pokemon.GET("/:id", a.PokemonGet, validID)
	pokemon.POST("/create", a.PokemonCreate,
		requireAuth,
		middlewares.UploadImage(a.images),
		middlewares.ValidatePokemon(validation.CreatePokemonRules),
		middlewares.OptimizeImage(a.images),
		middlewares.BackupImage(a.images),
	)
	pokemon.PUT("/edit/:id", a.PokemonEdit,
		requireAuth,
		validID,
		middlewares.UploadImage(a.images),
		middlewares.ValidatePokemon(validation.EditPokemonRules),
		middlewares.OptimizeImage(a.images),
		middlewares.BackupImage(a.images),
	)
	pokemon.DELETE("/delete/:id", a.PokemonDelete, requireAuth, validID)
}
