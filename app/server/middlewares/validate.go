package middlewares

import (
	"fmt"
	"math"
	"net/url"
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/services"
	"pokedex-api/app/server/types"
	"pokedex-api/app/server/validation"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	publicValidationError = "Validation Failed"
	publicInvalidID       = "Please enter a valid Id"
)

// ValidateBody 绑定 JSON 请求体并按规则校验
func ValidateBody[T any](rules []validation.Rule[T]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body T
			if err := c.Bind(&body); err != nil {
				return errs.BadRequest(publicValidationError, fmt.Errorf("failed to bind body: %w", err))
			}

			if err := validation.Validate(body, rules); err != nil {
				return errs.BadRequest(publicValidationError, err)
			}

			c.Set(constants.ContextKeyBody, body)

			return next(c)
		}
	}
}

// ValidID 在访问任何存储之前拒绝格式错误的 ID
func ValidID(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := services.ParseID(c.Param(param)); err != nil {
				return errs.BadRequest(publicInvalidID, err)
			}

			return next(c)
		}
	}
}

// ValidateListQuery 解析并校验列表查询参数
func ValidateListQuery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values := c.QueryParams()

			var (
				q      types.PokemonListQuery
				parsed validation.Errors
			)
			q.Type = stringParam(values, "type")
			q.Page = intParam(values, "page", &parsed)
			q.Limit = intParam(values, "limit", &parsed)

			if err := validation.Merge(parsed, validation.Validate(q, validation.ListPokemonRules)); err != nil {
				return errs.BadRequest(publicValidationError, err)
			}

			c.Set(constants.ContextKeyListQuery, q)

			return next(c)
		}
	}
}

// ValidatePokemon 从表单中读取字段并按规则校验，上传的图片作为 image 字段参与校验
func ValidatePokemon(rules []validation.Rule[types.PokemonInput]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values, err := c.FormParams()
			if err != nil {
				return errs.BadRequest(publicValidationError, fmt.Errorf("failed to parse form: %w", err))
			}

			var (
				in     types.PokemonInput
				parsed validation.Errors
			)
			in.Name = stringParam(values, "name")
			in.Ability = stringParam(values, "ability")
			in.FirstType = stringParam(values, "firstType")
			in.SecondType = stringParam(values, "secondType")
			in.Height = floatParam(values, "height", &parsed)
			in.Weight = floatParam(values, "weight", &parsed)
			in.BaseExp = floatParam(values, "baseExp", &parsed)
			if upload, ok := Upload(c); ok {
				in.Image = &upload.FileName
			}

			if err = validation.Merge(parsed, validation.Validate(in, rules)); err != nil {
				return errs.BadRequest(publicValidationError, err)
			}

			c.Set(constants.ContextKeyPokemonInput, in)

			return next(c)
		}
	}
}

// PokemonInput 取出 ValidatePokemon 放入的字段
func PokemonInput(c echo.Context) (types.PokemonInput, bool) {
	in, ok := c.Get(constants.ContextKeyPokemonInput).(types.PokemonInput)
	return in, ok
}

func ListQuery(c echo.Context) (types.PokemonListQuery, bool) {
	q, ok := c.Get(constants.ContextKeyListQuery).(types.PokemonListQuery)
	return q, ok
}

func Body[T any](c echo.Context) (T, bool) {
	body, ok := c.Get(constants.ContextKeyBody).(T)
	return body, ok
}

func stringParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func floatParam(values url.Values, key string, parsed *validation.Errors) *float64 {
	raw := stringParam(values, key)
	if raw == nil {
		return nil
	}

	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*parsed = append(*parsed, types.FieldError{Field: key, Message: fmt.Sprintf("%q must be a number", key)})
		return nil
	}
	return &v
}

func intParam(values url.Values, key string, parsed *validation.Errors) *int {
	raw := stringParam(values, key)
	if raw == nil {
		return nil
	}

	v, err := strconv.Atoi(*raw)
	if err != nil {
		*parsed = append(*parsed, types.FieldError{Field: key, Message: fmt.Sprintf("%q must be an integer", key)})
		return nil
	}
	return &v
}
