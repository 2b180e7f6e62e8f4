package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pokedex-api/app/server/auth"
	"pokedex-api/app/server/errs"
	"pokedex-api/app/server/jwt"
	"pokedex-api/app/server/testutils"
	"pokedex-api/app/server/types"
	"pokedex-api/app/server/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func reached(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func requireStatus(t *testing.T, err error, status int, public string) {
	t.Helper()
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, status, e.Status)
	assert.Equal(t, public, e.Public)
}

func TestAuth(t *testing.T) {
	j, err := jwt.New("test-secret")
	require.NoError(t, err)
	a := auth.New(testutils.NewDB(t), j)

	id := uuid.New()
	token, err := j.SignToken(&jwt.User{ID: id, Username: "ash", Expires: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	for _, header := range []string{"", "Token " + token, "Bearer nope"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		err = Auth(a)(reached)(newContext(req))
		requireStatus(t, err, http.StatusForbidden, "Action not allowed")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := newContext(req)
	require.NoError(t, Auth(a)(reached)(c))

	user, ok := User(c)
	require.True(t, ok)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "ash", user.Username)
}

func TestValidID(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	c.SetParamNames("id")
	c.SetParamValues("123")
	requireStatus(t, ValidID("id")(reached)(c), http.StatusBadRequest, "Please enter a valid Id")

	c = newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	assert.NoError(t, ValidID("id")(reached)(c))
}

func TestValidateListQuery(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/?type=Fire&page=2", nil))
	require.NoError(t, ValidateListQuery()(reached)(c))

	q, ok := ListQuery(c)
	require.True(t, ok)
	require.NotNil(t, q.Type)
	assert.Equal(t, "Fire", *q.Type)
	require.NotNil(t, q.Page)
	assert.Equal(t, 2, *q.Page)
	assert.Nil(t, q.Limit)

	c = newContext(httptest.NewRequest(http.MethodGet, "/?page=one&limit=101", nil))
	err := ValidateListQuery()(reached)(c)
	requireStatus(t, err, http.StatusBadRequest, "Validation Failed")

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestValidatePokemon_ParseErrorsWin(t *testing.T) {
	body, contentType := testutils.Multipart(t, map[string]string{"height": "tall", "weight": "NaN"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	err := ValidatePokemon(validation.EditPokemonRules)(reached)(newContext(req))
	requireStatus(t, err, http.StatusBadRequest, "Validation Failed")

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.ElementsMatch(t, validation.Errors{
		{Field: "height", Message: `"height" must be a number`},
		{Field: "weight", Message: `"weight" must be a number`},
	}, verrs)
}

func TestValidateBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", stringsReader(`{"username":"ash","password":"pikachu123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := newContext(req)
	require.NoError(t, ValidateBody(validation.LoginRules)(reached)(c))

	body, ok := Body[types.LoginRequest](c)
	require.True(t, ok)
	assert.Equal(t, "ash", *body.Username)
}

func TestUploadImage_PassThroughWithoutFile(t *testing.T) {
	p := newPipeline(t)
	req := httptest.NewRequest(http.MethodPost, "/", stringsReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := newContext(req)

	require.NoError(t, UploadImage(p)(reached)(c))
	_, ok := Upload(c)
	assert.False(t, ok)
}

func TestUploadImage_TooLarge(t *testing.T) {
	p := newPipeline(t)
	body, contentType := testutils.Multipart(t, nil, "image", "big.png", bytes.Repeat([]byte{0xff}, 4096))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	err := UploadImage(p)(reached)(newContext(req))
	requireStatus(t, err, http.StatusBadRequest, "The provided image is too large")
}
