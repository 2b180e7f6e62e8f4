package apidocs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwagger(t *testing.T) {
	swagger, err := Swagger(context.Background())
	require.NoError(t, err)

	for _, p := range []string{"/pong", "/users/login", "/users/register", "/pokemon", "/pokemon/user",
		"/pokemon/{id}", "/pokemon/create", "/pokemon/edit/{id}", "/pokemon/delete/{id}"} {
		assert.NotNil(t, swagger.Paths.Find(p), p)
	}
}

func TestDoc(t *testing.T) {
	e := echo.New()
	e.Pre(Doc("/api", []byte(`{"openapi":"3.0.3"}`)))

	serve := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := serve("/api")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/apidocs", rec.Header().Get(echo.HeaderLocation))

	rec = serve("/api/apidocs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-url="/api/apispec.json"`)

	rec = serve("/api/apispec.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, rec.Body.String())

	rec = serve("/api/other")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDoc_Authorizer(t *testing.T) {
	e := echo.New()
	e.Pre(Doc("/api", []byte(`{}`), WithAuthorizer(func(*http.Request) bool { return false })))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/apidocs", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
