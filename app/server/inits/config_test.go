package inits

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_CONN", "postgres://u:p@localhost:5432/pokedex")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_ENDPOINT", "storage.example.com")
	t.Setenv("STORAGE_ACCESS_KEY", "access")
	t.Setenv("STORAGE_SECRET_KEY", "secret")
	t.Setenv("STORAGE_BUCKET", "pokemon")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://storage.example.com/public")
}

func TestConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Config()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.System.Listen)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(5000000), cfg.Upload.MaxSize)
	assert.True(t, cfg.Storage.UseSSL)
	assert.False(t, cfg.IsProd())
}

func TestConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", ":8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://pokedex.example.com")
	t.Setenv("UPLOAD_MAX_SIZE", "1024")

	cfg, err := Config()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, ":8080", cfg.System.Listen)
	assert.Equal(t, []string{"http://localhost:5173", "https://pokedex.example.com"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, int64(1024), cfg.Upload.MaxSize)
}

func TestConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Config()
	assert.Error(t, err)
}

func TestConfig_RejectsNonPositiveUploadSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPLOAD_MAX_SIZE", "0")

	_, err := Config()
	assert.Error(t, err)
}
