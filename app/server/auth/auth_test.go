package auth

import (
	"context"
	"testing"
	"time"

	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/jwt"
	"pokedex-api/app/server/testutils"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	a := New(testutils.NewDB(t), j)
	// 降低哈希成本，加快测试
	a.params = &argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	return a
}

func TestRegisterThenLogin(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "ash", "ash@pallet.town", "pikachu123")
	require.NoError(t, err)
	assert.NotEqual(t, "pikachu123", user.Password)

	token, err := a.Login(ctx, "ash", "pikachu123")
	require.NoError(t, err)

	identity, err := a.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "ash", identity.Username)
}

func TestLogin_TokenExpiresInSevenDays(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()
	now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	_, err := a.Register(ctx, "ash", "ash@pallet.town", "pikachu123")
	require.NoError(t, err)

	token, err := a.Login(ctx, "ash", "pikachu123")
	require.NoError(t, err)

	// 签发时间固定在过去，令牌此时已经过期
	_, err = a.Verify("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	a.now = time.Now
	token, err = a.Login(ctx, "ash", "pikachu123")
	require.NoError(t, err)
	identity, err := a.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(constants.AuthTokenDuration), identity.Expires, time.Minute)
}

func TestLogin_WrongCredentials(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ash", "ash@pallet.town", "pikachu123")
	require.NoError(t, err)

	_, err = a.Login(ctx, "ash", "raichu123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "gary", "pikachu123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Duplicate(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ash", "ash@pallet.town", "pikachu123")
	require.NoError(t, err)

	_, err = a.Register(ctx, "ash", "other@pallet.town", "pikachu123")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = a.Register(ctx, "ash2", "ash@pallet.town", "pikachu123")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestVerify_HeaderKinds(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Verify("")
	assert.ErrorIs(t, err, ErrMissingHeader)

	_, err = a.Verify("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrMalformedHeader)

	_, err = a.Verify("Bearer")
	assert.ErrorIs(t, err, ErrMalformedHeader)

	_, err = a.Verify("Bearer not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
