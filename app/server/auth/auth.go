// Package auth verifies credentials and bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"pokedex-api/app/server/constants"
	"pokedex-api/app/server/jwt"
	"pokedex-api/app/server/models"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"
)

var (
	ErrMissingHeader      = errors.New("authorization header is missing")
	ErrMalformedHeader    = errors.New("no bearer in authorization header")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type Authenticator struct {
	db     *gorm.DB
	jwt    *jwt.JWT
	params *argon2id.Params
	now    func() time.Time
}

func New(db *gorm.DB, j *jwt.JWT) *Authenticator {
	return &Authenticator{
		db:     db,
		jwt:    j,
		params: argon2id.DefaultParams,
		now:    time.Now,
	}
}

func (a *Authenticator) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	// 处理密码
	passwordHash, err := argon2id.CreateHash(password, a.params)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: passwordHash,
	}
	if err = a.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %w", ErrUserExists, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	if err := a.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: wrong username", ErrInvalidCredentials)
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return "", fmt.Errorf("failed to check password: %w", err)
	} else if !match {
		return "", fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
	}

	// 签出 JWT
	token, err := a.jwt.SignToken(&jwt.User{
		ID:       user.ID,
		Username: user.Username,
		Expires:  a.now().Add(constants.AuthTokenDuration),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify 校验 Authorization 头的值
func (a *Authenticator) Verify(authHeader string) (*jwt.User, error) {
	if authHeader == "" {
		return nil, ErrMissingHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, scheme)
	}

	user, err := a.jwt.ParseUser(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return user, nil
}
