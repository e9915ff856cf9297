package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloglist/app/auth"
	"bloglist/app/models"
	"bloglist/app/repositories/mock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginService(t *testing.T) {
	ctx := context.Background()
	users := mock.NewUserRepository()
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	service := NewLoginService(users, tokens, zerolog.Nop())

	hash, err := auth.HashPassword("sekret")
	require.NoError(t, err)
	user := &models.User{Username: "root", Name: "Superuser", PasswordHash: hash, Adult: true}
	require.NoError(t, users.Create(ctx, user))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := service.Login(ctx, &models.LoginInput{Username: "root", Password: "sekret"})
		require.NoError(t, err)
		assert.Equal(t, "root", resp.Username)
		assert.Equal(t, "Superuser", resp.Name)

		claims, err := tokens.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "root", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, &models.LoginInput{Username: "root", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Login(ctx, &models.LoginInput{Username: "nobody", Password: "sekret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		users.Err = errors.New("boom")
		defer func() { users.Err = nil }()

		_, err := service.Login(ctx, &models.LoginInput{Username: "root", Password: "sekret"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
