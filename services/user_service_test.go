package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func TestUserRegisterAndLogin(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RegisterRequest{Email: " Nadia@Example.com ", Password: "secret1", FirstName: "Nadia", LastName: "K"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, UserIDPrefix))
	assert.Equal(t, "nadia@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.HashedPassword)

	_, err = svc.Register(ctx, models.RegisterRequest{Email: "nadia@example.com", Password: "other12", FirstName: "N", LastName: "K"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	logged, err := svc.Login(ctx, models.LoginRequest{Email: "NADIA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nadia@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserUpsertGoogle(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.UpsertGoogle(ctx, GoogleProfile{ID: "g-1", Email: "omar@example.com", GivenName: "Omar"})
	require.NoError(t, err)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "g-1", *created.GoogleID)

	again, err := svc.UpsertGoogle(ctx, GoogleProfile{ID: "g-1", Email: "Omar@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	// google-only аккаунт не логинится паролем
	_, err = svc.Login(ctx, models.LoginRequest{Email: "omar@example.com", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	registered, err := svc.Register(ctx, models.RegisterRequest{Email: "lina@example.com", Password: "secret1", FirstName: "Lina", LastName: "B"})
	require.NoError(t, err)
	linked, err := svc.UpsertGoogle(ctx, GoogleProfile{ID: "g-2", Email: "lina@example.com"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, linked.ID)

	stored, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.GoogleID)
	assert.Equal(t, "g-2", *stored.GoogleID)

	_, err = svc.UpsertGoogle(ctx, GoogleProfile{ID: "g-3"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
