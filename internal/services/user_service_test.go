package services

import (
	"testing"

	"lawhub_backend/internal/models"
	"lawhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	require.NoError(t, userRepo.Create(nil, &models.User{
		AuthID: "auth-1", Email: "a@b.c", Nickname: "n", PasswordHash: "h",
	}))

	user, err := svc.ResolveUser(nil, "auth-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)

	// Valid session, missing row: the half-finished signup case.
	_, err = svc.ResolveUser(nil, "auth-unknown")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestConfirmEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	require.NoError(t, userRepo.Create(nil, &models.User{
		AuthID: "auth-1", Email: "a@b.c", Nickname: "n", PasswordHash: "h",
		ConfirmToken: "tok-123",
	}))

	require.NoError(t, svc.ConfirmEmail(nil, "tok-123"))

	user, err := userRepo.FindByEmail(nil, "a@b.c")
	require.NoError(t, err)
	assert.True(t, user.IsConfirmed)
	assert.Empty(t, user.ConfirmToken)

	// The token is single use.
	err = svc.ConfirmEmail(nil, "tok-123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
