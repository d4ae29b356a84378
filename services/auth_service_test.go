package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/utils"
)

func newAuthService(t *testing.T) (*AuthService, context.Context) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewAdminRepository(db),
		"test-secret", time.Hour,
		"test-refresh-secret", 24*time.Hour,
	)
	return svc, context.Background()
}

func TestAuthRegisterAndLogin(t *testing.T) {
	svc, ctx := newAuthService(t)

	admin, err := svc.Register(ctx, "boss", "supersecret", "admin")
	require.NoError(t, err)
	assert.Equal(t, "boss", admin.Username)
	assert.NotEqual(t, "supersecret", admin.Password, "password must be hashed")

	result, err := svc.Login(ctx, "boss", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := utils.ParseToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx, "boss", "supersecret", "admin")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "boss", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthDuplicateUsername(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx, "boss", "supersecret", "admin")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "boss", "othersecret", "manager")
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestAuthRefresh(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx, "boss", "supersecret", "admin")
	require.NoError(t, err)
	result, err := svc.Login(ctx, "boss", "supersecret")
	require.NoError(t, err)

	access, err := svc.Refresh(ctx, result.RefreshToken)
	require.NoError(t, err)
	_, err = utils.ParseToken(access, "test-secret")
	require.NoError(t, err)

	// an access token is not a refresh token
	_, err = svc.Refresh(ctx, result.AccessToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
