package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/models"
	"pharmacy-store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := []models.User{{Username: "admin", PasswordHash: string(hash)}}
	data, err := json.MarshalIndent(users, "", "    ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return NewAuthService(repository.NewUserRepository(path), NewSessionStore(ttl))
}

func TestLoginThenCheckThenLogout(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok := svc.Check(token)
	require.True(t, ok)
	assert.Equal(t, "admin", username)

	require.NoError(t, svc.Logout(token))

	_, ok = svc.Check(token)
	assert.False(t, ok)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "nobody", "secret123")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginIsCaseSensitiveOnUsername(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "Admin", "secret123")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogoutUnknownToken(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	err := svc.Logout("no-such-token")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCheckExpiredSession(t *testing.T) {
	svc := newAuthService(t, time.Millisecond)

	token, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, ok := svc.Check(token)
	assert.False(t, ok)
}
