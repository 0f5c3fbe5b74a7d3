package services

import (
	"context"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService validates credentials against the user store and manages the
// session lifecycle.
type AuthService struct {
	users    repository.UserRepo
	sessions *SessionStore
}

func NewAuthService(users repository.UserRepo, sessions *SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login verifies the credentials and returns a fresh session token. The
// same error is returned for an unknown username and a wrong password so a
// caller cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, ok := s.users.FindByUsername(ctx, username)
	if !ok {
		// Burn a comparison so the miss costs roughly the same as a wrong
		// password.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(password),
		)
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token := s.sessions.Create(user.Username)
	zap.L().Info("User logged in", zap.String("username", user.Username))
	return token, nil
}

// Logout destroys the session for token.
func (s *AuthService) Logout(token string) error {
	if !s.sessions.Destroy(token) {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// Check reports whether token belongs to a live session and, if so, the
// username it is bound to. It never fails.
func (s *AuthService) Check(token string) (string, bool) {
	return s.sessions.Lookup(token)
}
