package repository

import (
	"context"
	"os"

	"pharmacy-store/models"

	"go.uber.org/zap"
)

// UserRepository reads admin credential records from a flat JSON file. The
// file is provisioned out-of-band and re-read on every lookup so credential
// changes take effect without a restart.
type UserRepository struct {
	path string
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// FindByUsername returns the credential record matching username exactly
// (case-sensitive), or false if the user or the file is absent.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, bool) {
	var users []models.User
	if err := readJSONFile(r.path, &users); err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("User store unreadable",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return nil, false
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], true
		}
	}
	return nil, false
}
