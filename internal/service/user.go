package service

import (
	"context"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/auth"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Repo core.UserRepository
}

// UserService handles lazy user creation: the first authenticated request
// materializes a row for the identity, later calls return the stored row.
type UserService struct {
	repo core.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{repo: opts.Repo}
}

// EnsureUser upserts the authenticated identity by email and returns the
// stored user. An existing row keeps its name.
func (s *UserService) EnsureUser(ctx context.Context, session *auth.Session) (*model.User, error) {
	if session == nil || session.Email == "" {
		return nil, apperrors.Unauthorized("sign in to create a profile")
	}
	return s.repo.UpsertByEmail(ctx, &model.CreateUserRequest{
		Name:  session.Name,
		Email: session.Email,
	})
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.GetByEmail(ctx, email)
}
