package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mgarridov/wraps-backend/internal/auth"
	"github.com/mgarridov/wraps-backend/internal/models"
	repo "github.com/mgarridov/wraps-backend/internal/repository"
)

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService { return &UserService{users: users} }

// Register creates a user after checking both uniqueness constraints up
// front, so duplicates surface as conflicts instead of raw insert errors.
func (s *UserService) Register(ctx context.Context, email, username, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, email, username, hash)
}

// Login resolves unknown username and wrong password to the same error so
// responses carry no enumeration signal.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.users.GetByID(ctx, id)
}
