package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgarridov/wraps-backend/internal/auth"
	"github.com/mgarridov/wraps-backend/internal/models"
	repo "github.com/mgarridov/wraps-backend/internal/repository"
)

type stubUsers struct {
	users []models.User
}

func (s *stubUsers) Create(_ context.Context, email, username, hash string) (models.User, error) {
	u := models.User{ID: "u1", Email: email, Username: username, PasswordHash: hash}
	s.users = append(s.users, u)
	return u, nil
}

func (s *stubUsers) GetByID(_ context.Context, id string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.ID == id })
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.Email == email })
}

func (s *stubUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.Username == username })
}

func (s *stubUsers) find(match func(models.User) bool) (models.User, error) {
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &stubUsers{}
	svc := NewUserService(store)

	u, err := svc.Register(context.Background(), "ana@test.com", "ana_22", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("secret1", u.PasswordHash))
}

func TestRegisterConflicts(t *testing.T) {
	store := &stubUsers{users: []models.User{
		{ID: "u0", Email: "ana@test.com", Username: "ana_22"},
	}}
	svc := NewUserService(store)

	_, err := svc.Register(context.Background(), "ana@test.com", "fresh", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(context.Background(), "fresh@test.com", "ana_22", "secret1")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// email is checked first when both collide
	_, err = svc.Register(context.Background(), "ana@test.com", "ana_22", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.Len(t, store.users, 1)
}

func TestLoginErrors(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	store := &stubUsers{users: []models.User{
		{ID: "u0", Email: "ana@test.com", Username: "ana_22", PasswordHash: hash},
	}}
	svc := NewUserService(store)

	u, err := svc.Login(context.Background(), "ana_22", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u0", u.ID)

	_, err = svc.Login(context.Background(), "ana_22", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
