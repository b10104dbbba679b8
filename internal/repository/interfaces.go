package repository

import (
	"context"
	"errors"

	"github.com/mgarridov/wraps-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type Users interface {
	Create(ctx context.Context, email, username, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type Wraps interface {
	Create(ctx context.Context, w models.Wrap) (models.Wrap, error)
	// ListByUser returns the user's wraps newest-first, each with its items
	// ordered by date ascending.
	ListByUser(ctx context.Context, userID string) ([]models.WrapWithItems, error)
	// GetOwned matches on both id and owner; a wrap belonging to someone
	// else is ErrNotFound just like a missing one.
	GetOwned(ctx context.Context, id, userID string) (models.Wrap, error)
	AddItem(ctx context.Context, item models.WrapItem) (models.WrapItem, error)
	// DeleteCascade removes the wrap's items and then the wrap, atomically.
	DeleteCascade(ctx context.Context, id string) error
}
