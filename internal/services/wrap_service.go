package services

import (
	"context"
	"errors"
	"time"

	"github.com/mgarridov/wraps-backend/internal/models"
	repo "github.com/mgarridov/wraps-backend/internal/repository"
)

type WrapService struct {
	wraps repo.Wraps
}

func NewWrapService(wraps repo.Wraps) *WrapService { return &WrapService{wraps: wraps} }

func (s *WrapService) List(ctx context.Context, userID string) ([]models.WrapWithItems, error) {
	return s.wraps.ListByUser(ctx, userID)
}

func (s *WrapService) Create(ctx context.Context, userID, title, kind string, year int) (models.Wrap, error) {
	return s.wraps.Create(ctx, models.Wrap{
		Title:  title,
		Kind:   kind,
		Year:   year,
		UserID: userID,
	})
}

// Get looks up a wrap scoped to its owner. A wrap owned by another user is
// reported as not found, which keeps other users' wraps unobservable.
func (s *WrapService) Get(ctx context.Context, userID, wrapID string) (models.Wrap, error) {
	w, err := s.wraps.GetOwned(ctx, wrapID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Wrap{}, ErrWrapNotFound
	}
	return w, err
}

// AddItem appends an item to a wrap whose ownership the caller has already
// established via Get; the insert itself is not owner-scoped.
func (s *WrapService) AddItem(ctx context.Context, wrapID, name string, date time.Time, notes *string) (models.WrapItem, error) {
	return s.wraps.AddItem(ctx, models.WrapItem{
		WrapID: wrapID,
		Name:   name,
		Date:   date,
		Notes:  notes,
	})
}

func (s *WrapService) Delete(ctx context.Context, userID, wrapID string) error {
	if _, err := s.Get(ctx, userID, wrapID); err != nil {
		return err
	}
	return s.wraps.DeleteCascade(ctx, wrapID)
}
