package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgarridov/wraps-backend/internal/models"
	repo "github.com/mgarridov/wraps-backend/internal/repository"
)

type stubWraps struct {
	wraps   map[string]models.Wrap
	items   map[string][]models.WrapItem
	deleted []string
}

func newStubWraps() *stubWraps {
	return &stubWraps{wraps: map[string]models.Wrap{}, items: map[string][]models.WrapItem{}}
}

func (s *stubWraps) Create(_ context.Context, w models.Wrap) (models.Wrap, error) {
	if w.ID == "" {
		w.ID = "w1"
	}
	s.wraps[w.ID] = w
	return w, nil
}

func (s *stubWraps) ListByUser(_ context.Context, userID string) ([]models.WrapWithItems, error) {
	out := []models.WrapWithItems{}
	for _, w := range s.wraps {
		if w.UserID == userID {
			out = append(out, models.WrapWithItems{Wrap: w, Items: s.items[w.ID]})
		}
	}
	return out, nil
}

func (s *stubWraps) GetOwned(_ context.Context, id, userID string) (models.Wrap, error) {
	if w, ok := s.wraps[id]; ok && w.UserID == userID {
		return w, nil
	}
	return models.Wrap{}, repo.ErrNotFound
}

func (s *stubWraps) AddItem(_ context.Context, item models.WrapItem) (models.WrapItem, error) {
	item.ID = "i1"
	s.items[item.WrapID] = append(s.items[item.WrapID], item)
	return item, nil
}

func (s *stubWraps) DeleteCascade(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	delete(s.items, id)
	delete(s.wraps, id)
	return nil
}

func TestGetOwnership(t *testing.T) {
	store := newStubWraps()
	svc := NewWrapService(store)

	w, err := svc.Create(context.Background(), "owner", "2024 Recap", "burgers", 2024)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "intruder", w.ID)
	assert.ErrorIs(t, err, ErrWrapNotFound)

	_, err = svc.Get(context.Background(), "owner", "missing")
	assert.ErrorIs(t, err, ErrWrapNotFound)

	got, err := svc.Get(context.Background(), "owner", w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
}

func TestAddItem(t *testing.T) {
	store := newStubWraps()
	svc := NewWrapService(store)

	w, err := svc.Create(context.Background(), "owner", "2024 Recap", "burgers", 2024)
	require.NoError(t, err)

	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	item, err := svc.AddItem(context.Background(), w.ID, "Big Mac", date, nil)
	require.NoError(t, err)
	assert.Equal(t, w.ID, item.WrapID)
	assert.True(t, item.Date.Equal(date))
	assert.Len(t, store.items[w.ID], 1)
}

func TestDeleteOwnership(t *testing.T) {
	store := newStubWraps()
	svc := NewWrapService(store)

	w, err := svc.Create(context.Background(), "owner", "2024 Recap", "burgers", 2024)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "intruder", w.ID)
	assert.ErrorIs(t, err, ErrWrapNotFound)
	assert.Empty(t, store.deleted)

	err = svc.Delete(context.Background(), "owner", "missing")
	assert.ErrorIs(t, err, ErrWrapNotFound)

	require.NoError(t, svc.Delete(context.Background(), "owner", w.ID))
	assert.Equal(t, []string{w.ID}, store.deleted)
	assert.NotContains(t, store.wraps, w.ID)
}
