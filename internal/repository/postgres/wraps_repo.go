package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mgarridov/wraps-backend/internal/models"
	repo "github.com/mgarridov/wraps-backend/internal/repository"
)

type wrapsRepo struct{ pool *pgxpool.Pool }

func (r *wrapsRepo) Create(ctx context.Context, w models.Wrap) (models.Wrap, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO wraps(id, title, kind, year, user_id)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, title, kind, year, user_id, created_at`,
		w.ID, w.Title, w.Kind, w.Year, w.UserID,
	).Scan(&w.ID, &w.Title, &w.Kind, &w.Year, &w.UserID, &w.CreatedAt)
	return w, err
}

func (r *wrapsRepo) ListByUser(ctx context.Context, userID string) ([]models.WrapWithItems, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, kind, year, user_id, created_at
		   FROM wraps
		  WHERE user_id=$1
		  ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.WrapWithItems{}
	index := map[string]int{}
	ids := []string{}
	for rows.Next() {
		var w models.Wrap
		if err := rows.Scan(&w.ID, &w.Title, &w.Kind, &w.Year, &w.UserID, &w.CreatedAt); err != nil {
			return nil, err
		}
		index[w.ID] = len(out)
		ids = append(ids, w.ID)
		out = append(out, models.WrapWithItems{Wrap: w, Items: []models.WrapItem{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	itemRows, err := r.pool.Query(ctx,
		`SELECT id, wrap_id, name, date, notes
		   FROM wrap_items
		  WHERE wrap_id = ANY($1::uuid[])
		  ORDER BY date ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it models.WrapItem
		if err := itemRows.Scan(&it.ID, &it.WrapID, &it.Name, &it.Date, &it.Notes); err != nil {
			return nil, err
		}
		i := index[it.WrapID]
		out[i].Items = append(out[i].Items, it)
	}
	return out, itemRows.Err()
}

func (r *wrapsRepo) GetOwned(ctx context.Context, id, userID string) (models.Wrap, error) {
	// a malformed path id can never match a row; report it as absent rather
	// than letting the uuid codec fail the query
	if uuid.Validate(id) != nil {
		return models.Wrap{}, repo.ErrNotFound
	}
	var w models.Wrap
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, kind, year, user_id, created_at
		   FROM wraps
		  WHERE id=$1 AND user_id=$2`,
		id, userID,
	).Scan(&w.ID, &w.Title, &w.Kind, &w.Year, &w.UserID, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Wrap{}, repo.ErrNotFound
	}
	return w, err
}

func (r *wrapsRepo) AddItem(ctx context.Context, item models.WrapItem) (models.WrapItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO wrap_items(id, wrap_id, name, date, notes)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, wrap_id, name, date, notes`,
		item.ID, item.WrapID, item.Name, item.Date, item.Notes,
	).Scan(&item.ID, &item.WrapID, &item.Name, &item.Date, &item.Notes)
	return item, err
}

// Items must go before the wrap itself or the FK would block the delete;
// the transaction keeps a crash from leaving a half-deleted wrap behind.
func (r *wrapsRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM wrap_items WHERE wrap_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM wraps WHERE id=$1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
