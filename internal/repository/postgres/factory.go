package postgres

import (
	repo "github.com/mgarridov/wraps-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users repo.Users
	Wraps repo.Wraps
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users: &usersRepo{pool},
		Wraps: &wrapsRepo{pool},
	}
}
