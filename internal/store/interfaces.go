package store

import (
	"context"

	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

type ItemRepository interface {
	List(ctx context.Context, query ListQuery) ([]models.Item, error)
	Count(ctx context.Context, filters []models.Filter) (int, error)
	Get(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
	Update(ctx context.Context, item models.Item) (models.Item, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	SoftDelete(ctx context.Context, itemID uuid.UUID) (models.Item, error)
}
