package service

import (
	"context"

	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemListQuery carries the already validated list parameters from the HTTP
// layer. Zero values mean "not set": no filter is emitted for them.
type ItemListQuery struct {
	Limit      int
	Offset     int
	Name       string
	ItemID     uuid.UUID
	OwnerLogin string
}

type ItemService interface {
	ListItems(ctx context.Context, query ItemListQuery) ([]models.Item, int, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	CreateItem(ctx context.Context, ownerID uuid.UUID, create models.ItemCreate) (models.Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	SoftDeleteItem(ctx context.Context, itemID uuid.UUID) (models.Item, error)
}

type EventService interface {
	PublishMessage(ctx context.Context, message models.KafkaMessage) error
}

type TaskService interface {
	EnqueueTask(ctx context.Context, request models.TaskRequest) (models.Task, error)
	GetTaskResult(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error)
}
