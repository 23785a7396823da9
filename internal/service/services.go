package service

import (
	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/store"
)

// Services bundles every domain service behind its interface so the HTTP
// layer depends on one injectable aggregate.
type Services struct {
	AuthService  AuthService
	ItemService  ItemService
	EventService EventService
	TaskService  TaskService
}

// Adapters carries the outbound integrations the services publish through.
type Adapters struct {
	Producer      adapter.MessageProducer
	TaskPublisher adapter.TaskPublisher
	ResultBackend adapter.ResultBackend
}

func NewServices(storages *store.Storages, adapters Adapters, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		ItemService:  NewItemService(storages.ItemRepository, logger),
		EventService: NewEventService(adapters.Producer, cfg.Kafka, logger),
		TaskService:  NewTaskService(adapters.TaskPublisher, adapters.ResultBackend, logger),
	}
}
