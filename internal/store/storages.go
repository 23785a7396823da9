package store

import (
	"context"

	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
)

// Storages bundles every repository behind its interface so the service
// layer depends on one injectable aggregate.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
	}, nil
}
