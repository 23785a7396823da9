package service

import (
	"context"
	"fmt"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/store"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

// itemService implements ItemService on top of the schema-driven item
// repository. It owns the translation from validated query parameters into
// filter descriptors; windowing and predicate construction stay in the
// storage layer.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService backed by the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// ListItems returns one page of items together with the total number of
// records matching the filters, so the HTTP layer can build pagination
// metadata. The total comes from a dedicated COUNT query, never from the
// length of the returned page.
func (s *itemService) ListItems(ctx context.Context, query ItemListQuery) ([]models.Item, int, error) {
	log := logger.FromContext(ctx)

	filters := buildItemFilters(query)

	items, err := s.itemRepository.List(ctx, store.ListQuery{
		Offset:  query.Offset,
		Limit:   query.Limit,
		Filters: filters,
	})
	if err != nil {
		log.Err(err).Msg("listing items failed")
		return nil, 0, fmt.Errorf("listing items failed: %w", err)
	}

	total, err := s.itemRepository.Count(ctx, filters)
	if err != nil {
		log.Err(err).Msg("counting items failed")
		return nil, 0, fmt.Errorf("counting items failed: %w", err)
	}

	return items, total, nil
}

// GetItem returns a single item by its identifier. A missing item surfaces
// as store.ErrElementNotFound for the HTTP layer to map.
func (s *itemService) GetItem(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	item, err := s.itemRepository.Get(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("getting item failed: %w", err)
	}

	return item, nil
}

// CreateItem persists a new item owned by ownerID.
func (s *itemService) CreateItem(ctx context.Context, ownerID uuid.UUID, create models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if create.Name == "" || ownerID == uuid.Nil {
		log.Error().Str("owner_id", ownerID.String()).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	item, err := s.itemRepository.Create(ctx, models.Item{
		Name:    create.Name,
		OwnerID: ownerID,
	})
	if err != nil {
		log.Err(err).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return item, nil
}

// UpdateItem applies the non-nil fields of update to an existing item and
// returns the refreshed record.
func (s *itemService) UpdateItem(ctx context.Context, itemID uuid.UUID, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.Get(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("getting item for update failed: %w", err)
	}

	if update.Name != nil {
		if *update.Name == "" {
			log.Error().Str("item_id", itemID.String()).Msg("invalid item data provided")
			return models.Item{}, ErrInvalidDataProvided
		}
		item.Name = *update.Name
	}

	updated, err := s.itemRepository.Update(ctx, item)
	if err != nil {
		log.Err(err).Str("item_id", itemID.String()).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item permanently.
func (s *itemService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.itemRepository.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

// SoftDeleteItem marks an item as logically deleted and returns the stamped
// record.
func (s *itemService) SoftDeleteItem(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	item, err := s.itemRepository.SoftDelete(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("item soft deletion ended with error: %w", err)
	}

	return item, nil
}

// buildItemFilters turns the set query parameters into filter descriptors.
// Field names are resolved against the item schema down in the storage layer,
// including the dotted owner path.
func buildItemFilters(query ItemListQuery) []models.Filter {
	var filters []models.Filter

	if query.Name != "" {
		filters = append(filters, models.Filter{
			Field:    "name",
			Operator: models.OperatorContains,
			Value:    query.Name,
		})
	}
	if query.ItemID != uuid.Nil {
		filters = append(filters, models.Filter{
			Field:    "id",
			Operator: models.OperatorEq,
			Value:    query.ItemID,
		})
	}
	if query.OwnerLogin != "" {
		filters = append(filters, models.Filter{
			Field:    "owner.login",
			Operator: models.OperatorEq,
			Value:    query.OwnerLogin,
		})
	}

	return filters
}
