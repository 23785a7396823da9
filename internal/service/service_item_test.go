// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/store"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	listFn       func(ctx context.Context, query store.ListQuery) ([]models.Item, error)
	countFn      func(ctx context.Context, filters []models.Filter) (int, error)
	getFn        func(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	createFn     func(ctx context.Context, item models.Item) (models.Item, error)
	updateFn     func(ctx context.Context, item models.Item) (models.Item, error)
	deleteFn     func(ctx context.Context, itemID uuid.UUID) error
	softDeleteFn func(ctx context.Context, itemID uuid.UUID) (models.Item, error)
}

func (m *mockItemRepository) List(ctx context.Context, query store.ListQuery) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, query)
	}
	return nil, nil
}

func (m *mockItemRepository) Count(ctx context.Context, filters []models.Filter) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filters)
	}
	return 0, nil
}

func (m *mockItemRepository) Get(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, itemID)
	}
	return models.Item{}, nil
}

func (m *mockItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) Update(ctx context.Context, item models.Item) (models.Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, itemID)
	}
	return nil
}

func (m *mockItemRepository) SoftDelete(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, itemID)
	}
	return models.Item{}, nil
}

func newTestItemService(repo store.ItemRepository) ItemService {
	return NewItemService(repo, logger.NewLogger("test"))
}

func TestListItems_FiltersAndWindow(t *testing.T) {
	itemID := uuid.New()
	stored := []models.Item{{ID: uuid.New(), Name: "first"}}

	repo := &mockItemRepository{
		listFn: func(ctx context.Context, query store.ListQuery) ([]models.Item, error) {
			assert.Equal(t, 20, query.Offset)
			assert.Equal(t, 10, query.Limit)
			require.Len(t, query.Filters, 3)
			assert.Equal(t, models.Filter{Field: "name", Operator: models.OperatorContains, Value: "fir"}, query.Filters[0])
			assert.Equal(t, models.Filter{Field: "id", Operator: models.OperatorEq, Value: itemID}, query.Filters[1])
			assert.Equal(t, models.Filter{Field: "owner.login", Operator: models.OperatorEq, Value: "bob"}, query.Filters[2])
			return stored, nil
		},
		countFn: func(ctx context.Context, filters []models.Filter) (int, error) {
			require.Len(t, filters, 3)
			return 42, nil
		},
	}

	svc := newTestItemService(repo)
	items, total, err := svc.ListItems(context.Background(), ItemListQuery{
		Limit:      10,
		Offset:     20,
		Name:       "fir",
		ItemID:     itemID,
		OwnerLogin: "bob",
	})

	require.NoError(t, err)
	assert.Equal(t, stored, items)
	assert.Equal(t, 42, total)
}

func TestListItems_NoFilters(t *testing.T) {
	repo := &mockItemRepository{
		listFn: func(ctx context.Context, query store.ListQuery) ([]models.Item, error) {
			assert.Empty(t, query.Filters)
			return []models.Item{}, nil
		},
	}

	svc := newTestItemService(repo)
	items, total, err := svc.ListItems(context.Background(), ItemListQuery{Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, total)
}

func TestListItems_TotalComesFromCount(t *testing.T) {
	repo := &mockItemRepository{
		listFn: func(ctx context.Context, query store.ListQuery) ([]models.Item, error) {
			return []models.Item{{ID: uuid.New()}}, nil
		},
		countFn: func(ctx context.Context, filters []models.Filter) (int, error) {
			return 100, nil
		},
	}

	svc := newTestItemService(repo)
	items, total, err := svc.ListItems(context.Background(), ItemListQuery{Limit: 1})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 100, total, "total must come from the count query, not the page length")
}

func TestCreateItem(t *testing.T) {
	ownerID := uuid.New()
	repo := &mockItemRepository{
		createFn: func(ctx context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, ownerID, item.OwnerID)
			item.ID = uuid.New()
			return item, nil
		},
	}

	svc := newTestItemService(repo)
	created, err := svc.CreateItem(context.Background(), ownerID, models.ItemCreate{Name: "first"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "first", created.Name)
}

func TestCreateItem_InvalidData(t *testing.T) {
	svc := newTestItemService(&mockItemRepository{})

	_, err := svc.CreateItem(context.Background(), uuid.New(), models.ItemCreate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateItem(context.Background(), uuid.Nil, models.ItemCreate{Name: "first"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateItem_AppliesPartialUpdate(t *testing.T) {
	itemID := uuid.New()
	repo := &mockItemRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (models.Item, error) {
			return models.Item{ID: itemID, Name: "old", OwnerID: uuid.New()}, nil
		},
		updateFn: func(ctx context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, "new", item.Name)
			return item, nil
		},
	}

	name := "new"
	svc := newTestItemService(repo)
	updated, err := svc.UpdateItem(context.Background(), itemID, models.ItemUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo := &mockItemRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (models.Item, error) {
			return models.Item{}, store.ErrElementNotFound
		},
	}

	svc := newTestItemService(repo)
	_, err := svc.UpdateItem(context.Background(), uuid.New(), models.ItemUpdate{})

	assert.ErrorIs(t, err, store.ErrElementNotFound)
}

func TestSoftDeleteItem_Unsupported(t *testing.T) {
	repo := &mockItemRepository{
		softDeleteFn: func(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
			return models.Item{}, store.ErrSoftDeleteUnsupported
		},
	}

	svc := newTestItemService(repo)
	_, err := svc.SoftDeleteItem(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrSoftDeleteUnsupported)
}
