package store

import (
	"context"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

// itemSchema wires the items table into the generic repository: column
// mapping, the "owner" relation towards the users table, and both timestamp
// capabilities (modified stamping and soft deletes).
var itemSchema = &Schema{
	Table:   "items",
	IDField: "id",
	Columns: map[string]string{
		"id":          "items.id",
		"name":        "items.name",
		"owner_id":    "items.owner_id",
		"created_at":  "items.created_at",
		"modified_at": "items.modified_at",
		"deleted_on":  "items.deleted_on",
	},
	Relations: map[string]Relation{
		"owner": {
			Join:   "users ON users.user_id = items.owner_id",
			Schema: userSchema,
		},
	},
	SelectColumns: []string{
		"items.id",
		"items.name",
		"items.owner_id",
		"items.created_at",
		"items.modified_at",
		"items.deleted_on",
	},
	ModifiedColumn:  "modified_at",
	DeletedOnColumn: "deleted_on",
}

// itemMapper moves items in and out of SQL rows. The id and both timestamps
// are server-assigned, so Values only carries name and owner_id.
var itemMapper = RowMapper[models.Item]{
	Scan: func(row RowScanner) (models.Item, error) {
		var item models.Item
		err := row.Scan(&item.ID, &item.Name, &item.OwnerID, &item.Created, &item.Modified, &item.DeletedOn)
		return item, err
	},
	ID: func(item models.Item) any {
		return item.ID
	},
	Values: func(item models.Item) map[string]any {
		return map[string]any{
			"name":     item.Name,
			"owner_id": item.OwnerID,
		}
	},
}

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository],
// a thin typed facade over the generic schema-driven repository.
type itemRepository struct {
	repo *Repository[models.Item]
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, log *logger.Logger) ItemRepository {
	return &itemRepository{
		repo: NewRepository(db, itemSchema, itemMapper, log),
	}
}

func (r *itemRepository) List(ctx context.Context, query ListQuery) ([]models.Item, error) {
	return r.repo.List(ctx, query)
}

func (r *itemRepository) Count(ctx context.Context, filters []models.Filter) (int, error) {
	return r.repo.Count(ctx, filters)
}

func (r *itemRepository) Get(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	return r.repo.GetByID(ctx, itemID)
}

func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	return r.repo.Create(ctx, item)
}

func (r *itemRepository) Update(ctx context.Context, item models.Item) (models.Item, error) {
	return r.repo.Update(ctx, item)
}

func (r *itemRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	return r.repo.Delete(ctx, itemID)
}

func (r *itemRepository) SoftDelete(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	return r.repo.SoftDelete(ctx, itemID)
}
