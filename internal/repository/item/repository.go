package item

import (
	"context"

	"techinventory/internal/domain"
)

type Repository interface {
	// List returns the name/company/stock projection of every item.
	List(ctx context.Context) ([]domain.ItemSummary, error)
	// ListByCategory returns the same projection limited to items
	// referencing the given category id.
	ListByCategory(ctx context.Context, categoryID string) ([]domain.ItemSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, it domain.Item) (*domain.Item, error)
	// Replace overwrites the record at it.ID, preserving identity.
	// Returns domain.ErrNotFound when no such record exists.
	Replace(ctx context.Context, it domain.Item) error
	// Delete removes the record by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}
