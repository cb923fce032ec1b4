package category

import (
	"context"

	"techinventory/internal/domain"
)

type Repository interface {
	// List returns the name-only projection of every category.
	List(ctx context.Context) ([]domain.CategoryOption, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// FindByNameFold looks a category up by name under case-insensitive
	// comparison. Used only for duplicate detection on create.
	FindByNameFold(ctx context.Context, name string) (*domain.Category, error)
	Count(ctx context.Context) (int64, error)
	// Insert persists a new category. Returns domain.ErrConflict when a
	// category with the same name (case-insensitively) already exists.
	Insert(ctx context.Context, c domain.Category) (*domain.Category, error)
	// Replace overwrites the record at c.ID with c's fields, preserving
	// identity. Returns domain.ErrNotFound when no such record exists.
	Replace(ctx context.Context, c domain.Category) error
	// Delete removes the record by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}
