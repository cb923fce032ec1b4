// Package inventory computes the home page summary.
package inventory

import (
	"context"

	categoryrepo "techinventory/internal/repository/category"
	itemrepo "techinventory/internal/repository/item"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	items      itemrepo.Repository
	categories categoryrepo.Repository
}

func New(items itemrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{items: items, categories: categories}
}

type Summary struct {
	ItemCount     int64
	CategoryCount int64
}

// Summary counts items and categories concurrently and joins both
// before returning; either failure fails the whole operation.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.items.Count(gctx)
		out.ItemCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.categories.Count(gctx)
		out.CategoryCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
