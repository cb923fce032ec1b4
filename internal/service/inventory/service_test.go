package inventory

import (
	"context"
	"errors"
	"testing"

	"techinventory/internal/domain"
)

type stubItemRepo struct {
	count int64
	err   error
}

func (s *stubItemRepo) List(_ context.Context) ([]domain.ItemSummary, error) { return nil, nil }
func (s *stubItemRepo) ListByCategory(_ context.Context, _ string) ([]domain.ItemSummary, error) {
	return nil, nil
}
func (s *stubItemRepo) GetByID(_ context.Context, _ string) (*domain.Item, error) {
	return nil, domain.ErrNotFound
}
func (s *stubItemRepo) Count(_ context.Context) (int64, error) { return s.count, s.err }
func (s *stubItemRepo) Insert(_ context.Context, it domain.Item) (*domain.Item, error) {
	return &it, nil
}
func (s *stubItemRepo) Replace(_ context.Context, _ domain.Item) error { return nil }
func (s *stubItemRepo) Delete(_ context.Context, _ string) error       { return nil }

type stubCategoryRepo struct {
	count int64
	err   error
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.CategoryOption, error) {
	return nil, nil
}
func (s *stubCategoryRepo) GetByID(_ context.Context, _ string) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}
func (s *stubCategoryRepo) FindByNameFold(_ context.Context, _ string) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}
func (s *stubCategoryRepo) Count(_ context.Context) (int64, error) { return s.count, s.err }
func (s *stubCategoryRepo) Insert(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, nil
}
func (s *stubCategoryRepo) Replace(_ context.Context, _ domain.Category) error { return nil }
func (s *stubCategoryRepo) Delete(_ context.Context, _ string) error           { return nil }

func TestSummary_CombinesCounts(t *testing.T) {
	svc := New(&stubItemRepo{count: 10}, &stubCategoryRepo{count: 3})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ItemCount != 10 || summary.CategoryCount != 3 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestSummary_FailsWhenEitherCountFails(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&stubItemRepo{err: boom}, &stubCategoryRepo{count: 3})

	if _, err := svc.Summary(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected count failure to propagate, got %v", err)
	}
}
