package category

import (
	"context"
	"errors"
	"testing"

	"techinventory/internal/domain"
)

type stubCategoryRepo struct {
	list         []domain.CategoryOption
	listErr      error
	getResult    *domain.Category
	getErr       error
	findResults  []*domain.Category
	findErrs     []error
	findCalls    int
	insertResult *domain.Category
	insertErr    error
	insertCalls  int
	lastInsert   domain.Category
	replaceErr   error
	replaceCalls int
	lastReplace  domain.Category
	deleteErr    error
	deleteCalls  int
	lastDelete   string
	count        int64
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.CategoryOption, error) {
	return s.list, s.listErr
}

func (s *stubCategoryRepo) GetByID(_ context.Context, _ string) (*domain.Category, error) {
	return s.getResult, s.getErr
}

func (s *stubCategoryRepo) FindByNameFold(_ context.Context, _ string) (*domain.Category, error) {
	idx := s.findCalls
	if idx >= len(s.findResults) {
		idx = len(s.findResults) - 1
	}
	s.findCalls++
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return s.findResults[idx], s.findErrs[idx]
}

func (s *stubCategoryRepo) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubCategoryRepo) Insert(_ context.Context, c domain.Category) (*domain.Category, error) {
	s.insertCalls++
	s.lastInsert = c
	return s.insertResult, s.insertErr
}

func (s *stubCategoryRepo) Replace(_ context.Context, c domain.Category) error {
	s.replaceCalls++
	s.lastReplace = c
	return s.replaceErr
}

func (s *stubCategoryRepo) Delete(_ context.Context, id string) error {
	s.deleteCalls++
	s.lastDelete = id
	return s.deleteErr
}

type stubItemRepo struct {
	byCategory []domain.ItemSummary
	listErr    error
	count      int64
}

func (s *stubItemRepo) List(_ context.Context) ([]domain.ItemSummary, error) {
	return s.byCategory, s.listErr
}

func (s *stubItemRepo) ListByCategory(_ context.Context, _ string) ([]domain.ItemSummary, error) {
	return s.byCategory, s.listErr
}

func (s *stubItemRepo) GetByID(_ context.Context, _ string) (*domain.Item, error) {
	return nil, domain.ErrNotFound
}

func (s *stubItemRepo) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubItemRepo) Insert(_ context.Context, it domain.Item) (*domain.Item, error) {
	return &it, nil
}

func (s *stubItemRepo) Replace(_ context.Context, _ domain.Item) error {
	return nil
}

func (s *stubItemRepo) Delete(_ context.Context, _ string) error {
	return nil
}

const testPassword = "letmein"

func newService(cats *stubCategoryRepo, items *stubItemRepo) *Service {
	if items == nil {
		items = &stubItemRepo{}
	}
	return New(cats, items, testPassword)
}

func TestCreate_Valid(t *testing.T) {
	repo := &stubCategoryRepo{
		findResults:  []*domain.Category{nil},
		findErrs:     []error{domain.ErrNotFound},
		insertResult: &domain.Category{ID: "cat-1", Name: "phone"},
	}
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), Input{Name: "  phone  ", Description: "handsets"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v with errors %+v", res.Status, res.Errors)
	}
	if res.Category.ID != "cat-1" {
		t.Fatalf("expected identity cat-1, got %q", res.Category.ID)
	}
	if repo.lastInsert.Name != "phone" {
		t.Fatalf("expected trimmed name persisted, got %q", repo.lastInsert.Name)
	}
}

func TestCreate_DuplicateNameIsIdempotent(t *testing.T) {
	existing := &domain.Category{ID: "cat-1", Name: "phone"}
	repo := &stubCategoryRepo{
		findResults: []*domain.Category{existing},
		findErrs:    []error{nil},
	}
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), Input{Name: "PHONE"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v", res.Status)
	}
	if res.Category.ID != existing.ID {
		t.Fatalf("expected outcome identity to equal the first record's, got %q", res.Category.ID)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no insert for duplicate name, got %d", repo.insertCalls)
	}
}

func TestCreate_ShortNameFailsValidation(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), Input{Name: " p "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %v", res.Status)
	}
	if len(res.Errors) == 0 || res.Errors[0].Field != "name" {
		t.Fatalf("expected name error, got %+v", res.Errors)
	}
	if repo.insertCalls != 0 || repo.findCalls != 0 {
		t.Fatal("expected no store access on validation failure")
	}
	if res.Category.Name != "p" {
		t.Fatalf("expected candidate echoed back, got %+v", res.Category)
	}
}

func TestCreate_EscapesMarkup(t *testing.T) {
	repo := &stubCategoryRepo{
		findResults:  []*domain.Category{nil},
		findErrs:     []error{domain.ErrNotFound},
		insertResult: &domain.Category{ID: "cat-1"},
	}
	svc := newService(repo, nil)

	if _, err := svc.Create(context.Background(), Input{Name: "<b>tv</b>"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.lastInsert.Name != "&lt;b&gt;tv&lt;/b&gt;" {
		t.Fatalf("expected escaped name, got %q", repo.lastInsert.Name)
	}
}

// The lookup-then-insert pair is a known check-then-act race: two
// concurrent creates with the same name can both pass the lookup. The
// store's case-insensitive unique index resolves it, surfacing
// ErrConflict on the loser, which must land on the existing record.
func TestCreate_ConflictResolvesToExisting(t *testing.T) {
	winner := &domain.Category{ID: "cat-1", Name: "phone"}
	repo := &stubCategoryRepo{
		findResults: []*domain.Category{nil, winner},
		findErrs:    []error{domain.ErrNotFound, nil},
		insertErr:   domain.ErrConflict,
	}
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), Input{Name: "phone"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != domain.StatusOK || res.Category.ID != "cat-1" {
		t.Fatalf("expected existing identity after conflict, got %+v", res)
	}
}

func TestUpdate_WrongPasswordAddsAuthError(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := newService(repo, nil)

	res, err := svc.Update(context.Background(), "cat-1", Input{Name: "x"}, "wrong")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %v", res.Status)
	}
	var fields []string
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	if len(fields) != 2 {
		t.Fatalf("expected field error and auth error merged, got %v", fields)
	}
	if fields[1] != "adminPassword" {
		t.Fatalf("expected adminPassword error, got %v", fields)
	}
	if repo.replaceCalls != 0 {
		t.Fatal("expected no mutation on auth failure")
	}
}

func TestUpdate_OKPreservesIdentity(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := newService(repo, nil)

	res, err := svc.Update(context.Background(), "cat-9", Input{Name: "tablets"}, testPassword)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v with %+v", res.Status, res.Errors)
	}
	if repo.lastReplace.ID != "cat-9" || repo.lastReplace.Name != "tablets" {
		t.Fatalf("unexpected replace %+v", repo.lastReplace)
	}
}

func TestUpdate_MissingTargetIsNotFound(t *testing.T) {
	repo := &stubCategoryRepo{replaceErr: domain.ErrNotFound}
	svc := newService(repo, nil)

	res, err := svc.Update(context.Background(), "gone", Input{Name: "tablets"}, testPassword)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != domain.StatusNotFound {
		t.Fatalf("expected not found, got %v", res.Status)
	}
}

func TestUpdate_NameConflictBecomesFieldError(t *testing.T) {
	repo := &stubCategoryRepo{replaceErr: domain.ErrConflict}
	svc := newService(repo, nil)

	res, err := svc.Update(context.Background(), "cat-1", Input{Name: "laptop"}, testPassword)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %v", res.Status)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "name" {
		t.Fatalf("expected name conflict error, got %+v", res.Errors)
	}
}

func TestDelete_WrongPasswordLeavesRecord(t *testing.T) {
	repo := &stubCategoryRepo{getResult: &domain.Category{ID: "cat-1", Name: "phone"}}
	items := &stubItemRepo{byCategory: []domain.ItemSummary{{ID: "item-1", Name: "Smartphone X"}}}
	svc := newService(repo, items)

	res, err := svc.Delete(context.Background(), "cat-1", "wrong")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Status != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %v", res.Status)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("expected no removal on auth failure")
	}
	if res.Detail == nil || res.Detail.Category.ID != "cat-1" || len(res.Detail.Items) != 1 {
		t.Fatalf("expected refetched view-model, got %+v", res.Detail)
	}
}

func TestDelete_OKIgnoresReferencingItems(t *testing.T) {
	repo := &stubCategoryRepo{getResult: &domain.Category{ID: "cat-1"}}
	items := &stubItemRepo{byCategory: []domain.ItemSummary{{ID: "item-1"}}}
	svc := newService(repo, items)

	res, err := svc.Delete(context.Background(), "cat-1", testPassword)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v", res.Status)
	}
	if repo.deleteCalls != 1 || repo.lastDelete != "cat-1" {
		t.Fatalf("expected removal, got calls=%d id=%q", repo.deleteCalls, repo.lastDelete)
	}
}

func TestDelete_AlreadyGoneIsNoop(t *testing.T) {
	// The repo treats deleting an absent id as a no-op, so a correct
	// password succeeds even when the record vanished in between.
	repo := &stubCategoryRepo{}
	svc := newService(repo, nil)

	res, err := svc.Delete(context.Background(), "gone", testPassword)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v", res.Status)
	}
}

func TestDetail_NotFound(t *testing.T) {
	repo := &stubCategoryRepo{getErr: domain.ErrNotFound}
	svc := newService(repo, nil)

	_, err := svc.Detail(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDetail_JoinsItems(t *testing.T) {
	repo := &stubCategoryRepo{getResult: &domain.Category{ID: "cat-1", Name: "phone"}}
	items := &stubItemRepo{byCategory: []domain.ItemSummary{
		{ID: "item-1", Name: "Smartphone X", Company: "TechCorp", InStock: 25},
	}}
	svc := newService(repo, items)

	detail, err := svc.Detail(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Category.Name != "phone" || len(detail.Items) != 1 || detail.Items[0].Company != "TechCorp" {
		t.Fatalf("unexpected detail %+v", detail)
	}
}
