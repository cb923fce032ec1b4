// Package category implements the create/update/delete and query
// workflows for categories, including case-insensitive duplicate
// suppression and the admin-password gate on mutations.
package category

import (
	"context"
	"crypto/subtle"
	"errors"

	"techinventory/internal/domain"
	categoryrepo "techinventory/internal/repository/category"
	itemrepo "techinventory/internal/repository/item"
	"techinventory/internal/validate"
	"golang.org/x/sync/errgroup"
)

const (
	msgNameLength  = "Name must contain at least 2 letters"
	msgNameMax     = "Name must not exceed 50 characters"
	msgDescMax     = "Description must not exceed 200 characters"
	msgNameTaken   = "A category with that name already exists"
	msgBadPassword = "Incorrect admin password"
)

type Service struct {
	categories    categoryrepo.Repository
	items         itemrepo.Repository
	adminPassword string
}

// New wires the workflows. The admin password is injected here so the
// workflows never read process environment themselves.
func New(categories categoryrepo.Repository, items itemrepo.Repository, adminPassword string) *Service {
	return &Service{categories: categories, items: items, adminPassword: adminPassword}
}

// Input carries the raw form values for create and update.
type Input struct {
	Name        string
	Description string
}

// Result is the single outcome shape for category mutations. On
// StatusInvalid, Category holds the candidate built from the submitted
// values so the form can be re-rendered with them.
type Result struct {
	Status   domain.Status
	Category domain.Category
	Errors   []validate.FieldError
}

// Detail is the view-model for the detail and delete-confirmation
// pages: the category plus the reduced projection of its items.
type Detail struct {
	Category domain.Category
	Items    []domain.ItemSummary
}

// DeleteResult reports a delete outcome. On StatusInvalid (wrong admin
// password) Detail carries the refetched view-model for re-rendering.
type DeleteResult struct {
	Status domain.Status
	Detail *Detail
	Errors []validate.FieldError
}

func (s *Service) List(ctx context.Context) ([]domain.CategoryOption, error) {
	return s.categories.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// Detail fetches the category and the items referencing it
// concurrently and joins both before returning.
func (s *Service) Detail(ctx context.Context, id string) (*Detail, error) {
	var (
		cat   *domain.Category
		items []domain.ItemSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.categories.GetByID(gctx, id)
		if err != nil {
			return err
		}
		cat = c
		return nil
	})
	g.Go(func() error {
		its, err := s.items.ListByCategory(gctx, id)
		if err != nil {
			return err
		}
		items = its
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Detail{Category: *cat, Items: items}, nil
}

// Create validates the input and persists a new category unless one
// with the same name (case-insensitively) already exists, in which
// case the existing record is returned as the outcome identity.
func (s *Service) Create(ctx context.Context, in Input) (*Result, error) {
	cand, v := buildCandidate(in)
	if !v.Valid() {
		return &Result{Status: domain.StatusInvalid, Category: cand, Errors: v.Errors()}, nil
	}

	existing, err := s.categories.FindByNameFold(ctx, cand.Name)
	if err == nil {
		return &Result{Status: domain.StatusOK, Category: *existing}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.categories.Insert(ctx, cand)
	if errors.Is(err, domain.ErrConflict) {
		// A concurrent create with the same name won the race between
		// the lookup and the insert. The unique index resolved it;
		// treat the stored record as the target.
		existing, ferr := s.categories.FindByNameFold(ctx, cand.Name)
		if ferr != nil {
			return nil, ferr
		}
		return &Result{Status: domain.StatusOK, Category: *existing}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Result{Status: domain.StatusOK, Category: *created}, nil
}

// Update overwrites the category at id with the validated input. The
// admin password is checked independently of field validation and its
// failure joins the same error list.
func (s *Service) Update(ctx context.Context, id string, in Input, adminPassword string) (*Result, error) {
	cand, v := buildCandidate(in)
	cand.ID = id
	if !s.passwordOK(adminPassword) {
		v.Add("adminPassword", msgBadPassword)
	}
	if !v.Valid() {
		return &Result{Status: domain.StatusInvalid, Category: cand, Errors: v.Errors()}, nil
	}

	err := s.categories.Replace(ctx, cand)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &Result{Status: domain.StatusNotFound}, nil
	case errors.Is(err, domain.ErrConflict):
		v.Add("name", msgNameTaken)
		return &Result{Status: domain.StatusInvalid, Category: cand, Errors: v.Errors()}, nil
	case err != nil:
		return nil, err
	}
	return &Result{Status: domain.StatusOK, Category: cand}, nil
}

// Delete removes the category by id after checking the admin password.
// The password is checked before existence: a wrong password against
// an absent id still reports not found via the confirmation refetch,
// while a correct password deletes idempotently, items referencing the
// category are left in place.
func (s *Service) Delete(ctx context.Context, id string, adminPassword string) (*DeleteResult, error) {
	if !s.passwordOK(adminPassword) {
		detail, err := s.Detail(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return &DeleteResult{Status: domain.StatusNotFound}, nil
		}
		if err != nil {
			return nil, err
		}
		return &DeleteResult{
			Status: domain.StatusInvalid,
			Detail: detail,
			Errors: []validate.FieldError{{Field: "adminPassword", Message: msgBadPassword}},
		}, nil
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &DeleteResult{Status: domain.StatusOK}, nil
}

func (s *Service) passwordOK(supplied string) bool {
	if s.adminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(s.adminPassword)) == 1
}

// buildCandidate validates the raw input and builds the candidate
// record regardless of the outcome, so it can be echoed back on
// failure. Textual fields are stored trimmed and HTML-escaped.
func buildCandidate(in Input) (domain.Category, *validate.Validator) {
	v := validate.New()
	name := validate.Text(in.Name)
	v.MinLength("name", in.Name, 2, msgNameLength)
	v.MaxLength("name", in.Name, 50, msgNameMax)
	desc := validate.Escape(in.Description)
	v.MaxLength("description", in.Description, 200, msgDescMax)

	return domain.Category{Name: name, Description: desc}, v
}
