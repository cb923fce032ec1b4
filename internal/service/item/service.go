// Package item implements the create/update and query workflows for
// inventory items: field validation, referential category checks,
// price normalization and the selector echo on failed submissions.
package item

import (
	"context"
	"errors"

	"techinventory/internal/domain"
	categoryrepo "techinventory/internal/repository/category"
	itemrepo "techinventory/internal/repository/item"
	"techinventory/internal/validate"
	"github.com/shopspring/decimal"
)

const (
	msgNameLength   = "Name must contain at least 3 letters"
	msgNameMax      = "Name must not exceed 100 characters"
	msgCompany      = "Company must be specified"
	msgInStock      = "Ammount in stock must be a number and cannot be negative"
	msgCategory     = "Category must be specified"
	msgCategoryGone = "Selected category does not exist"
	msgPrice        = "Price must be a decimal number with a minimum value of 0.01"
	msgDescMax      = "Description must not exceed 200 characters"
)

// minPrice is both the validation floor and the fallback for
// unparseable price input.
var minPrice = decimal.New(1, -2)

type Service struct {
	items      itemrepo.Repository
	categories categoryrepo.Repository
}

func New(items itemrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{items: items, categories: categories}
}

// Input carries the raw form values for create and update. ImagePath
// is the stored upload path produced before the workflow runs; it is
// treated as an opaque field value.
type Input struct {
	Name        string
	Company     string
	Description string
	CategoryID  string
	Price       string
	InStock     string
	ImagePath   string
}

// Result is the single outcome shape for item mutations. On
// StatusInvalid, Item holds the candidate, Categories the full list
// for re-rendering the selector and SelectedCategory the attempted
// choice.
type Result struct {
	Status           domain.Status
	Item             domain.Item
	Errors           []validate.FieldError
	Categories       []domain.CategoryOption
	SelectedCategory string
}

// Detail is the item detail view-model with the category reference
// resolved. Category is nil when the item references a category that
// no longer exists; the page renders a degraded state instead of
// failing.
type Detail struct {
	Item     domain.Item
	Category *domain.Category
}

func (s *Service) List(ctx context.Context) ([]domain.ItemSummary, error) {
	return s.items.List(ctx)
}

// CategoryOptions returns the selector choices for the item form.
func (s *Service) CategoryOptions(ctx context.Context) ([]domain.CategoryOption, error) {
	return s.categories.List(ctx)
}

func (s *Service) Detail(ctx context.Context, id string) (*Detail, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cat, err := s.categories.GetByID(ctx, it.CategoryID)
	if errors.Is(err, domain.ErrNotFound) {
		// Dangling reference: the category was deleted out from under
		// this item. Surface the item without it.
		return &Detail{Item: *it}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Detail{Item: *it, Category: cat}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Result, error) {
	cand, v, err := s.buildCandidate(ctx, in)
	if err != nil {
		return nil, err
	}
	if !v.Valid() {
		return s.invalid(ctx, cand, v)
	}

	created, err := s.items.Insert(ctx, *cand)
	if err != nil {
		return nil, err
	}
	return &Result{Status: domain.StatusOK, Item: *created}, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Result, error) {
	cand, v, err := s.buildCandidate(ctx, in)
	if err != nil {
		return nil, err
	}
	cand.ID = id
	if !v.Valid() {
		return s.invalid(ctx, cand, v)
	}

	err = s.items.Replace(ctx, *cand)
	if errors.Is(err, domain.ErrNotFound) {
		return &Result{Status: domain.StatusNotFound}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Result{Status: domain.StatusOK, Item: *cand}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// buildCandidate validates all fields, resolves the category reference
// and builds the candidate record regardless of validation outcome.
// The price falls back to 0.01 when unparseable so the echoed
// candidate always carries a well-formed value.
func (s *Service) buildCandidate(ctx context.Context, in Input) (*domain.Item, *validate.Validator, error) {
	v := validate.New()

	name := validate.Text(in.Name)
	v.MinLength("name", in.Name, 3, msgNameLength)
	v.MaxLength("name", in.Name, 100, msgNameMax)

	company := validate.Text(in.Company)
	v.MinLength("company", in.Company, 1, msgCompany)

	inStock := v.Integer("inStock", in.InStock, 0, msgInStock)

	categoryID := validate.Text(in.CategoryID)
	v.MinLength("category", in.CategoryID, 1, msgCategory)

	v.Decimal("price", in.Price, minPrice, msgPrice)

	desc := validate.Escape(in.Description)
	v.MaxLength("description", in.Description, 200, msgDescMax)

	// Referential check: the selected category must still exist. Field
	// rules alone cannot see this, so it is resolved here and failure
	// joins the same error list.
	if categoryID != "" {
		_, err := s.categories.GetByID(ctx, categoryID)
		if errors.Is(err, domain.ErrNotFound) {
			v.Add("category", msgCategoryGone)
		} else if err != nil {
			return nil, nil, err
		}
	}

	cand := domain.Item{
		Name:        name,
		Company:     company,
		Description: desc,
		CategoryID:  categoryID,
		Price:       normalizePrice(in.Price),
		InStock:     inStock,
		Image:       in.ImagePath,
	}
	return &cand, v, nil
}

func (s *Service) invalid(ctx context.Context, cand *domain.Item, v *validate.Validator) (*Result, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Status:           domain.StatusInvalid,
		Item:             *cand,
		Errors:           v.Errors(),
		Categories:       cats,
		SelectedCategory: cand.CategoryID,
	}, nil
}

// normalizePrice parses the submitted price, defaulting to 0.01 when
// the value is empty or not a number. Fraction digits beyond two are
// preserved as submitted.
func normalizePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(validate.Text(raw))
	if err != nil {
		return minPrice
	}
	return d
}
