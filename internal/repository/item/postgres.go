package item

import (
	"context"
	"errors"
	"io"
	"log"

	"techinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.ItemSummary, error) {
	const q = `
SELECT id::text, name, company, in_stock
FROM items
ORDER BY name ASC
`
	return r.querySummaries(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.ItemSummary, error) {
	const q = `
SELECT id::text, name, company, in_stock
FROM items
WHERE category_id = $1
ORDER BY name ASC
`
	return r.querySummaries(ctx, q, categoryID)
}

func (r *postgresRepo) querySummaries(ctx context.Context, q string, args ...any) ([]domain.ItemSummary, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var result []domain.ItemSummary
	for rows.Next() {
		var it domain.ItemSummary
		if err := rows.Scan(&it.ID, &it.Name, &it.Company, &it.InStock); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	const q = `
SELECT id::text, name, company, COALESCE(description, ''), category_id::text, price::text, in_stock, COALESCE(image, ''), created_at
FROM items
WHERE id = $1
`
	var it domain.Item
	var price string
	err := r.pool.QueryRow(ctx, q, id).Scan(&it.ID, &it.Name, &it.Company, &it.Description, &it.CategoryID, &price, &it.InStock, &it.Image, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("item repo: get id=%s error=%v", id, err)
		return nil, err
	}
	it.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) Insert(ctx context.Context, it domain.Item) (*domain.Item, error) {
	const q = `
INSERT INTO items (name, company, description, category_id, price, in_stock, image)
VALUES ($1, $2, NULLIF($3, ''), $4, $5::numeric, $6, NULLIF($7, ''))
RETURNING id::text, created_at
`
	out := it
	err := r.pool.QueryRow(ctx, q, it.Name, it.Company, it.Description, it.CategoryID, it.Price.String(), it.InStock, it.Image).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("item repo: insert name=%s error=%v", it.Name, err)
		return nil, err
	}
	r.logger.Printf("item repo: inserted id=%s name=%s", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Replace(ctx context.Context, it domain.Item) error {
	const q = `
UPDATE items
SET name = $2, company = $3, description = NULLIF($4, ''), category_id = $5, price = $6::numeric, in_stock = $7, image = COALESCE(NULLIF($8, ''), image)
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, it.ID, it.Name, it.Company, it.Description, it.CategoryID, it.Price.String(), it.InStock, it.Image)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		r.logger.Printf("item repo: replace id=%s error=%v", it.ID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return nil
		}
		r.logger.Printf("item repo: delete id=%s error=%v", id, err)
		return err
	}
	r.logger.Printf("item repo: delete id=%s removed=%d", id, tag.RowsAffected())
	return nil
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
