package category

import (
	"context"
	"errors"
	"io"
	"log"

	"techinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.CategoryOption, error) {
	const q = `
SELECT id::text, name
FROM categories
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CategoryOption
	for rows.Next() {
		var c domain.CategoryOption
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), created_at
FROM categories
WHERE id = $1
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) FindByNameFold(ctx context.Context, name string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), created_at
FROM categories
WHERE lower(name) = lower($1)
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, name).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: find name=%s error=%v", name, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) Insert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, NULLIF($2, ''))
RETURNING id::text, created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.Name, c.Description).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		r.logger.Printf("category repo: insert name=%s error=%v", c.Name, err)
		return nil, err
	}
	r.logger.Printf("category repo: inserted id=%s name=%s", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Replace(ctx context.Context, c domain.Category) error {
	const q = `
UPDATE categories
SET name = $2, description = NULLIF($3, '')
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, c.ID, c.Name, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		r.logger.Printf("category repo: replace id=%s error=%v", c.ID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return nil
		}
		r.logger.Printf("category repo: delete id=%s error=%v", id, err)
		return err
	}
	r.logger.Printf("category repo: delete id=%s removed=%d", id, tag.RowsAffected())
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isInvalidUUID reports whether err came from casting a malformed id to
// uuid. Path parameters arrive unvalidated, so this maps to "not found"
// rather than a server fault.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
