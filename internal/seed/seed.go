// Package seed inserts the demo inventory dataset.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name        string
	Description string
}

type itemSeed struct {
	Name        string
	Company     string
	Description string
	Category    string
	Price       string
	InStock     int
}

var categories = []categorySeed{
	{"phone", "Explore our range of cutting-edge smartphones designed to keep you connected and entertained on the go."},
	{"tablet", "Discover our collection of sleek and powerful tablets, perfect for work and play, wherever you are."},
	{"laptop", "Unleash your productivity with our range of high-performance laptops, designed to meet your computing needs."},
}

var items = []itemSeed{
	{"Smartphone X", "TechCorp", "Experience the latest in mobile technology with our Smartphone X. Fast, sleek, and packed with features.", "phone", "599.99", 25},
	{"Tablet Pro", "Gadget Innovators", "Stay productive and entertained with our Tablet Pro. A powerful device with a stunning display.", "tablet", "449.99", 18},
	{"Laptop Elite", "TechMaster", "Elevate your computing experience with the Laptop Elite. Exceptional performance for both work and play.", "laptop", "1299.99", 12},
	{"PhoneTech X1", "InnovateTech", "Introducing the PhoneTech X1, a flagship device that redefines mobile communication and innovation.", "phone", "699.99", 30},
	{"Tablet Pro Max", "Gadget Innovators", "The Tablet Pro Max delivers an unparalleled tablet experience with powerful hardware and sleek design.", "tablet", "549.99", 20},
	{"Laptop Prestige", "TechMaster", "Unleash your potential with the Laptop Prestige. A high-performance laptop built for versatility.", "laptop", "1499.99", 15},
	{"PhoneTech XR", "InnovateTech", "Discover the PhoneTech XR, where style meets functionality to offer a superior smartphone experience.", "phone", "799.99", 28},
	{"Tablet Essentials", "Gadget Innovators", "The Tablet Essentials is designed for everyday tasks, offering a balance of performance and affordability.", "tablet", "299.99", 22},
	{"Laptop ZenBook", "TechMaster", "Immerse yourself in creativity and productivity with the Laptop ZenBook, a masterpiece of design and power.", "laptop", "1699.99", 10},
	{"PhoneTech XS", "InnovateTech", "Experience the compact power of the PhoneTech XS, a device that redefines pocket-sized performance.", "phone", "899.99", 33},
}

// Apply inserts the demo categories and items. It is idempotent:
// categories upsert on their case-insensitive name and items re-seed
// only when absent by name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	ids := make(map[string]string, len(categories))
	for _, c := range categories {
		id, err := ensureCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", c.Name, err)
		}
		ids[c.Name] = id
	}

	for _, it := range items {
		if err := ensureItem(ctx, pool, ids[it.Category], it); err != nil {
			return fmt.Errorf("ensure item %s: %w", it.Name, err)
		}
	}
	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (string, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, $2)
ON CONFLICT (lower(name)) DO UPDATE SET description = EXCLUDED.description
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, c.Name, c.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureItem(ctx context.Context, pool *pgxpool.Pool, categoryID string, it itemSeed) error {
	const q = `
INSERT INTO items (name, company, description, category_id, price, in_stock)
SELECT $1, $2, $3, $4::uuid, $5::numeric, $6
WHERE NOT EXISTS (SELECT 1 FROM items WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, it.Name, it.Company, it.Description, categoryID, it.Price, it.InStock)
	return err
}
