package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	InStock     int             `json:"inStock"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// URL is the canonical path for the item's detail page.
func (i Item) URL() string {
	return "/inventory/item/" + i.ID
}

// ItemSummary is the reduced projection used by item listings and
// category detail pages.
type ItemSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	InStock int    `json:"inStock"`
}

func (i ItemSummary) URL() string {
	return "/inventory/item/" + i.ID
}
