package domain

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// URL is the canonical path for the category's detail page.
func (c Category) URL() string {
	return "/inventory/category/" + c.ID
}

// CategoryOption is the name-only projection used for listings and
// the category selector on item forms.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c CategoryOption) URL() string {
	return "/inventory/category/" + c.ID
}
