package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int32           `json:"stock"`
	PrimaryImage *ProductImage   `json:"primary_image"`
	Images       []ProductImage  `json:"images"`
	Category     *Category       `json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}
